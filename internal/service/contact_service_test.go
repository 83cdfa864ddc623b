package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/folioapi/internal/db"
)

func TestContactSubmitSendsBothEmails(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Contact{})
	defer cleanup()

	mail := &fakeMailer{}
	svc := NewContactService(gdb, mail, "me@example.com", "Sam Doe")

	contact, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "a@x.com",
		Message: "Hi there",
	})
	if err != nil {
		t.Fatalf("failed to submit: %v", err)
	}
	if contact.ID == 0 {
		t.Fatalf("expected record persisted")
	}
	if len(mail.sent) != 2 {
		t.Fatalf("expected notification and acknowledgment, got %d sends", len(mail.sent))
	}
	if mail.sent[0].ToEmail != "me@example.com" || mail.sent[1].ToEmail != "a@x.com" {
		t.Fatalf("unexpected recipients %s, %s", mail.sent[0].ToEmail, mail.sent[1].ToEmail)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Contact{})
	defer cleanup()

	svc := NewContactService(gdb, &fakeMailer{}, "me@example.com", "Sam Doe")

	_, err := svc.Submit(context.Background(), ContactInput{Name: "Alice"})
	if !errors.Is(err, ErrContactInvalidInput) {
		t.Fatalf("expected ErrContactInvalidInput, got %v", err)
	}

	var count int64
	gdb.Model(&db.Contact{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected nothing persisted, got %d", count)
	}
}

func TestContactSubmitEmailFailureKeepsRecord(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Contact{})
	defer cleanup()

	mail := &fakeMailer{sendErr: errors.New("provider down")}
	svc := NewContactService(gdb, mail, "me@example.com", "Sam Doe")

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "a@x.com",
		Message: "Hi there",
	})
	if err == nil {
		t.Fatalf("expected submit to fail when the provider is down")
	}

	// The write is not rolled back on email failure.
	var count int64
	gdb.Model(&db.Contact{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected the record to survive the failed send, got %d", count)
	}
}

func TestContactSearchIsCaseInsensitive(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Contact{})
	defer cleanup()

	svc := NewContactService(gdb, &fakeMailer{}, "me@example.com", "Sam Doe")

	if _, err := svc.Submit(context.Background(), ContactInput{Name: "Alice", Email: "a@x.com", Message: "hello"}); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), ContactInput{Name: "Bob", Email: "b@x.com", Message: "hello"}); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}

	result, err := svc.List(ContactFilter{Search: "alice"})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if result.Total != 1 || len(result.Items) != 1 || result.Items[0].Name != "Alice" {
		t.Fatalf("expected case-insensitive match on Alice, got %+v", result)
	}
}

func TestContactPagination(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Contact{})
	defer cleanup()

	svc := NewContactService(gdb, &fakeMailer{}, "me@example.com", "Sam Doe")

	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(context.Background(), ContactInput{
			Name:    fmt.Sprintf("Visitor %d", i),
			Email:   fmt.Sprintf("v%d@x.com", i),
			Message: "hello",
		}); err != nil {
			t.Fatalf("failed to submit: %v", err)
		}
	}

	page1, err := svc.List(ContactFilter{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if page1.Total != 5 || len(page1.Items) != 2 || page1.TotalPages != 3 {
		t.Fatalf("unexpected first page %+v", page1)
	}

	page3, err := svc.List(ContactFilter{Page: 3, Limit: 2})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(page3.Items) != 1 {
		t.Fatalf("expected final partial page of 1, got %d", len(page3.Items))
	}

	page4, err := svc.List(ContactFilter{Page: 4, Limit: 2})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(page4.Items) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(page4.Items))
	}
}

func TestContactDeleteMany(t *testing.T) {
	gdb, cleanup := setupTestDB(t, &db.Contact{})
	defer cleanup()

	svc := NewContactService(gdb, &fakeMailer{}, "me@example.com", "Sam Doe")

	var ids []uint
	for i := 0; i < 3; i++ {
		contact, err := svc.Submit(context.Background(), ContactInput{
			Name:    fmt.Sprintf("Visitor %d", i),
			Email:   fmt.Sprintf("v%d@x.com", i),
			Message: "hello",
		})
		if err != nil {
			t.Fatalf("failed to submit: %v", err)
		}
		ids = append(ids, contact.ID)
	}

	if _, err := svc.DeleteMany(nil); !errors.Is(err, ErrContactNoIDs) {
		t.Fatalf("expected ErrContactNoIDs, got %v", err)
	}

	removed, err := svc.DeleteMany([]uint{ids[0], ids[1], 9999})
	if err != nil {
		t.Fatalf("failed to delete many: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	if _, err := svc.Get(ids[0]); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected deleted record gone, got %v", err)
	}
	if _, err := svc.Get(ids[2]); err != nil {
		t.Fatalf("expected remaining record intact, got %v", err)
	}
}
