package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/folioapi/internal/asset"
	"github.com/folioapi/internal/mailer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T, models ...interface{}) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

// fakeStore records asset calls and mints predictable references.
type fakeStore struct {
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
	counter   int
}

func (f *fakeStore) Upload(_ context.Context, namespace string, file asset.File) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.counter++
	f.uploads = append(f.uploads, namespace)
	return fmt.Sprintf("https://cdn.example.com/%s/%d-%s", namespace, f.counter, file.Name), nil
}

func (f *fakeStore) Delete(_ context.Context, namespace, publicID string) error {
	f.deletes = append(f.deletes, namespace+"/"+publicID)
	return f.deleteErr
}

// fakeMailer records sends and can fail on demand.
type fakeMailer struct {
	sent    []mailer.Message
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}
