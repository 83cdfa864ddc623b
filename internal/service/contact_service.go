package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/folioapi/internal/db"
	"github.com/folioapi/internal/mailer"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound     = errors.New("contact submission not found")
	ErrContactInvalidInput = errors.New("name, email and message are required")
	ErrContactNoIDs        = errors.New("please provide an array of contact IDs to delete")
)

// ContactService persists contact form submissions and fans out the
// transactional email around them.
type ContactService struct {
	db            *gorm.DB
	mail          mailer.Mailer
	operatorEmail string
	senderName    string
}

// NewContactService creates a ContactService instance. operatorEmail
// receives the notification for every submission.
func NewContactService(gdb *gorm.DB, mail mailer.Mailer, operatorEmail, senderName string) *ContactService {
	return &ContactService{db: gdb, mail: mail, operatorEmail: operatorEmail, senderName: senderName}
}

// ContactInput represents one submitted contact form.
type ContactInput struct {
	Name           string
	Email          string
	Phone          string
	Message        string
	CompanyName    string
	CompanyWebsite string
}

// ContactFilter describes the admin listing query.
type ContactFilter struct {
	Search string
	Page   int
	Limit  int
}

// ContactListResult aggregates one page of submissions.
type ContactListResult struct {
	Items      []db.Contact
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Submit persists the submission and then sends the operator
// notification and the submitter acknowledgment. Both sends are awaited;
// a failed send fails the request even though the record is already
// stored. There is no rollback and no retry.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*db.Contact, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, ErrContactInvalidInput
	}

	contact := db.Contact{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Message:        input.Message,
		CompanyName:    input.CompanyName,
		CompanyWebsite: input.CompanyWebsite,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	submission := mailer.Submission{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Message:        input.Message,
		CompanyName:    input.CompanyName,
		CompanyWebsite: input.CompanyWebsite,
	}

	if err := s.mail.Send(ctx, mailer.Notification(s.operatorEmail, submission)); err != nil {
		return nil, fmt.Errorf("send notification: %w", err)
	}
	if err := s.mail.Send(ctx, mailer.Acknowledgment(s.senderName, submission)); err != nil {
		return nil, fmt.Errorf("send acknowledgment: %w", err)
	}

	return &contact, nil
}

// List returns submissions matching the filter, newest first, with
// case-insensitive substring search over name, email and company name.
func (s *ContactService) List(filter ContactFilter) (ContactListResult, error) {
	result := ContactListResult{
		Page:  normalizePage(filter.Page),
		Limit: normalizeLimit(filter.Limit, 20),
	}

	query := s.db.Model(&db.Contact{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company_name) LIKE ?",
			like, like, like,
		)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, fmt.Errorf("count contacts: %w", err)
	}

	result.TotalPages = calculateTotalPages(result.Total, result.Limit)
	offset := (result.Page - 1) * result.Limit

	if err := query.Order("created_at desc").
		Limit(result.Limit).
		Offset(offset).
		Find(&result.Items).Error; err != nil {
		return result, fmt.Errorf("list contacts: %w", err)
	}

	return result, nil
}

// Get fetches a submission by id.
func (s *ContactService) Get(id uint) (*db.Contact, error) {
	var contact db.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &contact, nil
}

// Delete removes one submission.
func (s *ContactService) Delete(id uint) error {
	contact, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(contact).Error; err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// DeleteMany removes submissions by id and reports how many were
// actually removed.
func (s *ContactService) DeleteMany(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrContactNoIDs
	}

	result := s.db.Delete(&db.Contact{}, ids)
	if result.Error != nil {
		return 0, fmt.Errorf("delete contacts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizeLimit(limit, fallback int) int {
	if limit < 1 {
		return fallback
	}
	return limit
}

func calculateTotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
