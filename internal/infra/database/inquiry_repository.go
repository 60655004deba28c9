package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
)

var ErrDuplicateInquiry = errors.New("inquiry already stored")

type InquiryRepository struct {
	DB     *sql.DB
	Driver string
}

func NewInquiryRepository(db *sql.DB, driver string) *InquiryRepository {
	return &InquiryRepository{DB: db, Driver: driver}
}

// Create appends one inquiry. The table is insert-only.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	query := Rebind(r.Driver, `
		INSERT INTO inquiries (id, full_name, email, country_code, phone_number, city, company, description, language, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.DB.ExecContext(ctx, query,
		inquiry.ID(),
		inquiry.FullName(),
		inquiry.Email(),
		inquiry.CountryCode(),
		inquiry.PhoneNumber(),
		inquiry.City(),
		nullString(inquiry.Company()),
		nullString(inquiry.Description()),
		string(inquiry.Language()),
		inquiry.CreatedAt(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateInquiry
		}
		return fmt.Errorf("insert inquiry: %w", err)
	}

	return nil
}

// PingContext is used by the health check.
func (r *InquiryRepository) PingContext(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
