package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/i18n"
)

type SubmitInquiryUseCase struct {
	Transport InquirySubmitter
	Metrics   MetricsRecorder
	Now       func() time.Time
	NewID     func() string
}

func NewSubmitInquiryUseCase(transport InquirySubmitter, metrics MetricsRecorder) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{
		Transport: transport,
		Metrics:   metrics,
		Now:       time.Now,
		NewID:     func() string { return uuid.New().String() },
	}
}

// Validate runs the schema of the requested language. Rejections are counted.
func (uc *SubmitInquiryUseCase) Validate(input SubmitInquiryInput) ValidationResult {
	result := SchemaFor(input.Language).Validate(input.Inquiry)
	if !result.Valid {
		uc.record(OutcomeInvalid)
	}
	return result
}

// Build creates the immutable record for one submission attempt.
func (uc *SubmitInquiryUseCase) Build(input SubmitInquiryInput) *entity.Inquiry {
	return entity.NewInquiry(uc.NewID(), input.Language, input.Inquiry, uc.Now())
}

func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, input SubmitInquiryInput) (*SubmitInquiryOutput, error) {
	result := uc.Validate(input)
	if !result.Valid {
		return nil, &DomainError{
			Code:        CodeValidation,
			Message:     "validation failed",
			FieldErrors: result.FieldErrors,
		}
	}

	inquiry := uc.Build(input)
	if err := uc.Transport.Submit(ctx, inquiry); err != nil {
		uc.record(outcomeFor(err))
		return nil, err
	}
	uc.record(OutcomeSucceeded)

	bundle := i18n.For(input.Language)
	return &SubmitInquiryOutput{
		ID:      inquiry.ID(),
		Message: bundle.Notice.SuccessBody,
	}, nil
}

func (uc *SubmitInquiryUseCase) record(outcome string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordInquirySubmission(outcome)
	}
}

func outcomeFor(err error) string {
	var te *TechnicalError
	if errors.As(err, &te) && te.Code == CodeNotifyFailed {
		return OutcomeNotifyFailed
	}
	return OutcomePersistFailed
}
