package usecase

import "github.com/bestbuycongo/starlink-inquiry/internal/entity"

type SubmitInquiryInput struct {
	Language entity.Language
	Inquiry  entity.InquiryInput
}

type SubmitInquiryOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Submission outcomes, used as metric labels.
const (
	OutcomeSucceeded     = "succeeded"
	OutcomeInvalid       = "invalid"
	OutcomePersistFailed = "persist_failed"
	OutcomeNotifyFailed  = "notify_failed"
)
