package usecase

import (
	"context"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
)

// Notification is what the notify step hands to the email collaborator.
type Notification struct {
	TemplateID string            `json:"template_id"`
	Recipient  string            `json:"recipient"`
	Fields     map[string]string `json:"fields"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type InquiryRepositoryInterface = entity.InquiryRepositoryInterface

// InquirySubmitter delivers one validated record.
type InquirySubmitter interface {
	Submit(ctx context.Context, inquiry *entity.Inquiry) error
}

// MetricsRecorder is satisfied by the http middleware package; nil disables it.
type MetricsRecorder interface {
	RecordInquirySubmission(outcome string)
}
