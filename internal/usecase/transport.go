package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
)

const (
	StepPersist = "persist"
	StepNotify  = "notify"
)

// Transport stores an inquiry and then emails it to the sales desk.
type Transport struct {
	Repo       InquiryRepositoryInterface
	Notifier   Notifier
	TemplateID string
	Recipient  string
}

func NewTransport(repo InquiryRepositoryInterface, notifier Notifier, templateID, recipient string) *Transport {
	return &Transport{
		Repo:       repo,
		Notifier:   notifier,
		TemplateID: templateID,
		Recipient:  recipient,
	}
}

// Submit persists, then notifies. A notify failure is reported even though the
// record is already stored; there is no rollback and no retry.
func (t *Transport) Submit(ctx context.Context, inquiry *entity.Inquiry) error {
	// An in-flight submission is not cancellable by the caller.
	ctx = context.WithoutCancel(ctx)

	p := NewPipeline()
	p.AddStep(StepPersist, func(ctx context.Context) error {
		return t.Repo.Create(ctx, inquiry)
	})
	p.AddStep(StepNotify, func(ctx context.Context) error {
		return t.Notifier.Notify(ctx, NewNotification(t.TemplateID, t.Recipient, inquiry))
	})

	err := p.Execute(ctx)
	if err == nil {
		log.Printf("[INQUIRY] delivered id=%s email=%s", inquiry.ID(), inquiry.Email())
		return nil
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		return &TechnicalError{Code: CodePersistFailed, Message: "failed to deliver inquiry", Err: err}
	}
	if stepErr.Step == StepNotify {
		log.Printf("[INQUIRY] stored but notification failed id=%s: %v", inquiry.ID(), stepErr.Err)
		return &TechnicalError{Code: CodeNotifyFailed, Message: "failed to send inquiry notification", Err: stepErr.Err}
	}
	log.Printf("[INQUIRY] persist failed email=%s: %v", inquiry.Email(), stepErr.Err)
	return &TechnicalError{Code: CodePersistFailed, Message: "failed to store inquiry", Err: stepErr.Err}
}

// NewNotification carries every record field plus id, language, the
// formatted phone and the submission time.
func NewNotification(templateID, recipient string, inquiry *entity.Inquiry) Notification {
	fields := inquiry.Fields()
	fields["id"] = inquiry.ID()
	fields["language"] = string(inquiry.Language())
	fields["phone"] = inquiry.Phone()
	fields["submittedAt"] = inquiry.CreatedAt().Format("2006-01-02 15:04 MST")

	return Notification{
		TemplateID: templateID,
		Recipient:  recipient,
		Fields:     fields,
	}
}
