// Package form models one registration form instance: the draft the visitor
// edits and the lifecycle of a single submission.
package form

import (
	"context"
	"errors"
	"sync"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/i18n"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	ErrSubmitInProgress = errors.New("form: submission already in progress")
	ErrAlreadySubmitted = errors.New("form: already submitted")
)

// Submitter is implemented by usecase.SubmitInquiryUseCase.
type Submitter interface {
	Validate(input usecase.SubmitInquiryInput) usecase.ValidationResult
	Execute(ctx context.Context, input usecase.SubmitInquiryInput) (*usecase.SubmitInquiryOutput, error)
}

// Notice is the transient banner shown after a submission attempt.
type Notice struct {
	Success bool
	Title   string
	Body    string
}

type Outcome struct {
	State       State
	FieldErrors map[string]string
	Notice      *Notice
	InquiryID   string
}

type Form struct {
	mu          sync.Mutex
	lang        entity.Language
	submitter   Submitter
	onSuccess   func(Outcome)
	state       State
	draft       entity.InquiryInput
	fieldErrors map[string]string
	notice      *Notice
}

// New mounts a form with the default draft. onSuccess may be nil.
func New(lang entity.Language, submitter Submitter, onSuccess func(Outcome)) *Form {
	return &Form{
		lang:        lang,
		submitter:   submitter,
		onSuccess:   onSuccess,
		state:       StateEditing,
		draft:       entity.NewInquiryInput(),
		fieldErrors: map[string]string{},
	}
}

// Set edits one draft field and clears its inline error. Edits are ignored
// once the form left the editing state.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateEditing {
		return
	}
	if f.draft.Set(field, value) {
		delete(f.fieldErrors, field)
	}
}

// Fill copies every field of in into the draft.
func (f *Form) Fill(in entity.InquiryInput) {
	f.Set(entity.FieldFullName, in.FullName)
	f.Set(entity.FieldEmail, in.Email)
	f.Set(entity.FieldCountryCode, in.CountryCode)
	f.Set(entity.FieldPhoneNumber, in.PhoneNumber)
	f.Set(entity.FieldCity, in.City)
	f.Set(entity.FieldCompany, in.Company)
	f.Set(entity.FieldDescription, in.Description)
}

func (f *Form) SetLanguage(lang entity.Language) {
	f.mu.Lock()
	f.lang = lang
	f.mu.Unlock()
}

// Submit validates the draft and, when valid, hands one new record to the
// transport. The draft survives validation and transport failures.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting, StateValidating:
		f.mu.Unlock()
		return Outcome{State: StateSubmitting}, ErrSubmitInProgress
	case StateSucceeded:
		f.mu.Unlock()
		return Outcome{State: StateSucceeded}, ErrAlreadySubmitted
	}
	f.state = StateValidating
	f.notice = nil
	input := usecase.SubmitInquiryInput{Language: f.lang, Inquiry: f.draft}
	f.mu.Unlock()

	result := f.submitter.Validate(input)

	f.mu.Lock()
	if !result.Valid {
		f.state = StateEditing
		f.fieldErrors = result.FieldErrors
		out := f.outcomeLocked("")
		f.mu.Unlock()
		return out, nil
	}
	f.fieldErrors = map[string]string{}
	f.state = StateSubmitting
	f.mu.Unlock()

	output, err := f.submitter.Execute(ctx, input)

	f.mu.Lock()
	bundle := i18n.For(f.lang)
	if err != nil {
		var de *usecase.DomainError
		if errors.As(err, &de) {
			f.state = StateEditing
			f.fieldErrors = de.FieldErrors
			out := f.outcomeLocked("")
			f.mu.Unlock()
			return out, nil
		}
		f.state = StateFailed
		f.notice = &Notice{Title: bundle.Notice.FailureTitle, Body: bundle.Notice.FailureBody}
		out := f.outcomeLocked("")
		// failed is only observable through the returned outcome
		f.state = StateEditing
		f.mu.Unlock()
		return out, nil
	}

	f.state = StateSucceeded
	f.notice = &Notice{Success: true, Title: bundle.Notice.SuccessTitle, Body: bundle.Notice.SuccessBody}
	out := f.outcomeLocked(output.ID)
	f.draft = entity.NewInquiryInput()
	callback := f.onSuccess
	f.mu.Unlock()

	if callback != nil {
		callback(out)
	}
	return out, nil
}

func (f *Form) outcomeLocked(id string) Outcome {
	return Outcome{
		State:       f.state,
		FieldErrors: copyErrors(f.fieldErrors),
		Notice:      f.notice,
		InquiryID:   id,
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Draft() entity.InquiryInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.fieldErrors)
}

func (f *Form) Notice() *Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// DismissNotice clears the transient banner.
func (f *Form) DismissNotice() {
	f.mu.Lock()
	f.notice = nil
	f.mu.Unlock()
}

// Disabled reports whether the submit control should be disabled.
func (f *Form) Disabled() bool {
	s := f.State()
	return s == StateValidating || s == StateSubmitting || s == StateSucceeded
}

func copyErrors(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
