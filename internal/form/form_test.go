package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

type fakeTransport struct {
	mu      sync.Mutex
	calls   []*entity.Inquiry
	err     error
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeTransport) Submit(ctx context.Context, inquiry *entity.Inquiry) error {
	f.mu.Lock()
	f.calls = append(f.calls, inquiry)
	f.mu.Unlock()
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	return f.err
}

func (f *fakeTransport) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newForm(tr *fakeTransport, onSuccess func(Outcome)) *Form {
	return New(entity.English, usecase.NewSubmitInquiryUseCase(tr, nil), onSuccess)
}

func fillJane(f *Form) {
	f.Set(entity.FieldFullName, "Jane Doe")
	f.Set(entity.FieldEmail, "jane@example.com")
	f.Set(entity.FieldPhoneNumber, "812345678")
	f.Set(entity.FieldCity, "Kinshasa")
}

func TestNewFormStartsEditingWithDefaults(t *testing.T) {
	f := newForm(&fakeTransport{}, nil)

	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, entity.DefaultCountryCode, f.Draft().CountryCode)
	assert.False(t, f.Disabled())
	assert.Nil(t, f.Notice())
}

func TestSubmitSuccessInvokesCallbackOnce(t *testing.T) {
	tr := &fakeTransport{}
	var got []Outcome
	f := newForm(tr, func(o Outcome) { got = append(got, o) })
	fillJane(f)

	out, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, out.State)
	assert.Empty(t, out.FieldErrors)
	require.NotNil(t, out.Notice)
	assert.True(t, out.Notice.Success)
	assert.NotEmpty(t, out.InquiryID)
	assert.Equal(t, 1, tr.count())
	require.Len(t, got, 1)
	assert.Equal(t, out.InquiryID, got[0].InquiryID)

	// succeeded is terminal
	assert.True(t, f.Disabled())
	_, err = f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 1, tr.count())
	assert.Equal(t, "", f.Draft().FullName)
}

func TestSubmitInvalidStaysEditingWithoutTransport(t *testing.T) {
	tr := &fakeTransport{}
	called := false
	f := newForm(tr, func(Outcome) { called = true })
	fillJane(f)
	f.Set(entity.FieldEmail, "")

	out, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateEditing, out.State)
	assert.Equal(t, map[string]string{entity.FieldEmail: "Email is required"}, out.FieldErrors)
	assert.Nil(t, out.Notice)
	assert.Equal(t, 0, tr.count())
	assert.False(t, called)
}

func TestSetClearsFieldError(t *testing.T) {
	f := newForm(&fakeTransport{}, nil)
	_, _ = f.Submit(context.Background())
	require.Contains(t, f.FieldErrors(), entity.FieldCity)

	f.Set(entity.FieldCity, "Goma")

	assert.NotContains(t, f.FieldErrors(), entity.FieldCity)
	assert.Contains(t, f.FieldErrors(), entity.FieldFullName)
}

func TestSubmitTransportFailureKeepsDraft(t *testing.T) {
	tr := &fakeTransport{err: &usecase.TechnicalError{Code: usecase.CodePersistFailed, Message: "db down"}}
	called := false
	f := newForm(tr, func(Outcome) { called = true })
	fillJane(f)
	f.Set(entity.FieldCompany, "Acme SARL")

	out, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateFailed, out.State)
	assert.Empty(t, out.FieldErrors)
	require.NotNil(t, out.Notice)
	assert.False(t, out.Notice.Success)
	assert.Equal(t, "Submission Failed", out.Notice.Title)

	assert.Equal(t, StateEditing, f.State())
	assert.Equal(t, "Acme SARL", f.Draft().Company)
	assert.Equal(t, "Jane Doe", f.Draft().FullName)
	assert.False(t, called)

	f.DismissNotice()
	assert.Nil(t, f.Notice())
}

func TestRetryAfterFailureSendsNewRecord(t *testing.T) {
	tr := &fakeTransport{err: errors.New("smtp down")}
	f := newForm(tr, nil)
	fillJane(f)

	_, _ = f.Submit(context.Background())
	tr.err = nil
	out, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, out.State)
	require.Equal(t, 2, tr.count())
	assert.NotSame(t, tr.calls[0], tr.calls[1])
	assert.NotEqual(t, tr.calls[0].ID(), tr.calls[1].ID())
}

func TestSubmitWhileSubmittingIsRejected(t *testing.T) {
	tr := &fakeTransport{block: make(chan struct{}), entered: make(chan struct{})}
	f := newForm(tr, nil)
	fillJane(f)

	done := make(chan Outcome)
	go func() {
		out, _ := f.Submit(context.Background())
		done <- out
	}()
	<-tr.entered

	assert.Equal(t, StateSubmitting, f.State())
	assert.True(t, f.Disabled())
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	f.Set(entity.FieldFullName, "Someone Else")
	close(tr.block)
	out := <-done

	assert.Equal(t, StateSucceeded, out.State)
	assert.Equal(t, 1, tr.count())
	assert.Equal(t, "Jane Doe", tr.calls[0].FullName())
}

func TestSubmitUsesFormLanguage(t *testing.T) {
	f := newForm(&fakeTransport{}, nil)
	f.SetLanguage(entity.French)

	out, err := f.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Le nom complet est requis", out.FieldErrors[entity.FieldFullName])
}

func TestFillCopiesEveryFieldAndClearsErrors(t *testing.T) {
	tr := &fakeTransport{}
	f := newForm(tr, nil)
	_, _ = f.Submit(context.Background())
	require.NotEmpty(t, f.FieldErrors())

	in := entity.NewInquiryInput()
	in.FullName = "Jane Doe"
	in.Email = "jane@example.com"
	in.CountryCode = "+250"
	in.PhoneNumber = "788123456"
	in.City = "Goma"
	in.Company = "Lake Kivu Lodges"
	in.Description = "Two flat HP kits"
	f.Fill(in)

	assert.Equal(t, in, f.Draft())
	assert.Empty(t, f.FieldErrors())

	out, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, out.State)
	require.Equal(t, 1, tr.count())
	assert.Equal(t, "Lake Kivu Lodges", tr.calls[0].Company())
}
