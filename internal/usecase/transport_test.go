package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

func newInquiry() *entity.Inquiry {
	return entity.NewInquiry("inq-1", entity.English, janeDoe(), time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC))
}

func TestTransportPersistsThenNotifies(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInquiryRepository)
	notifier := new(MockNotifier)
	inquiry := newInquiry()

	var order []string
	repo.On("Create", mock.Anything, inquiry).Run(func(mock.Arguments) {
		order = append(order, usecase.StepPersist)
	}).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n usecase.Notification) bool {
		return n.TemplateID == "inquiry_notification" &&
			n.Recipient == "sales@bestbuycongo.cd" &&
			n.Fields[entity.FieldFullName] == "Jane Doe" &&
			n.Fields["phone"] == "+243 812345678" &&
			n.Fields["id"] == "inq-1"
	})).Run(func(mock.Arguments) {
		order = append(order, usecase.StepNotify)
	}).Return(nil).Once()

	tr := usecase.NewTransport(repo, notifier, "inquiry_notification", "sales@bestbuycongo.cd")
	err := tr.Submit(ctx, inquiry)

	require.NoError(t, err)
	assert.Equal(t, []string{usecase.StepPersist, usecase.StepNotify}, order)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTransportPersistFailureSkipsNotification(t *testing.T) {
	repo := new(MockInquiryRepository)
	notifier := new(MockNotifier)
	dbErr := errors.New("connection refused")
	repo.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()

	tr := usecase.NewTransport(repo, notifier, "tpl", "sales@example.com")
	err := tr.Submit(context.Background(), newInquiry())

	require.Error(t, err)
	var te *usecase.TechnicalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, usecase.CodePersistFailed, te.Code)
	assert.ErrorIs(t, err, dbErr)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestTransportNotifyFailureAfterPersistIsStillFailure(t *testing.T) {
	repo := new(MockInquiryRepository)
	notifier := new(MockNotifier)
	smtpErr := errors.New("535 authentication failed")
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(smtpErr).Once()

	tr := usecase.NewTransport(repo, notifier, "tpl", "sales@example.com")
	err := tr.Submit(context.Background(), newInquiry())

	var te *usecase.TechnicalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, usecase.CodeNotifyFailed, te.Code)
	assert.ErrorIs(t, err, smtpErr)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestTransportIgnoresCallerCancellation(t *testing.T) {
	repo := new(MockInquiryRepository)
	notifier := new(MockNotifier)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("Notify", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := usecase.NewTransport(repo, notifier, "tpl", "sales@example.com")
	require.NoError(t, tr.Submit(ctx, newInquiry()))
	notifier.AssertExpectations(t)
}

func TestPipelineStopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")

	p := usecase.NewPipeline()
	p.AddStep("a", func(context.Context) error { ran = append(ran, "a"); return nil })
	p.AddStep("b", func(context.Context) error { ran = append(ran, "b"); return boom })
	p.AddStep("c", func(context.Context) error { ran = append(ran, "c"); return nil })

	err := p.Execute(context.Background())

	var stepErr *usecase.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "b", stepErr.Step)
	assert.Equal(t, 1, stepErr.Index)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, ran)
}
