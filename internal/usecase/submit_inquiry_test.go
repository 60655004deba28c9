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

func newUseCase(repo *MockInquiryRepository, notifier *MockNotifier, metrics *MockMetrics) *usecase.SubmitInquiryUseCase {
	uc := usecase.NewSubmitInquiryUseCase(usecase.NewTransport(repo, notifier, "tpl", "sales@example.com"), metrics)
	uc.Now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }
	uc.NewID = func() string { return "fixed-id" }
	return uc
}

// Scenario A
func TestSubmitInquirySuccess(t *testing.T) {
	repo, notifier, metrics := new(MockInquiryRepository), new(MockNotifier), new(MockMetrics)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *entity.Inquiry) bool {
		return i.ID() == "fixed-id" && i.City() == "Kinshasa" && i.Company() == ""
	})).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()
	metrics.On("RecordInquirySubmission", usecase.OutcomeSucceeded).Once()

	out, err := newUseCase(repo, notifier, metrics).Execute(context.Background(), usecase.SubmitInquiryInput{
		Language: entity.English,
		Inquiry:  janeDoe(),
	})

	require.NoError(t, err)
	assert.Equal(t, "fixed-id", out.ID)
	assert.Equal(t, "Thank you for your interest in Starlink!", out.Message)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

// Scenario B
func TestSubmitInquiryInvalidMakesNoCalls(t *testing.T) {
	repo, notifier, metrics := new(MockInquiryRepository), new(MockNotifier), new(MockMetrics)
	metrics.On("RecordInquirySubmission", usecase.OutcomeInvalid).Once()

	in := janeDoe()
	in.Email = ""
	out, err := newUseCase(repo, notifier, metrics).Execute(context.Background(), usecase.SubmitInquiryInput{
		Language: entity.French,
		Inquiry:  in,
	})

	assert.Nil(t, out)
	var de *usecase.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, usecase.CodeValidation, de.Code)
	assert.Equal(t, map[string]string{entity.FieldEmail: "L'email est requis"}, de.FieldErrors)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	metrics.AssertExpectations(t)
}

// Scenario C
func TestSubmitInquiryPersistFailure(t *testing.T) {
	repo, notifier, metrics := new(MockInquiryRepository), new(MockNotifier), new(MockMetrics)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	metrics.On("RecordInquirySubmission", usecase.OutcomePersistFailed).Once()

	_, err := newUseCase(repo, notifier, metrics).Execute(context.Background(), usecase.SubmitInquiryInput{
		Language: entity.English,
		Inquiry:  janeDoe(),
	})

	assert.True(t, usecase.IsTechnicalError(err))
	assert.False(t, usecase.IsDomainError(err))
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	metrics.AssertExpectations(t)
}

// Scenario D
func TestSubmitInquiryNotifyFailure(t *testing.T) {
	repo, notifier, metrics := new(MockInquiryRepository), new(MockNotifier), new(MockMetrics)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("smtp timeout")).Once()
	metrics.On("RecordInquirySubmission", usecase.OutcomeNotifyFailed).Once()

	_, err := newUseCase(repo, notifier, metrics).Execute(context.Background(), usecase.SubmitInquiryInput{
		Language: entity.English,
		Inquiry:  janeDoe(),
	})

	assert.True(t, usecase.IsTechnicalError(err))
	repo.AssertNumberOfCalls(t, "Create", 1)
	metrics.AssertExpectations(t)
}

func TestSubmitInquiryResubmissionCreatesNewRecord(t *testing.T) {
	repo, notifier := new(MockInquiryRepository), new(MockNotifier)
	var ids []string
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ids = append(ids, args.Get(1).(*entity.Inquiry).ID())
	}).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()

	uc := usecase.NewSubmitInquiryUseCase(usecase.NewTransport(repo, notifier, "tpl", "sales@example.com"), nil)
	input := usecase.SubmitInquiryInput{Language: entity.English, Inquiry: janeDoe()}

	_, err := uc.Execute(context.Background(), input)
	require.Error(t, err)
	_, err = uc.Execute(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}
