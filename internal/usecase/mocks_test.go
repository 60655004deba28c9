package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bestbuycongo/starlink-inquiry/internal/entity"
	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n usecase.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordInquirySubmission(outcome string) {
	m.Called(outcome)
}

// janeDoe is the reference submission used across scenarios.
func janeDoe() entity.InquiryInput {
	return entity.InquiryInput{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		CountryCode: "+243",
		PhoneNumber: "812345678",
		City:        "Kinshasa",
	}
}
