package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"infracore/internal/errors"
	"infracore/internal/model"
)

// MockLeadRepository is a mock implementation of LeadRepository.
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) CreateContact(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockLeadRepository) CreateQuotation(ctx context.Context, quotation *model.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

// MockLeadDispatcher is a mock implementation of LeadDispatcher.
type MockLeadDispatcher struct {
	mock.Mock
}

func (m *MockLeadDispatcher) ContactCaptured(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockLeadDispatcher) QuoteCaptured(ctx context.Context, quotation *model.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func TestLeadService_SubmitContact(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockLeadRepository, *MockLeadDispatcher)
		expectedError error
	}{
		{
			name: "insert then fan-out",
			setupMocks: func(repo *MockLeadRepository, disp *MockLeadDispatcher) {
				repo.On("CreateContact", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil)
				disp.On("ContactCaptured", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil)
			},
		},
		{
			name: "insert failure skips fan-out",
			setupMocks: func(repo *MockLeadRepository, disp *MockLeadDispatcher) {
				repo.On("CreateContact", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			expectedError: assert.AnError,
		},
		{
			name: "settings failure after insert still surfaces",
			setupMocks: func(repo *MockLeadRepository, disp *MockLeadDispatcher) {
				repo.On("CreateContact", mock.Anything, mock.Anything).Return(nil)
				disp.On("ContactCaptured", mock.Anything, mock.Anything).Return(errors.ErrSettingsUnavailable)
			},
			expectedError: errors.ErrSettingsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLeadRepository)
			mockDispatcher := new(MockLeadDispatcher)
			tt.setupMocks(mockRepo, mockDispatcher)

			service := NewLeadService(mockRepo, mockDispatcher)
			msg := &model.ContactMessage{FirstName: "Asha", LastName: "Rao", Branch: "BENGALURU"}
			err := service.SubmitContact(context.Background(), msg)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NotEqual(t, uuid.Nil, msg.ID)

			mockRepo.AssertExpectations(t)
			mockDispatcher.AssertExpectations(t)
		})
	}
}

func TestLeadService_SubmitQuote(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockDispatcher := new(MockLeadDispatcher)
	mockRepo.On("CreateQuotation", mock.Anything, mock.AnythingOfType("*model.Quotation")).Return(nil)
	mockDispatcher.On("QuoteCaptured", mock.Anything, mock.AnythingOfType("*model.Quotation")).Return(nil)

	service := NewLeadService(mockRepo, mockDispatcher)
	quotation := &model.Quotation{ClientName: "ACME Earthmovers"}
	err := service.SubmitQuote(context.Background(), quotation)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, quotation.ID)
	assert.Equal(t, model.QuotationStatusPending, quotation.Status)

	mockRepo.AssertExpectations(t)
	mockDispatcher.AssertExpectations(t)
}

func TestLeadService_InsertQuotation(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockDispatcher := new(MockLeadDispatcher)
	mockRepo.On("CreateQuotation", mock.Anything, mock.AnythingOfType("*model.Quotation")).Return(nil)

	service := NewLeadService(mockRepo, mockDispatcher)
	quotation := &model.Quotation{FirstName: "Asha", LastName: "Rao"}
	err := service.InsertQuotation(context.Background(), quotation)

	assert.NoError(t, err)
	assert.Equal(t, "Asha Rao", quotation.ClientName)
	assert.Equal(t, model.QuotationStatusPending, quotation.Status)

	// no fan-out on the plain insert path
	mockDispatcher.AssertNotCalled(t, "QuoteCaptured", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
