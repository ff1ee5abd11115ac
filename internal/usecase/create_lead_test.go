package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, skip, limit int, state *entity.LeadState) ([]*entity.Lead, error) {
	args := m.Called(ctx, skip, limit, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id int64, patch *entity.LeadPatch) (*entity.Lead, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validCreateInput() usecase.CreateLeadInput {
	return usecase.CreateLeadInput{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@test.com",
		ResumeS3Path: "s3://resumes/john-doe.pdf",
	}
}

func TestCreateLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockNotificationProducer)

	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 42
	}).Return(nil)
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(mockRepo, mockQueue, testLogger())

	lead, err := uc.Execute(ctx, validCreateInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), lead.ID)
	assert.Equal(t, entity.StatePending, lead.State)
	assert.True(t, lead.CreatedAt.Equal(lead.UpdatedAt))

	// One message per recipient: prospect confirmation plus staff alert.
	mockQueue.AssertNumberOfCalls(t, "PublishNotification", 2)
	mockQueue.AssertCalled(t, "PublishNotification", ctx, mock.MatchedBy(func(p queue.NotificationPayload) bool {
		return p.Kind == queue.KindProspectConfirmation && p.LeadID == 42 && p.MessageID != ""
	}))
	mockQueue.AssertCalled(t, "PublishNotification", ctx, mock.MatchedBy(func(p queue.NotificationPayload) bool {
		return p.Kind == queue.KindStaffAlert && p.ResumeS3Path == "s3://resumes/john-doe.pdf"
	}))
}

func TestCreateLeadDuplicateEmail(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockNotificationProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := usecase.NewCreateLeadUseCase(mockRepo, mockQueue, testLogger())

	lead, err := uc.Execute(ctx, validCreateInput())

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
	mockQueue.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestCreateLeadValidation(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockNotificationProducer)
	uc := usecase.NewCreateLeadUseCase(mockRepo, mockQueue, testLogger())

	cases := []struct {
		name   string
		mutate func(*usecase.CreateLeadInput)
	}{
		{"missing first name", func(i *usecase.CreateLeadInput) { i.FirstName = "" }},
		{"missing last name", func(i *usecase.CreateLeadInput) { i.LastName = "  " }},
		{"missing email", func(i *usecase.CreateLeadInput) { i.Email = "" }},
		{"unparseable email", func(i *usecase.CreateLeadInput) { i.Email = "not-an-email" }},
		{"missing resume path", func(i *usecase.CreateLeadInput) { i.ResumeS3Path = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)

			lead, err := uc.Execute(ctx, input)

			assert.Nil(t, lead)
			var domainErr *usecase.DomainError
			assert.ErrorAs(t, err, &domainErr)
			assert.Equal(t, usecase.CodeValidation, domainErr.Code)
		})
	}

	// Invalid input never reaches the store.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadPublishFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockNotificationProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := usecase.NewCreateLeadUseCase(mockRepo, mockQueue, testLogger())

	lead, err := uc.Execute(ctx, validCreateInput())

	// A messaging outage must not fail or roll back the creation.
	assert.NoError(t, err)
	assert.NotNil(t, lead)
	mockQueue.AssertNumberOfCalls(t, "PublishNotification", 2)
}

func TestCreateLeadRepositoryFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockNotificationProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewCreateLeadUseCase(mockRepo, mockQueue, testLogger())

	lead, err := uc.Execute(ctx, validCreateInput())

	assert.Nil(t, lead)
	assert.True(t, usecase.IsTechnicalError(err))
	mockQueue.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}
