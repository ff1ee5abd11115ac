package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

func TestTransitionLeadBothDirections(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)

	mockRepo.On("Update", ctx, int64(1), mock.MatchedBy(func(patch *entity.LeadPatch) bool {
		return patch.State != nil && *patch.State == entity.StateReachedOut && !patch.UpdatedAt.IsZero()
	})).Return(sampleLead(1, entity.StateReachedOut), nil).Once()
	mockRepo.On("Update", ctx, int64(1), mock.MatchedBy(func(patch *entity.LeadPatch) bool {
		return patch.State != nil && *patch.State == entity.StatePending && !patch.UpdatedAt.IsZero()
	})).Return(sampleLead(1, entity.StatePending), nil).Once()

	uc := usecase.NewTransitionLeadUseCase(mockRepo, testLogger())

	// No transition graph: forward and back are both legal.
	lead, err := uc.Execute(ctx, 1, "REACHED_OUT")
	assert.NoError(t, err)
	assert.Equal(t, entity.StateReachedOut, lead.State)

	lead, err = uc.Execute(ctx, 1, "PENDING")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatePending, lead.State)

	mockRepo.AssertExpectations(t)
}

func TestTransitionLeadInvalidState(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := usecase.NewTransitionLeadUseCase(mockRepo, testLogger())

	lead, err := uc.Execute(ctx, 1, "CLOSED_WON")

	assert.Nil(t, lead)
	var domainErr *usecase.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionLeadNotFound(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Update", ctx, int64(999999), mock.Anything).Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewTransitionLeadUseCase(mockRepo, testLogger())

	lead, err := uc.Execute(ctx, 999999, "REACHED_OUT")

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}
