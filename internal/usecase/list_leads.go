package usecase

import (
	"context"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute passes the bounds through as given: an explicit zero limit
// yields zero rows. Defaulting an absent limit is the HTTP layer's job.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) ([]*entity.Lead, error) {
	if input.Skip < 0 {
		return nil, &DomainError{Code: CodeValidation, Message: "skip must be >= 0"}
	}
	if input.Limit < 0 {
		return nil, &DomainError{Code: CodeValidation, Message: "limit must be >= 0"}
	}

	leads, err := uc.Repo.List(ctx, input.Skip, input.Limit, input.State)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list leads: " + err.Error(),
		}
	}

	return leads, nil
}
