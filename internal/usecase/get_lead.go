package usecase

import (
	"context"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type GetLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewGetLeadUseCase(repo LeadRepositoryInterface) *GetLeadUseCase {
	return &GetLeadUseCase{Repo: repo}
}

func (uc *GetLeadUseCase) Execute(ctx context.Context, id int64) (*entity.Lead, error) {
	return uc.Repo.FindByID(ctx, id)
}
