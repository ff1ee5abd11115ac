package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewUpdateLeadUseCase(repo LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

// Execute applies a partial update. Fields not present in the input keep
// their stored values; updated_at is refreshed even for an empty patch.
// Email uniqueness is not re-checked here; the unique index on the leads
// table backstops a conflicting email change.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id int64, input UpdateLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateUpdateLeadInput(input)
	if len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	patch := &entity.LeadPatch{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		ResumeS3Path: input.ResumeS3Path,
		UpdatedAt:    time.Now().UTC(),
	}

	if input.State != nil {
		state, _ := entity.ParseLeadState(*input.State)
		patch.State = &state
	}

	return uc.Repo.Update(ctx, id, patch)
}
