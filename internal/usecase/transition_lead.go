package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/xavierca1/lead-intake/internal/entity"
)

// TransitionLeadUseCase is the narrow form of update restricted to the
// state field. Any state value may replace any other.
type TransitionLeadUseCase struct {
	Repo   LeadRepositoryInterface
	Logger *slog.Logger
}

func NewTransitionLeadUseCase(repo LeadRepositoryInterface, logger *slog.Logger) *TransitionLeadUseCase {
	return &TransitionLeadUseCase{Repo: repo, Logger: logger}
}

func (uc *TransitionLeadUseCase) Execute(ctx context.Context, id int64, newState string) (*entity.Lead, error) {
	state, err := entity.ParseLeadState(newState)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: "state must be PENDING or REACHED_OUT"}
	}

	lead, err := uc.Repo.Update(ctx, id, &entity.LeadPatch{State: &state, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("lead state updated",
		slog.Int64("lead_id", id),
		slog.String("state", string(state)),
	)

	return lead, nil
}
