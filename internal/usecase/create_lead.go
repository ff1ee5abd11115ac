package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo   LeadRepositoryInterface
	Queue  NotificationProducerInterface
	Logger *slog.Logger
}

func NewCreateLeadUseCase(
	repo LeadRepositoryInterface,
	producer NotificationProducerInterface,
	logger *slog.Logger,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:   repo,
		Queue:  producer,
		Logger: logger,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	lead, err := entity.NewLead(input.FirstName, input.LastName, input.Email, input.ResumeS3Path)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Best effort: a messaging outage must never fail the creation.
	uc.publishNotifications(ctx, lead)

	return lead, nil
}

func (uc *CreateLeadUseCase) publishNotifications(ctx context.Context, lead *entity.Lead) {
	for _, kind := range []string{queue.KindProspectConfirmation, queue.KindStaffAlert} {
		payload := queue.NotificationPayload{
			MessageID:    uuid.New().String(),
			Kind:         kind,
			LeadID:       lead.ID,
			FirstName:    lead.FirstName,
			LastName:     lead.LastName,
			Email:        lead.Email,
			ResumeS3Path: lead.ResumeS3Path,
		}

		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			uc.Logger.Error("failed to publish lead notification",
				slog.String("kind", kind),
				slog.Int64("lead_id", lead.ID),
				slog.Any("err", err),
			)
		}
	}
}
