package usecase

import (
	"context"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	List(ctx context.Context, skip, limit int, state *entity.LeadState) ([]*entity.Lead, error)
	FindByID(ctx context.Context, id int64) (*entity.Lead, error)
	Update(ctx context.Context, id int64, patch *entity.LeadPatch) (*entity.Lead, error)
}

type NotificationProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
