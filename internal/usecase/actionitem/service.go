package actionitem

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/notulensi/internal/usecase/errors"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
)

// ListFilter is the request-level filter; Mine restricts to the actor's own items
type ListFilter struct {
	Filter
	Mine bool
}

// Service exposes the aggregator to the HTTP layer
type Service struct {
	aggregator *Aggregator
	meetings   repositories.MeetingRepository
	gate       permission.Gate
	logger     *zap.Logger
}

// NewService creates a new action item service
func NewService(meetings repositories.MeetingRepository, gate permission.Gate, logger *zap.Logger) *Service {
	return &Service{
		aggregator: NewAggregator(meetings),
		meetings:   meetings,
		gate:       gate,
		logger:     logger,
	}
}

// List returns the filtered items ordered by deadline
func (s *Service) List(ctx context.Context, actor *entities.User, filter ListFilter) []entities.EnrichedActionItem {
	f := filter.Filter
	if filter.Mine && actor != nil {
		f.PICID = actor.ID
	}
	return Sort(Apply(s.aggregator.ListAll(ctx), f))
}

// ChangeStatus updates an item's status. Anyone who can view the meeting may move its items.
func (s *Service) ChangeStatus(ctx context.Context, actor *entities.User, meetingID, itemID string, status entities.ActionItemStatus) (*entities.EnrichedActionItem, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ucerrors.ErrInvalidStatus, status)
	}
	if actor == nil {
		return nil, ucerrors.ErrUnauthorized
	}

	m, ok := s.meetings.FindByID(ctx, meetingID)
	if !ok {
		return nil, ucerrors.ErrActionItemNotFound
	}
	i := m.ActionItemIndex(itemID)
	if i < 0 {
		return nil, ucerrors.ErrActionItemNotFound
	}
	item := entities.EnrichedActionItem{
		ActionItem: m.Minutes.ActionItems[i],
		Meeting:    entities.MeetingRef{ID: m.ID, Title: m.Title},
	}

	if !s.gate.CanView(actor, m) {
		return nil, fmt.Errorf("%w: meeting %s is not visible to %s", ucerrors.ErrForbidden, m.ID, actor.ID)
	}

	if !s.aggregator.UpdateStatus(ctx, item, status) {
		return nil, ucerrors.ErrActionItemNotFound
	}

	if s.logger != nil {
		s.logger.Info("action_item.status_changed",
			zap.String("meeting_id", meetingID),
			zap.String("action_item_id", itemID),
			zap.String("from", string(item.Status)),
			zap.String("to", string(status)),
			zap.String("actor_id", actor.ID),
		)
	}
	item.Status = status
	return &item, nil
}
