package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/errors"
	"github.com/johnquangdev/notulensi/internal/domain/entities"
	"github.com/johnquangdev/notulensi/internal/domain/repositories"
)

// PublishingMeetingRepository announces every successful write on an EventPublisher
type PublishingMeetingRepository struct {
	repositories.MeetingRepository
	publisher repositories.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewPublishingMeetingRepository wraps a store. Publish failures are logged and never fail the write.
func NewPublishingMeetingRepository(inner repositories.MeetingRepository, publisher repositories.EventPublisher, logger *zap.Logger) *PublishingMeetingRepository {
	return &PublishingMeetingRepository{
		MeetingRepository: inner,
		publisher:         publisher,
		logger:            logger,
		now:               time.Now,
	}
}

// Create implements repositories.MeetingRepository
func (r *PublishingMeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) *entities.Meeting {
	created := r.MeetingRepository.Create(ctx, meeting)
	r.publish(ctx, repositories.MeetingCreated, created.ID, created.Title)
	return created
}

// Update implements repositories.MeetingRepository
func (r *PublishingMeetingRepository) Update(ctx context.Context, meeting *entities.Meeting) bool {
	if !r.MeetingRepository.Update(ctx, meeting) {
		return false
	}
	r.publish(ctx, repositories.MeetingUpdated, meeting.ID, meeting.Title)
	return true
}

// Delete implements repositories.MeetingRepository
func (r *PublishingMeetingRepository) Delete(ctx context.Context, id string) bool {
	if !r.MeetingRepository.Delete(ctx, id) {
		return false
	}
	r.publish(ctx, repositories.MeetingDeleted, id, "")
	return true
}

func (r *PublishingMeetingRepository) publish(ctx context.Context, t repositories.MeetingEventType, id, title string) {
	if r.publisher == nil {
		return
	}
	event := repositories.MeetingEvent{
		Type:       t,
		MeetingID:  id,
		Title:      title,
		OccurredAt: r.now().UTC().Format(time.RFC3339),
	}
	if err := r.publisher.Publish(ctx, event); err != nil && r.logger != nil {
		appErr := errors.ErrMessagingFailed("publish "+string(t), err)
		r.logger.Warn("meeting.event.publish_failed",
			zap.String("type", string(t)),
			zap.String("meeting_id", id),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(appErr),
		)
	}
}
