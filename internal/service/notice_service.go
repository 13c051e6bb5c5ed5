package service

import (
	"context"
	"strings"

	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/events"
	"github.com/hallkeeper/hall-service/internal/repository"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

// NoticeService publishes hall announcements.
type NoticeService struct {
	notices    repository.NoticeRepository
	dispatcher events.Dispatcher
}

// NewNoticeService constructs the service. dispatcher may be nil.
func NewNoticeService(notices repository.NoticeRepository, dispatcher events.Dispatcher) *NoticeService {
	return &NoticeService{notices: notices, dispatcher: dispatcher}
}

// Post creates a notice stamped by the store.
func (s *NoticeService) Post(ctx context.Context, title, content string) (*domain.Notice, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, apperrors.NewValidationError("Title and content are required.", nil)
	}
	notice := &domain.Notice{Title: title, Content: content}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:      events.EventNoticePosted,
		SubjectID: notice.ID,
		Actor:     events.Actor{Role: domain.RoleAdmin},
		Payload:   events.NoticePostedPayload{Title: notice.Title},
	})
	return notice, nil
}

// List returns notices newest first.
func (s *NoticeService) List(ctx context.Context) ([]domain.Notice, error) {
	return s.notices.ListNewestFirst(ctx)
}
