package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/repository/mocks"
	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

func TestPostNotice(t *testing.T) {
	notices := new(mocks.NoticeRepository)
	svc := NewNoticeService(notices, nil)
	ctx := context.Background()

	notices.On("Create", ctx, mock.MatchedBy(func(n *domain.Notice) bool {
		return n.Title == "Water outage" && n.Content == "Block C, 2-4pm"
	})).Return(nil)

	_, err := svc.Post(ctx, "Water outage", "Block C, 2-4pm")
	require.NoError(t, err)
	notices.AssertExpectations(t)
}

func TestPostNoticeRequiresFields(t *testing.T) {
	notices := new(mocks.NoticeRepository)
	svc := NewNoticeService(notices, nil)

	for _, in := range [][2]string{{"", "body"}, {"title", " "}} {
		_, err := svc.Post(context.Background(), in[0], in[1])
		assert.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
	}
	notices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
