package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/handler"
	"github.com/okuzmina/standup_bot/internal/handler/mocks"
	"github.com/okuzmina/standup_bot/internal/service"
)

func newEventRouter(standups handler.StandupCoordinator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewEventHandler(standups)
	r.POST("/events/mention", h.Mention)
	return r
}

func TestEventHandler_Mention(t *testing.T) {
	t.Run("recorded report is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		standups := mocks.NewMockStandupCoordinator(ctrl)
		standups.EXPECT().HandleMention(gomock.Any(), "#alpha", "@alice", "@standup did X").
			Return(&service.MentionResult{
				Team:   &domain.Team{Name: "alpha", Room: "#alpha"},
				Member: "@alice",
				Reply:  "@alice, got it, thank you.",
			}, nil)

		w := performJSON(newEventRouter(standups), http.MethodPost, "/events/mention",
			handler.MentionEvent{Sender: "@alice", Room: "#alpha", Text: "@standup did X"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.MentionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "@alice, got it, thank you.", resp.Reply)
		assert.Equal(t, "#alpha", resp.Room)
	})

	t.Run("ignorable mention yields no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		standups := mocks.NewMockStandupCoordinator(ctrl)
		standups.EXPECT().HandleMention(gomock.Any(), "#nowhere", "@alice", "hello").
			Return(nil, nil)

		w := performJSON(newEventRouter(standups), http.MethodPost, "/events/mention",
			handler.MentionEvent{Sender: "@alice", Room: "#nowhere", Text: "hello"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("missing sender rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		standups := mocks.NewMockStandupCoordinator(ctrl)

		w := performJSON(newEventRouter(standups), http.MethodPost, "/events/mention",
			map[string]string{"room": "#alpha", "text": "hi"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
