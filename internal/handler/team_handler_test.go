package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTeamRouter(directory handler.TeamDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewTeamHandler(directory)
	r.POST("/teams/add", h.AddTeam)
	r.POST("/teams/remove", h.RemoveTeam)
	r.GET("/teams/list", h.ListTeams)
	r.POST("/members/add", h.AddMember)
	r.POST("/members/remove", h.RemoveMember)
	return r
}

func TestTeamHandler_AddTeam(t *testing.T) {
	tests := []struct {
		name             string
		body             any
		mockSetup        func(*mocks.MockTeamDirectory)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success - team created",
			body: handler.AddTeamRequest{Name: "alpha", Room: "alpha", Email: "a@x.com"},
			mockSetup: func(m *mocks.MockTeamDirectory) {
				m.EXPECT().AddTeam(gomock.Any(), "alpha", "#alpha", "a@x.com").Return(&domain.Team{
					Name:    "alpha",
					Room:    "#alpha",
					Email:   "a@x.com",
					Members: []string{},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp handler.CommandResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Team added.", resp.Reply)
				require.NotNil(t, resp.Team)
				assert.Equal(t, "#alpha", resp.Team.Room)
			},
		},
		{
			name: "duplicate name maps to conflict",
			body: handler.AddTeamRequest{Name: "alpha", Room: "#alpha", Email: "a@x.com"},
			mockSetup: func(m *mocks.MockTeamDirectory) {
				m.EXPECT().AddTeam(gomock.Any(), "alpha", "#alpha", "a@x.com").
					Return(nil, fmt.Errorf("team alpha: %w", service.ErrDuplicateName))
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp handler.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, handler.CodeDuplicateName, resp.Error.Code)
			},
		},
		{
			name: "duplicate room maps to conflict",
			body: handler.AddTeamRequest{Name: "beta", Room: "#alpha", Email: "b@x.com"},
			mockSetup: func(m *mocks.MockTeamDirectory) {
				m.EXPECT().AddTeam(gomock.Any(), "beta", "#alpha", "b@x.com").
					Return(nil, fmt.Errorf("room #alpha: %w", service.ErrDuplicateRoom))
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp handler.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, handler.CodeDuplicateRoom, resp.Error.Code)
			},
		},
		{
			name:           "missing fields rejected",
			body:           map[string]string{"name": "alpha"},
			mockSetup:      func(m *mocks.MockTeamDirectory) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			directory := mocks.NewMockTeamDirectory(ctrl)
			tt.mockSetup(directory)

			w := performJSON(newTeamRouter(directory), http.MethodPost, "/teams/add", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

func TestTeamHandler_ListTeams(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockTeamDirectory(ctrl)
		directory.EXPECT().ListTeams(gomock.Any()).Return([]domain.Team{}, nil)

		w := performJSON(newTeamRouter(directory), http.MethodGet, "/teams/list", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.TeamListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "No team.", resp.Reply)
		assert.Empty(t, resp.Teams)
	})

	t.Run("one line per team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockTeamDirectory(ctrl)
		directory.EXPECT().ListTeams(gomock.Any()).Return([]domain.Team{
			{Name: "alpha", Room: "#alpha", Email: "a@x.com", Members: []string{"@alice"}},
			{Name: "beta", Room: "#beta", Email: "b@x.com", Members: []string{"@bob", "@carol"}},
		}, nil)

		w := performJSON(newTeamRouter(directory), http.MethodGet, "/teams/list", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.TeamListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Teams, 2)
		assert.Contains(t, resp.Reply, "alpha: room #alpha, email a@x.com, members: @alice")
		assert.Contains(t, resp.Reply, "beta: room #beta, email b@x.com, members: @bob, @carol")
	})
}

func TestTeamHandler_Members(t *testing.T) {
	t.Run("add member replies with the roster", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockTeamDirectory(ctrl)
		directory.EXPECT().AddMember(gomock.Any(), "alpha", "bob").Return(&domain.Team{
			Name: "alpha", Room: "#alpha", Email: "a@x.com", Members: []string{"@alice", "@bob"},
		}, nil)

		w := performJSON(newTeamRouter(directory), http.MethodPost, "/members/add",
			handler.MemberRequest{TeamName: "alpha", Handle: "bob"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.CommandResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Done.\n\nAll members for alpha: @alice, @bob.", resp.Reply)
	})

	t.Run("unresolvable handle maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockTeamDirectory(ctrl)
		directory.EXPECT().AddMember(gomock.Any(), "alpha", "not a handle").
			Return(nil, fmt.Errorf("%w: bad input", service.ErrUnresolvableIdentity))

		w := performJSON(newTeamRouter(directory), http.MethodPost, "/members/add",
			handler.MemberRequest{TeamName: "alpha", Handle: "not a handle"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp handler.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, handler.CodeUnresolvableIdentity, resp.Error.Code)
	})

	t.Run("remove member not in roster maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockTeamDirectory(ctrl)
		directory.EXPECT().RemoveMember(gomock.Any(), "alpha", "mallory").
			Return(nil, fmt.Errorf("@mallory: %w", service.ErrNotAMember))

		w := performJSON(newTeamRouter(directory), http.MethodPost, "/members/remove",
			handler.MemberRequest{TeamName: "alpha", Handle: "mallory"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp handler.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, handler.CodeNotAMember, resp.Error.Code)
	})
}
