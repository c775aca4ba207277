package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/service"
)

// ErrorCode classifies command failures for the chat host.
type ErrorCode string

const (
	CodeDuplicateName        ErrorCode = "DUPLICATE_NAME"
	CodeDuplicateRoom        ErrorCode = "DUPLICATE_ROOM"
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeAmbiguousContext     ErrorCode = "AMBIGUOUS_CONTEXT"
	CodeUnresolvableIdentity ErrorCode = "UNRESOLVABLE_IDENTITY"
	CodeAlreadyMember        ErrorCode = "ALREADY_MEMBER"
	CodeNotAMember           ErrorCode = "NOT_A_MEMBER"
	CodeNoMembers            ErrorCode = "NO_MEMBERS"
	CodeAlreadyActive        ErrorCode = "ALREADY_ACTIVE"
	CodeNoActiveSession      ErrorCode = "NO_ACTIVE_SESSION"
	CodeDeliveryFailed       ErrorCode = "DELIVERY_FAILED"
	CodeBadRequest           ErrorCode = "BAD_REQUEST"
	CodeInternal             ErrorCode = "INTERNAL"
)

// ErrorResponse represents error response structure. Message doubles as the
// plain-text reply the host relays to the invoking user.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// CommandResponse wraps the reply the host relays for a command, plus the
// affected team when one applies.
type CommandResponse struct {
	Reply string        `json:"reply"`
	Team  *TeamResponse `json:"team,omitempty"`
}

// TeamResponse represents a team in responses.
type TeamResponse struct {
	Name    string   `json:"name"`
	Room    string   `json:"room"`
	Email   string   `json:"notification_email"`
	Members []string `json:"members"`
}

// TeamListResponse wraps the team listing.
type TeamListResponse struct {
	Reply string         `json:"reply"`
	Teams []TeamResponse `json:"teams"`
}

// StartResponse carries the standup kick-off prompt and the room to deliver
// it to.
type StartResponse struct {
	Reply string `json:"reply"`
	Room  string `json:"room"`
}

// StatusResponse wraps a standup snapshot.
type StatusResponse struct {
	Reply   string           `json:"reply"`
	Reports []ReportResponse `json:"reports"`
	Waiting []string         `json:"waiting"`
}

// ReportResponse represents one collected report.
type ReportResponse struct {
	Member string `json:"member"`
	Text   string `json:"text"`
}

// MentionResponse acknowledges a report recorded from a mention event.
type MentionResponse struct {
	Reply string `json:"reply"`
	Room  string `json:"room"`
}

func toTeamResponse(t *domain.Team) *TeamResponse {
	members := t.Members
	if members == nil {
		members = []string{}
	}
	return &TeamResponse{Name: t.Name, Room: t.Room, Email: t.Email, Members: members}
}

// Error sends an error response with the given code and status.
func Error(c *gin.Context, code ErrorCode, message string, status int) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(status, resp)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, CodeBadRequest, message, http.StatusBadRequest)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	Error(c, CodeInternal, message, http.StatusInternalServerError)
}

// ServiceError maps a service error to its code and HTTP status. Every
// user-triggered error kind lands on a 4xx with a relayable message; only
// delivery failures and unknown errors escape that range.
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateName):
		Error(c, CodeDuplicateName, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrDuplicateRoom):
		Error(c, CodeDuplicateRoom, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNotFound):
		Error(c, CodeNotFound, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrAmbiguousContext):
		Error(c, CodeAmbiguousContext, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnresolvableIdentity):
		Error(c, CodeUnresolvableIdentity, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrAlreadyMember):
		Error(c, CodeAlreadyMember, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNotAMember):
		Error(c, CodeNotAMember, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNoMembers):
		Error(c, CodeNoMembers, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrAlreadyActive):
		Error(c, CodeAlreadyActive, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrNoActiveSession):
		Error(c, CodeNoActiveSession, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrDeliveryFailed):
		Error(c, CodeDeliveryFailed, err.Error(), http.StatusBadGateway)
	default:
		InternalError(c, err.Error())
	}
}
