package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/mailer"
	"github.com/okuzmina/standup_bot/internal/repository"
)

// StandupService drives the standup state machine per team: Inactive ->
// Active via Start, back to Inactive via End (after digest dispatch) or
// Cancel. Session key presence in the registry is the activity flag.
type StandupService struct {
	directory   *TeamService
	sessions    repository.SessionStore
	mailer      mailer.Mailer
	botName     string
	mailTimeout time.Duration
}

// NewStandupService creates a new standup service. botName is the bot's
// mention token, used in prompts and stripped from mention bodies.
func NewStandupService(directory *TeamService, sessions repository.SessionStore, m mailer.Mailer, botName string, mailTimeout time.Duration) *StandupService {
	return &StandupService{
		directory:   directory,
		sessions:    sessions,
		mailer:      m,
		botName:     botName,
		mailTimeout: mailTimeout,
	}
}

// StartResult carries the opened standup and the kick-off prompt to deliver
// to the team room.
type StartResult struct {
	Team   *domain.Team
	Prompt string
}

// StatusResult is a snapshot of a running standup: reports in arrival order
// and the members still expected to report, in roster order.
type StatusResult struct {
	Team    *domain.Team
	Reports []domain.Report
	Waiting []string
}

// EndResult describes a successfully dispatched digest.
type EndResult struct {
	Team    *domain.Team
	To      string
	Subject string
}

// MentionResult describes a report recorded from a mention event, with the
// acknowledgement to send back to the room.
type MentionResult struct {
	Team   *domain.Team
	Member string
	Reply  string
}

// Start opens a standup for the team resolved from the explicit name or the
// room context. The team needs at least one member, and at most one standup
// may run per team.
func (s *StandupService) Start(ctx context.Context, explicitName, room string) (*StartResult, error) {
	team, err := s.directory.ResolveTeam(ctx, explicitName, room)
	if err != nil {
		return nil, err
	}
	if len(team.Members) == 0 {
		return nil, fmt.Errorf("team %s: %w", team.Name, ErrNoMembers)
	}

	if err := s.sessions.Create(ctx, team.Name); err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionExists):
			return nil, fmt.Errorf("team %s: %w", team.Name, ErrAlreadyActive)
		case errors.Is(err, repository.ErrTeamNotFound):
			// Team removed between resolve and create.
			return nil, fmt.Errorf("team %s: %w", team.Name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to start standup: %w", err)
	}

	prompt := fmt.Sprintf(
		"Team %s, please %s standup!\n\n"+
			"What did you do yesterday and what were your blockers?\n\n"+
			"Answer by mentioning me \"%s I did something something ...\"",
		team.Name, strings.Join(team.Members, " "), s.botName)
	return &StartResult{Team: team, Prompt: prompt}, nil
}

// RecordReport upserts a member's report into the team's running standup.
// Last write wins; reporting twice overwrites the earlier text.
func (s *StandupService) RecordReport(ctx context.Context, teamName, member, text string) error {
	if err := s.sessions.UpsertReport(ctx, teamName, member, text); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return fmt.Errorf("team %s: %w", teamName, ErrNoActiveSession)
		}
		return fmt.Errorf("failed to record report: %w", err)
	}
	return nil
}

// Cover records a report on behalf of a teammate. The member key is taken
// verbatim from the covering teammate, with no identity resolution.
func (s *StandupService) Cover(ctx context.Context, teamName, member, message string) error {
	if _, err := s.directory.ResolveTeam(ctx, teamName, ""); err != nil {
		return err
	}
	return s.RecordReport(ctx, teamName, member, message)
}

// Status reports the collected entries and who is still expected to report.
// An empty Reports slice means the standup started but nobody reported yet.
func (s *StandupService) Status(ctx context.Context, explicitName, room string) (*StatusResult, error) {
	team, err := s.directory.ResolveTeam(ctx, explicitName, room)
	if err != nil {
		return nil, err
	}
	state, err := s.sessions.Get(ctx, team.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !state.IsActive() {
		return nil, fmt.Errorf("team %s: %w", team.Name, ErrNoActiveSession)
	}

	session := state.Session()
	waiting := make([]string, 0)
	for _, m := range team.Members {
		if !session.Reported(m) {
			waiting = append(waiting, m)
		}
	}
	return &StatusResult{Team: team, Reports: session.Reports, Waiting: waiting}, nil
}

// End renders the digest from a snapshot of the collected reports, delivers
// it to the team's notification email and closes the session. Delivery runs
// without any registry lock held; on failure the session survives so the
// operator can retry.
func (s *StandupService) End(ctx context.Context, explicitName, room string) (*EndResult, error) {
	team, err := s.directory.ResolveTeam(ctx, explicitName, room)
	if err != nil {
		return nil, err
	}
	state, err := s.sessions.Get(ctx, team.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !state.IsActive() {
		return nil, fmt.Errorf("team %s: %w", team.Name, ErrNoActiveSession)
	}

	subject, body := FormatDigest(team.Name, time.Now(), state.Session().Reports)

	mailCtx, cancel := context.WithTimeout(ctx, s.mailTimeout)
	defer cancel()
	if err := s.mailer.SendDigest(mailCtx, team.Email, subject, body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	// A cancel racing the delivery may have closed the session already; the
	// digest went out either way, so that lost update is benign.
	if err := s.sessions.Delete(ctx, team.Name); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}
	return &EndResult{Team: team, To: team.Email, Subject: subject}, nil
}

// Cancel closes the standup without dispatching a digest. Collected reports
// are discarded.
func (s *StandupService) Cancel(ctx context.Context, explicitName, room string) (*domain.Team, error) {
	team, err := s.directory.ResolveTeam(ctx, explicitName, room)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, team.Name); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, fmt.Errorf("team %s: %w", team.Name, ErrNoActiveSession)
		}
		return nil, fmt.Errorf("failed to cancel standup: %w", err)
	}
	return team, nil
}

// HandleMention records a report from an inbound mention event. Self-mentions
// and mentions with no team, no running standup or a sender outside the
// roster are deliberate no-ops: the result is nil with no error.
func (s *StandupService) HandleMention(ctx context.Context, room, sender, body string) (*MentionResult, error) {
	if sender == "" || sender == s.botName {
		return nil, nil
	}

	team, err := s.directory.ResolveTeam(ctx, "", room)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAmbiguousContext) {
			return nil, nil
		}
		return nil, err
	}
	if !team.HasMember(sender) {
		return nil, nil
	}

	text := strings.TrimSpace(strings.ReplaceAll(body, s.botName, ""))
	if err := s.RecordReport(ctx, team.Name, sender, text); err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			return nil, nil
		}
		return nil, err
	}
	return &MentionResult{
		Team:   team,
		Member: sender,
		Reply:  fmt.Sprintf("%s, got it, thank you.", sender),
	}, nil
}
