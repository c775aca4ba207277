package inmemory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okuzmina/standup_bot/internal/domain"
	"github.com/okuzmina/standup_bot/internal/repository"
	"github.com/okuzmina/standup_bot/internal/repository/inmemory"
)

func seedTeam(t *testing.T, reg *inmemory.Registry, name, room string, members ...string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, reg.Teams().Create(ctx, domain.Team{Name: name, Room: room, Email: name + "@x.com"}))
	for _, m := range members {
		require.NoError(t, reg.Teams().AddMember(ctx, name, m))
	}
}

func TestRegistry_TeamUniqueness(t *testing.T) {
	ctx := context.Background()
	reg := inmemory.NewRegistry()
	seedTeam(t, reg, "alpha", "#alpha")

	err := reg.Teams().Create(ctx, domain.Team{Name: "alpha", Room: "#other"})
	assert.ErrorIs(t, err, repository.ErrTeamExists)

	err = reg.Teams().Create(ctx, domain.Team{Name: "beta", Room: "#alpha"})
	assert.ErrorIs(t, err, repository.ErrRoomTaken)
}

func TestRegistry_MemberOrder(t *testing.T) {
	ctx := context.Background()
	reg := inmemory.NewRegistry()
	seedTeam(t, reg, "alpha", "#alpha", "@c", "@a", "@b")

	team, err := reg.Teams().GetByName(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"@c", "@a", "@b"}, team.Members)

	assert.ErrorIs(t, reg.Teams().AddMember(ctx, "alpha", "@a"), repository.ErrMemberExists)
	assert.ErrorIs(t, reg.Teams().RemoveMember(ctx, "alpha", "@zz"), repository.ErrMemberNotFound)
}

func TestRegistry_ReturnedTeamIsACopy(t *testing.T) {
	ctx := context.Background()
	reg := inmemory.NewRegistry()
	seedTeam(t, reg, "alpha", "#alpha", "@a")

	team, err := reg.Teams().GetByName(ctx, "alpha")
	require.NoError(t, err)
	team.Members[0] = "@mutated"

	fresh, err := reg.Teams().GetByName(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"@a"}, fresh.Members)
}

func TestRegistry_ConcurrentSessionCreateHasOneWinner(t *testing.T) {
	ctx := context.Background()
	reg := inmemory.NewRegistry()
	seedTeam(t, reg, "alpha", "#alpha", "@a")

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = reg.Sessions().Create(ctx, "alpha")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, repository.ErrSessionExists)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestRegistry_TeamDeleteCancelsSession(t *testing.T) {
	ctx := context.Background()
	reg := inmemory.NewRegistry()
	seedTeam(t, reg, "alpha", "#alpha", "@a")
	require.NoError(t, reg.Sessions().Create(ctx, "alpha"))

	require.NoError(t, reg.Teams().Delete(ctx, "alpha"))

	state, err := reg.Sessions().Get(ctx, "alpha")
	require.NoError(t, err)
	assert.False(t, state.IsActive())
}

func TestRegistry_UpsertReportKeepsArrivalPosition(t *testing.T) {
	ctx := context.Background()
	reg := inmemory.NewRegistry()
	seedTeam(t, reg, "alpha", "#alpha", "@a", "@b")
	require.NoError(t, reg.Sessions().Create(ctx, "alpha"))

	require.NoError(t, reg.Sessions().UpsertReport(ctx, "alpha", "@a", "one"))
	require.NoError(t, reg.Sessions().UpsertReport(ctx, "alpha", "@b", "two"))
	require.NoError(t, reg.Sessions().UpsertReport(ctx, "alpha", "@a", "three"))

	state, err := reg.Sessions().Get(ctx, "alpha")
	require.NoError(t, err)
	require.True(t, state.IsActive())
	reports := state.Session().Reports
	require.Len(t, reports, 2)
	assert.Equal(t, domain.Report{Member: "@a", Text: "three"}, reports[0])
	assert.Equal(t, domain.Report{Member: "@b", Text: "two"}, reports[1])
}

func TestRegistry_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	reg := inmemory.NewRegistry()
	seedTeam(t, reg, "alpha", "#alpha", "@a")

	assert.ErrorIs(t, reg.Sessions().Create(ctx, "ghost"), repository.ErrTeamNotFound)
	assert.ErrorIs(t, reg.Sessions().UpsertReport(ctx, "alpha", "@a", "x"), repository.ErrSessionNotFound)
	assert.ErrorIs(t, reg.Sessions().Delete(ctx, "alpha"), repository.ErrSessionNotFound)

	require.NoError(t, reg.Sessions().Create(ctx, "alpha"))
	state, err := reg.Sessions().Get(ctx, "alpha")
	require.NoError(t, err)
	assert.True(t, state.IsActive())

	require.NoError(t, reg.Sessions().Delete(ctx, "alpha"))
	state, err = reg.Sessions().Get(ctx, "alpha")
	require.NoError(t, err)
	assert.False(t, state.IsActive())
}
