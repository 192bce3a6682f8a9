package watcher

import (
	"errors"
	"sdn/internal/models"
	"sdn/internal/structures"
	"sdn/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type supervisorFixture struct {
	supervisor *Supervisor
	fetcher    *testutil.MockFetcher
	notifier   *testutil.MockNotifier
	store      *testutil.MockStatusStore
	logger     *testutil.MockLogger
}

func newSupervisorFixture(t *testing.T, filters structures.FiltersConfig) *supervisorFixture {
	t.Helper()
	conf := &structures.Config{
		Steam: structures.SteamConfig{
			APIKey:      "key",
			FriendID64:  "76561198000000000",
			PollSeconds: 15,
		},
		Filters: filters,
	}
	f := &supervisorFixture{
		fetcher:  &testutil.MockFetcher{},
		notifier: &testutil.MockNotifier{},
		store:    &testutil.MockStatusStore{},
		logger:   &testutil.MockLogger{},
	}
	f.supervisor = NewSupervisor(
		conf, f.logger, f.fetcher, f.notifier,
		NewDetector(conf), f.store, &testutil.NoopMetrics{},
	).(*Supervisor)
	return f
}

func TestSupervisor_TickNotifiesAndPersists(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{})
	curr := snap(1, "")
	f.fetcher.SetResult(curr, nil)

	f.supervisor.tick()

	require.Equal(t, 1, f.notifier.SendCount())
	assert.Equal(t, ReasonCameOnline, f.notifier.Sends[0].Reason)
	assert.Equal(t, curr, f.store.Stored)
	assert.Equal(t, curr, f.supervisor.prev)
}

func TestSupervisor_TickWithoutTransitionKeepsState(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{})
	curr := snap(1, "")
	f.supervisor.prev = curr
	f.fetcher.SetResult(curr, nil)

	f.supervisor.tick()

	assert.Zero(t, f.notifier.SendCount())
	assert.Zero(t, f.store.SaveCalls)
}

func TestSupervisor_FailedSendRetriesNextTick(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{})
	curr := snap(1, "")
	f.fetcher.SetResult(curr, nil)

	f.notifier.Err = errors.New("discord is down")
	f.supervisor.tick()

	assert.Equal(t, 1, f.notifier.SendCount())
	assert.Nil(t, f.supervisor.prev, "a failed send must not advance prev")
	assert.Zero(t, f.store.SaveCalls)

	// Same detected transition fires again once the sink recovers.
	f.notifier.Err = nil
	f.supervisor.tick()

	assert.Equal(t, 2, f.notifier.SendCount())
	assert.Equal(t, curr, f.supervisor.prev)
	assert.Equal(t, 1, f.store.SaveCalls)
}

func TestSupervisor_SuppressedTransitionDoesNotAdvancePrev(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{OnlyGames: []string{"dota 2"}})
	f.supervisor.prev = snap(1, "")

	// Starts an off-list game: suppressed, prev untouched.
	f.fetcher.SetResult(snap(1, "CSGO"), nil)
	f.supervisor.tick()
	assert.Zero(t, f.notifier.SendCount())
	assert.False(t, f.supervisor.prev.InGame)

	// The first admitted game still fires because prev never advanced.
	admitted := snap(1, "Dota 2")
	f.fetcher.SetResult(admitted, nil)
	f.supervisor.tick()
	require.Equal(t, 1, f.notifier.SendCount())
	assert.Equal(t, ReasonStartedPlaying, f.notifier.Sends[0].Reason)
	assert.Equal(t, admitted, f.supervisor.prev)
}

func TestSupervisor_FetchErrorSkipsTick(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{})
	f.fetcher.SetResult(nil, errors.New("steam api status 503: down"))

	f.supervisor.tick()

	assert.Zero(t, f.notifier.SendCount())
	assert.Zero(t, f.store.SaveCalls)
	assert.Equal(t, 1, f.logger.Count("error"))
}

func TestSupervisor_AnnounceIgnoresFilters(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{
		OnlyOnline: true,
		OnlyGames:  []string{"x"},
	})

	f.supervisor.Announce()

	require.Equal(t, 1, f.notifier.SendCount())
	sent := f.notifier.Sends[0]
	assert.Equal(t, "is now online ✅", sent.Reason)
	assert.Equal(t, "Bot", sent.Snapshot.Name)
	assert.Equal(t, "startup", sent.Snapshot.StateLabel)
	assert.Equal(t, models.PersonaOnline, sent.Snapshot.PersonaState)
	assert.False(t, sent.Snapshot.InGame)
}

func TestSupervisor_RestoreLoadsPrev(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{})
	stored := snap(1, "Dota 2")
	f.store.Stored = stored

	require.NoError(t, f.supervisor.Restore())
	assert.Equal(t, stored, f.supervisor.prev)

	// Restored in-game state means re-observing the same game stays quiet.
	f.fetcher.SetResult(snap(1, "Dota 2"), nil)
	f.supervisor.tick()
	assert.Zero(t, f.notifier.SendCount())
}

func TestSupervisor_StartStopDrains(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{})
	f.fetcher.SetResult(snap(0, ""), nil)

	f.supervisor.Start()
	f.supervisor.Stop()

	// The immediate tick ran exactly once; no tick starts after Stop.
	assert.Equal(t, 1, f.fetcher.CallCount)
}

func TestSupervisor_StatusReflectsLastPoll(t *testing.T) {
	f := newSupervisorFixture(t, structures.FiltersConfig{})

	status := f.supervisor.Status()
	assert.Equal(t, "76561198000000000", status.Watching)
	assert.Zero(t, status.LastPollUnix)
	assert.Nil(t, status.LastSeen)

	curr := snap(1, "")
	f.fetcher.SetResult(curr, nil)
	f.supervisor.tick()

	status = f.supervisor.Status()
	assert.Equal(t, curr, status.LastSeen)
	assert.NotZero(t, status.LastPollUnix)
}
