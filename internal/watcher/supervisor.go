package watcher

import (
	"context"
	"sdn/internal/discord"
	"sdn/internal/models"
	"sdn/internal/providers"
	"sdn/internal/steam"
	"sdn/internal/structures"
	"sync"
	"time"
)

type SupervisorInterface interface {
	Restore() error
	Announce()
	Start()
	Stop()
	Status() Status
}

// Status is the read-side view served by the HTTP controllers.
type Status struct {
	Watching     string                 `json:"watching"`
	LastPollUnix int64                  `json:"last_poll_unix"`
	LastSeen     *models.PlayerSnapshot `json:"snapshot"`
}

// Supervisor runs the poll loop. A tick is strictly sequential —
// fetch, decide, send, persist — and ticks never overlap: the loop is a
// single goroutine and Stop waits for the in-flight tick to drain.
type Supervisor struct {
	config   *structures.Config
	logger   providers.Logger
	client   steam.ClientInterface
	notifier discord.Notifier
	detector *Detector
	store    StatusStoreInterface
	metrics  providers.MetricsProviderInterface

	mu       sync.Mutex
	prev     *models.PlayerSnapshot
	lastSeen *models.PlayerSnapshot
	lastPoll time.Time

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewSupervisor(
	config *structures.Config,
	logger providers.Logger,
	client steam.ClientInterface,
	notifier discord.Notifier,
	detector *Detector,
	store StatusStoreInterface,
	metrics providers.MetricsProviderInterface,
) SupervisorInterface {
	return &Supervisor{
		config:   config,
		logger:   logger,
		client:   client,
		notifier: notifier,
		detector: detector,
		store:    store,
		metrics:  metrics,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Restore loads the last notified snapshot from disk.
func (s *Supervisor) Restore() error {
	snapshot, err := s.store.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.prev = snapshot
	s.mu.Unlock()
	if snapshot != nil {
		s.logger.Infof(providers.TypeApp, "Restored last notified status: %s (%s)",
			snapshot.Name, snapshot.StateLabel)
	}
	return nil
}

// Announce sends the synthetic startup notification. It fires on every
// start regardless of filters; a failure is logged, never fatal.
func (s *Supervisor) Announce() {
	startup := &models.PlayerSnapshot{
		Name:         "Bot",
		PersonaState: models.PersonaOnline,
		StateLabel:   "startup",
		Timestamp:    time.Now().Unix(),
	}
	if err := s.notifier.Send(startup, "is now online ✅"); err != nil {
		s.metrics.IncNotifyFailuresTotal(s.notifier.Name())
		return
	}
	s.metrics.IncNotificationsTotal(s.notifier.Name(), "startup")
}

func (s *Supervisor) Start() {
	interval := time.Duration(s.config.Steam.PollSeconds) * time.Second
	s.logger.Infof(providers.TypeApp, "Watching %s, polling Steam every %s",
		s.config.Steam.FriendID64, interval)
	go s.loop(interval)
}

func (s *Supervisor) loop(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.tick()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// Stop requests shutdown and blocks until the current tick, if any, has
// completed. In-flight HTTP calls finish or time out naturally.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Supervisor) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{
		Watching: s.config.Steam.FriendID64,
		LastSeen: s.lastSeen,
	}
	if !s.lastPoll.IsZero() {
		status.LastPollUnix = s.lastPoll.Unix()
	}
	return status
}

// tick performs one fetch → decide → (send → persist) pass. Every error
// is logged and swallowed; the loop retries on the next tick.
func (s *Supervisor) tick() {
	start := time.Now()
	curr, err := s.client.FetchSnapshot(context.Background())
	if err != nil {
		s.metrics.IncPollsTotal("error")
		s.logger.Errorf(providers.TypePoll, "Fetch failed: %s", err)
		return
	}
	s.metrics.IncPollsTotal("ok")
	s.metrics.ObservePollDuration(time.Since(start))
	s.metrics.SetPersonaState(curr.PersonaState)
	s.metrics.SetInGame(curr.InGame)

	s.mu.Lock()
	s.lastSeen = curr
	s.lastPoll = time.Now()
	prev := s.prev
	s.mu.Unlock()

	notify, reason := s.detector.Decide(prev, curr)
	if !notify {
		s.logger.Debugf(providers.TypePoll, "%s is %s, nothing to report",
			curr.Name, curr.StateLabel)
		return
	}

	if err := s.notifier.Send(curr, reason); err != nil {
		// prev stays put so the next tick re-detects the same transition.
		s.metrics.IncNotifyFailuresTotal(s.notifier.Name())
		return
	}
	s.metrics.IncNotificationsTotal(s.notifier.Name(), reason)
	s.logger.Infof(providers.TypeNotify, "%s %s", curr.Name, reason)

	s.mu.Lock()
	s.prev = curr
	s.mu.Unlock()

	if err := s.store.Save(curr); err != nil {
		s.logger.Warnf(providers.TypeApp, "Status persist failed: %s", err)
	}
}
