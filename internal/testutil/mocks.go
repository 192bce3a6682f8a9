package testutil

import (
	"context"
	"sdn/internal/models"
	"sdn/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns the number of recorded entries at the given level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockFetcher implements steam.ClientInterface with an injectable result.
type MockFetcher struct {
	mu        sync.Mutex
	Snapshot  *models.PlayerSnapshot
	Err       error
	CallCount int
}

func (m *MockFetcher) FetchSnapshot(_ context.Context) (*models.PlayerSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	return m.Snapshot, m.Err
}

func (m *MockFetcher) SetResult(snapshot *models.PlayerSnapshot, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Snapshot = snapshot
	m.Err = err
}

// MockNotifier implements discord.Notifier and records sends.
type MockNotifier struct {
	mu    sync.Mutex
	Err   error
	Sends []SendCall
}

type SendCall struct {
	Snapshot *models.PlayerSnapshot
	Reason   string
}

func (m *MockNotifier) Name() string { return "mock" }

func (m *MockNotifier) Send(snapshot *models.PlayerSnapshot, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sends = append(m.Sends, SendCall{Snapshot: snapshot, Reason: reason})
	return m.Err
}

func (m *MockNotifier) SendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sends)
}

// MockStatusStore implements watcher.StatusStoreInterface in memory.
type MockStatusStore struct {
	mu        sync.Mutex
	Stored    *models.PlayerSnapshot
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockStatusStore) Save(snapshot *models.PlayerSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Stored = snapshot
	return nil
}

func (m *MockStatusStore) Load() (*models.PlayerSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Stored, m.LoadErr
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// NoopMetrics implements providers.MetricsProviderInterface.
type NoopMetrics struct{}

func (n *NoopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *NoopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *NoopMetrics) IncPollsTotal(_ string)                           {}
func (n *NoopMetrics) ObservePollDuration(_ time.Duration)              {}
func (n *NoopMetrics) IncNotificationsTotal(_, _ string)                {}
func (n *NoopMetrics) IncNotifyFailuresTotal(_ string)                  {}
func (n *NoopMetrics) SetPersonaState(_ int)                            {}
func (n *NoopMetrics) SetInGame(_ bool)                                 {}
