package controllers

import (
	"sdn/internal/models"
	"sdn/internal/watcher"
)

type mockSupervisor struct {
	status watcher.Status
}

func (m *mockSupervisor) Restore() error         { return nil }
func (m *mockSupervisor) Announce()              {}
func (m *mockSupervisor) Start()                 {}
func (m *mockSupervisor) Stop()                  {}
func (m *mockSupervisor) Status() watcher.Status { return m.status }

func onlineStatus() watcher.Status {
	return watcher.Status{
		Watching:     "76561198000000000",
		LastPollUnix: 1700000000,
		LastSeen: &models.PlayerSnapshot{
			Name:         "A",
			PersonaState: models.PersonaOnline,
			StateLabel:   "online",
			Timestamp:    1700000000,
		},
	}
}
