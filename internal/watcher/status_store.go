package watcher

import (
	"os"
	"sdn/internal/models"
	"sdn/internal/providers"
	"sdn/internal/structures"

	json "github.com/goccy/go-json"
)

type StatusStoreInterface interface {
	Save(snapshot *models.PlayerSnapshot) error
	Load() (*models.PlayerSnapshot, error)
}

// StatusStore persists the last notified snapshot across restarts. It is
// single-writer; atomicity is temp-file-then-rename so a crash never
// leaves a truncated file behind.
type StatusStore struct {
	path   string
	logger providers.Logger
}

func NewStatusStore(conf *structures.Config, logger providers.Logger) StatusStoreInterface {
	return &StatusStore{
		path:   conf.Persistence.FilePath,
		logger: logger,
	}
}

func (s *StatusStore) Save(snapshot *models.PlayerSnapshot) error {
	data, err := json.Marshal(&models.StatusV1{
		Version:  models.StatusFileVersion,
		Snapshot: snapshot,
	})
	if err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.path)
}

// Load reads the last notified snapshot. A missing, unreadable or corrupt
// file is "no prior state" — (nil, nil) — never a fatal condition.
func (s *StatusStore) Load() (*models.PlayerSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var envelope models.StatusV1
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Snapshot != nil {
		return envelope.Snapshot, nil
	}

	// Earlier deployments wrote the bare snapshot object.
	var legacy models.PlayerSnapshot
	if err := json.Unmarshal(data, &legacy); err == nil && (legacy.Timestamp != 0 || legacy.Name != "") {
		s.logger.Warnf(providers.TypeApp, "Migrated legacy status file %s", s.path)
		return &legacy, nil
	}

	s.logger.Warnf(providers.TypeApp, "Discarding unreadable status file %s", s.path)
	return nil, nil
}
