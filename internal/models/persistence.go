package models

// StatusV1 is the on-disk envelope for the last notified snapshot.
// It is a JSON superset of the bare snapshot object written by earlier
// deployments — those files unmarshal into this struct with Version as
// zero-value and are migrated on load.
type StatusV1 struct {
	Version  int             `json:"version"`
	Snapshot *PlayerSnapshot `json:"snapshot"`
}

// StatusFileVersion is the version stamped into freshly written status files.
const StatusFileVersion = 1
