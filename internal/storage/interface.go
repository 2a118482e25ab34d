package storage

import "github.com/julianstephens/dailyworkout/internal/prefs"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Preferences
	prefs.Store

	// Utils
	GetConfigPath() string
}

// Versioned is implemented by the SQL backends, which track a schema version.
type Versioned interface {
	SchemaVersion() (current, latest int, err error)
}
