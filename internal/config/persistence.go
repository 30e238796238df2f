package config

const (
	envPersistEnabled = "PERSIST_ENABLED"
	envPersistPath    = "PERSIST_DB_PATH"

	defaultPersistPath = "data/roster.db"
)

// PersistenceConfig controls the durable state snapshot storage.
type PersistenceConfig struct {
	Enabled bool
	Path    string
}

func loadPersistence() PersistenceConfig {
	return PersistenceConfig{
		Enabled: boolEnvOrDefault(envPersistEnabled, true),
		Path:    envOrDefault(envPersistPath, defaultPersistPath),
	}
}
