package storage

// Provider is the persistence contract every component reads and writes
// through. One durable record per key, whole-record replace, last write
// wins. There is no atomicity across keys.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the raw value stored under key. The second return is
	// false when no value exists for the key.
	Get(key string) (string, bool, error)

	// Set replaces the value stored under key.
	Set(key, value string) error

	// Utils
	GetConfigPath() string
}
