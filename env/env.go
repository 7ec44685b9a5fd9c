package env

import "os"

// Resolver defines an interface for environment resolution.
type Resolver interface {
	// Get returns the value of the environment variable named by the key.
	// It returns an empty string if the variable is not present.
	Get(key string) string

	// Lookup returns the value of the environment variable named by the key and
	// whether it was present at all.
	Lookup(key string) (string, bool)
}

// DefaultEnvResolver is the default implementation of the Resolver interface
// that encapsulates environment resolution using the os package.
type DefaultEnvResolver struct{}

// Get returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Get(key string) string {
	return os.Getenv(key)
}

// Lookup returns the value of the environment variable associated with the given key.
func (r *DefaultEnvResolver) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapResolver resolves variables from a fixed map. Useful in tests and when a launcher
// forwards a prepared environment.
type MapResolver map[string]string

func (m MapResolver) Get(key string) string {
	return m[key]
}

func (m MapResolver) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
