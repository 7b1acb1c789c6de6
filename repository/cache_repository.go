package repository

// CacheRepository caches marshalled estimate results keyed by an input
// hash. A miss is not an error; the caller recomputes.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
