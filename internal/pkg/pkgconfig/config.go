package pkgconfig

// Config is the read-only view of application settings that modules depend on.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	Close() error
}
