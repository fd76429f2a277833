package config

// Storage backends
const (
	StorageBackendGdata    = "gdata"
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Default values
const (
	DefaultAppName         = "bloom"
	DefaultSaveProfile     = "default"
	DefaultLogDir          = "logs"
	DefaultDBMaxConns      = 4
	DefaultExamplePassword = "change_this_secure_password"
)
