package cmd

// Config carries everything the process needs from the environment.
type Config struct {
	HTTPPort string

	// StoreBackend selects the persistence adapter: "memory" or "postgres".
	StoreBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SeedDemoData bool

	StatsRefreshSchedule        string
	NotificationCleanupSchedule string
	NotificationTTLHours        int
}
