package config

const (
	// DefaultPort is the HTTP listen port when PORT is unset
	DefaultPort = 8080

	// DefaultBossRosterPath is where the boss rotation content lives
	DefaultBossRosterPath = "configs/bosses.json"
)
