package parameter

import "time"

// Store backends
const (
	// SQLiteBusyTimeout is applied to every pooled connection through the DSN
	SQLiteBusyTimeout = 5 * time.Second

	// RedisDialTimeout bounds connection setup and the startup ping
	RedisDialTimeout = 5 * time.Second

	// RedisIOTimeout bounds single reads and writes
	RedisIOTimeout = 3 * time.Second

	// ScoreFileMode is the permission of the file backend's score file
	ScoreFileMode = 0o644
)
