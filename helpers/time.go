package helpers

import "time"

// Config files store periods as integer milliseconds, 0 means "use default".
func IntMillisecondDefault(x int, def time.Duration) time.Duration {
	if x == 0 {
		return def
	}
	return time.Duration(x) * time.Millisecond
}
