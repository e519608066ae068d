package services

import "time"

// utcNow is the clock used for record timestamps. Postgres keeps microseconds,
// so timestamps are truncated to match what a read returns.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
