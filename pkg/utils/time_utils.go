package utils

import "time"

// Stored timestamps are epoch seconds; formatting is left to clients.
func NowUnixSeconds() int64 { return time.Now().Unix() }
