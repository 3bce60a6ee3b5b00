package repository

import (
	"os"
	"strconv"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Monetary values are stored as exact decimal strings, never as binary
// floats.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatFromString(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// timeToString keeps the zero time as an empty attribute so the mapping
// round-trips.
func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func timeFromString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
