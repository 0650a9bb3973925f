package models

import "time"

// StampLayout is the fixed createdAt format used across all three collections.
// Existing documents store dates this way, so it must not change.
const StampLayout = "02/01/2006 15:04"

// NowStamp returns the current time in the stored createdAt format.
func NowStamp() string {
	return time.Now().Format(StampLayout)
}
