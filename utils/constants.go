// File: utils/constants.go
package utils

import "time"

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// RoleCacheTTL is the time-to-live for cached role lookups.
const RoleCacheTTL = 10 * time.Minute

// DateLayout is the calendar-date format used for booking dates.
// No time zone conversion is performed on booking dates.
const DateLayout = "2006-01-02"
