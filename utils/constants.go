// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 1 * time.Hour

// ProfileSessionPrefix is the prefix for Redis profile session keys.
const ProfileSessionPrefix = "profile:"

// ProfileSessionTTL is how long a profile session lives without a refresh.
const ProfileSessionTTL = 24 * time.Hour

// BookingSessionPrefix is the prefix for Redis booking session keys.
const BookingSessionPrefix = "bookingsession:"

// BookingSessionTTL bounds one booking-dialog interaction.
const BookingSessionTTL = 10 * time.Minute
