package game_constants

import "time"

const MaxPlayerCap = 50  // NOTE: This is what frontend uses as slider max
const MaxRecurrence = 12 // weekly repeats; ~3 months of games
const GameIDLength = 8

// Geo layer constants
const (
	NearbyCacheTTL    = 60 * time.Second
	MinNearbyResults  = 5 // below this the search radius auto-broadens
	GeoFetchTimeout   = 10 * time.Second
	CoordKeyPrecision = 2 // decimal places of lat/lng in cache keys
)

// Verification code (phone OTP) constants
const (
	VerificationCodeTTL    = 5 * time.Minute
	VerificationCodeDigits = 6
)
