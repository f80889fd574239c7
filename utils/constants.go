package utils

import "time"

// RevokedTokenPrefix is the prefix used for Redis token-revocation keys.
const RevokedTokenPrefix = "revoked:"

// RevokedTokenTTL is how long a revoked token hash stays cached; matches the
// maximum token lifetime.
const RevokedTokenTTL = 24 * time.Hour
