package auth

import "time"

// NewJWTServiceWithClock builds a JWT service with an injected time source.
// Intended for tests that need to move the clock past token expiry.
func NewJWTServiceWithClock(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
