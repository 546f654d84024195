package middleware

import (
	"sync"
	"time"
)

// Revoked jtis with their expiration; entries are pruned once the token
// would have expired anyway.
var (
	revokedMu     sync.Mutex
	revokedTokens = make(map[string]time.Time)
)

// RevokeToken blacklists a token's jti until its expiration time.
func RevokeToken(jti string, exp time.Time) {
	revokedMu.Lock()
	defer revokedMu.Unlock()
	revokedTokens[jti] = exp
}

// IsTokenRevoked reports whether the jti was revoked and is still within its
// original lifetime.
func IsTokenRevoked(jti string) bool {
	revokedMu.Lock()
	defer revokedMu.Unlock()

	now := time.Now()
	for id, exp := range revokedTokens {
		if now.After(exp) {
			delete(revokedTokens, id)
		}
	}

	_, revoked := revokedTokens[jti]
	return revoked
}
