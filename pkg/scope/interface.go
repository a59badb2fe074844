package scope

import "time"

// Manager issues and verifies session tokens.
type Manager interface {
	CreateToken(payload Payload, ttl time.Duration) (string, error)
	Verify(token string) (Payload, error)
}
