package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type jwtManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// New creates an HS256 Manager signing with secret.
func New(secret string) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &jwtManager{secret: []byte(secret), issuer: "task-assistant", now: time.Now}, nil
}

func (m *jwtManager) CreateToken(payload Payload, ttl time.Duration) (string, error) {
	now := m.now()
	payload.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   payload.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString(m.secret)
}

func (m *jwtManager) Verify(tokenStr string) (Payload, error) {
	var payload Payload
	token, err := jwt.ParseWithClaims(tokenStr, &payload, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuer(m.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}
	if !token.Valid || payload.UserID == "" || payload.SessionID == "" {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}
