package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "wishlist"

type Maker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Maker {
	return &Maker{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *Maker) TTL() time.Duration { return m.ttl }

func (m *Maker) Create(sub string) (string, error) {
	if sub == "" {
		return "", errors.New("empty subject")
	}
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Subject validates tokenStr and returns its subject.
func (m *Maker) Subject(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	tk, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", err
	}
	if !tk.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}
