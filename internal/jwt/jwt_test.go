package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_RoundTrip(t *testing.T) {
	m := New("secret-secret-secret-secret-1234", time.Hour)

	tok, err := m.Create("admin-1")
	require.NoError(t, err)

	sub, err := m.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", sub)
}

func TestMaker_EmptySubject(t *testing.T) {
	_, err := New("s", time.Hour).Create("")
	assert.Error(t, err)
}

func TestMaker_WrongSecret(t *testing.T) {
	tok, err := New("one", time.Hour).Create("a")
	require.NoError(t, err)

	_, err = New("two", time.Hour).Subject(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestMaker_Expired(t *testing.T) {
	m := New("s", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := m.Create("a")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Subject(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestMaker_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "a", Issuer: issuer}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = New("s", time.Hour).Subject(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}
