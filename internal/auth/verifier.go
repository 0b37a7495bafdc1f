package auth

import (
	"context"
	"time"

	keyfunc "github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	Domain   string // e.g. your-tenant.eu.auth0.com
	Audience string // e.g. https://wishlist.example
}

// Verifier checks RS256 tokens issued by an external identity provider
// against its published JWKS.
type Verifier struct {
	cfg Config
	kf  keyfunc.Keyfunc
}

func NewVerifier(ctx context.Context, cfg Config) (*Verifier, error) {
	kf, err := keyfunc.NewDefaultCtx(ctx, []string{
		"https://" + cfg.Domain + "/.well-known/jwks.json",
	})
	if err != nil {
		return nil, err
	}
	return &Verifier{cfg: cfg, kf: kf}, nil
}

func (v *Verifier) Subject(raw string) (string, error) {
	tok, err := jwt.Parse(raw, v.kf.Keyfunc,
		jwt.WithAudience(v.cfg.Audience),
		jwt.WithIssuer("https://"+v.cfg.Domain+"/"),
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return "", err
	}
	if !tok.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}
