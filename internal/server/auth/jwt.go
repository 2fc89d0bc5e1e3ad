// Package auth mints and verifies signed session tokens and tracks tokens
// revoked before their natural expiry.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// RevocationStore is the set of tokens invalidated before expiry.
// Implementations must be safe for concurrent use.
type RevocationStore interface {
	Add(ctx context.Context, token string, expiresAt time.Time) error
	Contains(ctx context.Context, token string) (bool, error)
}

// Issuer signs HS256 session tokens whose subject is the account username.
// Tokens are deterministic for a fixed clock, secret and subject.
//
// Expiry is exclusive: a token is rejected from the exp second onwards, so
// a token issued with ttl is accepted strictly before issue time + ttl.
// Registered dates carry whole seconds, which can shorten the window by
// less than a second.
type Issuer struct {
	secret  []byte
	revoked RevocationStore
	now     func() time.Time
}

func NewIssuer(secret []byte, revoked RevocationStore, now func() time.Time) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{secret: secret, revoked: revoked, now: now}
}

// sessionClaims adds a millisecond issue time so that tokens minted for
// one subject within the same second still differ.
type sessionClaims struct {
	jwt.RegisteredClaims
	IssuedAtMs int64 `json:"iat_ms"`
}

func (i *Issuer) Issue(subject string, ttl time.Duration) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		IssuedAtMs: now.UnixMilli(),
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature, expiry and revocation and returns the subject.
// It returns common.ErrInvalidToken, common.ErrTokenExpired or
// common.ErrTokenRevoked; any other error comes from the revocation store.
func (i *Issuer) Verify(ctx context.Context, tokenString string) (string, error) {
	claims, err := i.parse(tokenString, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	if i.revoked != nil {
		revoked, err := i.revoked.Contains(ctx, tokenString)
		if err != nil {
			return "", fmt.Errorf("revocation lookup: %w", err)
		}
		if revoked {
			return "", common.ErrTokenRevoked
		}
	}

	return claims.Subject, nil
}

// Revoke adds a correctly signed token to the revocation set until its
// expiry. Already expired tokens need no entry.
func (i *Issuer) Revoke(ctx context.Context, tokenString string) error {
	claims, err := i.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(i.now()) {
		return nil
	}
	if i.revoked == nil {
		return errors.New("no revocation store configured")
	}
	return i.revoked.Add(ctx, tokenString, claims.ExpiresAt.Time)
}

func (i *Issuer) parse(tokenString string, opts ...jwt.ParserOption) (*sessionClaims, error) {
	claims := &sessionClaims{}
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
