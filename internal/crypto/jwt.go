package crypto

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "passcheck"
	tokenAudience = "passcheck-api"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated account in a passcheck token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// TokenIssuer signs and validates HS256 account tokens.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer returns a TokenIssuer whose tokens live for expiry.
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), expiry: expiry}
}

// Issue returns a signed token for userID.
func (ti *TokenIssuer) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// Validate parses tokenString and returns its claims when the signature,
// issuer, audience and expiry all check out.
func (ti *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
