package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed reports a token that is not structurally a JWT.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignature reports a token whose signature does not verify.
	ErrTokenSignature = errors.New("token signature is invalid")
)

// expireTokenLayout is the calendar-date format stored in the expireToken
// claim. Clients consume it as an opaque string.
const expireTokenLayout = "2006-01-02"

// TokenUser is the identity block embedded under the "user" claim.
type TokenUser struct {
	ID          string `json:"id"`
	ExpireToken string `json:"expireToken"`
}

// Claims is the full claim set carried by issued tokens.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 bearer tokens.
//
// Expiry rides inside the user claim as a formatted date one lifetime ahead
// of issuance rather than in the registered exp field. Verify checks the
// signature and structure only and carries the date through untouched, so
// tokens stay valid for their signature lifetime. Existing clients depend on
// this claim shape.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenManager(secret string, lifetime time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), lifetime: lifetime}
}

// Issue signs a token for the given user id.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		User: TokenUser{
			ID:          userID,
			ExpireToken: now.Add(m.lifetime).Format(expireTokenLayout),
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and well-formedness and returns the decoded claims.
// It returns ErrTokenMalformed or ErrTokenSignature for the two client-caused
// failure modes; anything else is an internal fault.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, ErrTokenSignature):
			return nil, ErrTokenSignature
		}
		return nil, err
	}
	if !tkn.Valid {
		return nil, ErrTokenSignature
	}
	return claims, nil
}
