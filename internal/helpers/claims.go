package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Action kinds embedded in email action tokens. A verify token can never be
// consumed as a reset token or vice versa.
const (
	ActionVerify        = "verify"
	ActionPasswordReset = "pwd_reset"

	VerifyTokenTTL = 24 * time.Hour
	ResetTokenTTL  = 15 * time.Minute
)

var (
	ErrWrongTokenAction = errors.New("wrong token type")
	ErrInvalidToken     = errors.New("invalid or expired token")
)

// SessionClaims carries only the user id; everything else is fetched fresh.
type SessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// ActionClaims binds a pending email action to the user, the email the token
// was issued for, and the language of the resulting email/redirect.
type ActionClaims struct {
	Action string `json:"act"`
	Email  string `json:"email"`
	Lang   string `json:"lang"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret     []byte
	sessionTTL time.Duration
}

func NewTokenIssuer(secret string, sessionTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), sessionTTL: sessionTTL}
}

func (ti *TokenIssuer) IssueSessionToken(userID string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

func (ti *TokenIssuer) SessionTTL() time.Duration {
	return ti.sessionTTL
}

func (ti *TokenIssuer) ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, ti.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (ti *TokenIssuer) IssueActionToken(action, userID, email, lang string) (string, error) {
	var ttl time.Duration
	switch action {
	case ActionVerify:
		ttl = VerifyTokenTTL
	case ActionPasswordReset:
		ttl = ResetTokenTTL
	default:
		return "", fmt.Errorf("unknown token action: %s", action)
	}

	now := time.Now()
	claims := ActionClaims{
		Action: action,
		Email:  email,
		Lang:   lang,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// ParseActionToken validates the signature and expiry, then requires the
// embedded action tag to match what the caller is consuming.
func (ti *TokenIssuer) ParseActionToken(tokenStr, expectedAction string) (*ActionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &ActionClaims{}, ti.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*ActionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Action != expectedAction {
		return nil, ErrWrongTokenAction
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (ti *TokenIssuer) keyFunc(token *jwt.Token) (interface{}, error) {
	return ti.secret, nil
}
