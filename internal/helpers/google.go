package helpers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleClaims is the subset of the Google ID token this API cares about.
type GoogleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

// VerifyGoogleIDToken checks the token signature against Google's published
// keys and pins the audience to this app's client id. The provider must
// assert the email as verified before we trust it for account matching.
func VerifyGoogleIDToken(ctx context.Context, idToken, clientID string) (*GoogleClaims, error) {
	if clientID == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID not set")
	}

	jwksCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{Ctx: jwksCtx})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google JWKS: %v", err)
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(idToken, &GoogleClaims{}, jwks.Keyfunc,
		jwt.WithAudience(clientID),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("google token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*GoogleClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid google token claims")
	}
	if iss := claims.Issuer; iss != "accounts.google.com" && iss != "https://accounts.google.com" {
		return nil, fmt.Errorf("unexpected google token issuer: %s", iss)
	}
	if claims.Email == "" || !claims.EmailVerified {
		return nil, errors.New("google account email is not verified")
	}
	return claims, nil
}
