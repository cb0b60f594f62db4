package session

import (
	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

// Profile is the identity decoded from the provider's signed credential.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// DecodeCredential extracts the profile from the identity provider's JWT
// credential. The signature is not verified here; the upstream backend is
// the party that vouches for the login, this decode only populates the
// login payload.
func DecodeCredential(credential string) (Profile, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return Profile{}, apperrors.NewUnauthorized("invalid identity credential")
	}

	profile := Profile{
		Email:   stringClaim(claims, "email"),
		Name:    stringClaim(claims, "name"),
		Picture: stringClaim(claims, "picture"),
	}
	if profile.Email == "" {
		return Profile{}, apperrors.NewUnauthorized("credential missing email")
	}
	return profile, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}
