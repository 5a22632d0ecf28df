package tokenprovider

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtExpiry returns the exp claim when the access token is a JWT.
// The signature is not verified; the value only ever shortens the cache lifetime.
func jwtExpiry(accessToken string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
