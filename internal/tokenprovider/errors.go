package tokenprovider

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// ErrMissingAccessToken is wrapped by AuthError when the token endpoint answers
// successfully but the body has no access_token.
var ErrMissingAccessToken = errors.New("malformed token response: missing access_token")

// AuthError reports a failed token request. The cached token is never modified
// when an AuthError is returned.
type AuthError struct {
	// StatusCode is the token endpoint's HTTP status, 0 if no response was received.
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("token request failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("token request failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// newAuthError classifies an error returned by clientcredentials.Config.Token.
func newAuthError(err error) *AuthError {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		return &AuthError{StatusCode: status, Err: err}
	}
	// x/oauth2 v0.30.0 (internal/token.go doTokenRoundTrip) rejects an empty
	// access_token with the plain error "oauth2: server response missing access_token";
	// TestMissingAccessToken pins that wording.
	if strings.Contains(err.Error(), "missing access_token") {
		return &AuthError{Err: ErrMissingAccessToken}
	}
	return &AuthError{Err: err}
}
