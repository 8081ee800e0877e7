package llm

import (
	"errors"
	"net/http"
)

// FailureClass splits upstream failures into the ones that warrant trying the
// next credential and the ones that will fail identically on every key.
type FailureClass int

const (
	// Rotatable failures are credential-specific or transient: quota hit,
	// revoked key, provider hiccup, network error. The next credential in the
	// pool gets a chance.
	Rotatable FailureClass = iota

	// NonRotatable failures are about the request itself (malformed payload,
	// content-policy rejection). Retrying with another key would only burn
	// quota, so rotation stops immediately.
	NonRotatable
)

// Classifier decides the FailureClass of a provider error. It is injected
// into the rotating client so the rotation policy can be tuned per provider
// without touching the rotation loop.
type Classifier func(err error) FailureClass

// DefaultClassifier treats auth, quota and server-side failures as rotatable,
// along with transport errors that never produced an HTTP status. Everything
// else (other 4xx) is a problem with the request, not the credential.
func DefaultClassifier(err error) FailureClass {
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		// No HTTP status means the request never completed: timeout, DNS,
		// connection reset. Worth a retry on the next credential's endpoint.
		return Rotatable
	}

	switch provErr.Status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return Rotatable
	}
	if provErr.Status >= http.StatusInternalServerError {
		return Rotatable
	}
	return NonRotatable
}
