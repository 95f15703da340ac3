// Package service holds the stateful client core: the session store, the
// role-scoped caches, the profile reconciliation engine, and the admin
// dispatcher. State is owned by explicit injectable services; nothing here is
// a package-level singleton.
package service

import "github.com/modista/modista-go/internal/apperrors"

// Result is the settled outcome of a user-facing operation. Exactly one of
// the success/error interpretations applies: OK true carries a success
// message, OK false an error message. Operations never leave both live, which
// replaces the pair of free-floating message strings the UI used to juggle.
type Result struct {
	OK      bool
	Message string
	// Route is the navigation target after a successful operation, when the
	// operation implies one ("" means stay).
	Route string
}

// success builds an OK result.
func success(message, route string) Result {
	return Result{OK: true, Message: message, Route: route}
}

// failure builds an error result from a classified error.
func failure(err error) Result {
	return Result{OK: false, Message: apperrors.UserMessage(err)}
}
