package services

import (
	"cmsselect/internal/clientinfo"
	"cmsselect/internal/domain/models"
)

// ClientAuthorizer checks if a caller can render selectors of a client.
//
// Handlers call the authorizer before building a selector. Nil claims mean
// authentication is disabled and every configured client is reachable.
type ClientAuthorizer interface {
	// CanAccessClient returns the client's configuration. Fails with
	// ErrForbidden when the token does not cover the client and with
	// ErrNotFound when the client is not configured.
	CanAccessClient(claims *models.AdminClaims, clientID int) (*clientinfo.Info, error)
}
