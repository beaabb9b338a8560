package auth

import (
	"errors"
	"fmt"

	"cmsselect/internal/clientinfo"
	"cmsselect/internal/domain"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/services"
)

// ClientResolver returns the configuration of a client.
type ClientResolver interface {
	Get(clientID int) (*clientinfo.Info, error)
}

// ClaimsAuthorizer implements ClientAuthorizer using the client list carried
// in the token claims.
type ClaimsAuthorizer struct {
	clients ClientResolver
}

var _ services.ClientAuthorizer = (*ClaimsAuthorizer)(nil)

// NewClaimsAuthorizer creates a new claims-based authorizer
func NewClaimsAuthorizer(clients ClientResolver) *ClaimsAuthorizer {
	return &ClaimsAuthorizer{clients: clients}
}

// CanAccessClient checks the token's client list, then that the client exists
func (a *ClaimsAuthorizer) CanAccessClient(claims *models.AdminClaims, clientID int) (*clientinfo.Info, error) {
	if claims != nil && !claims.CanAccessClient(clientID) {
		return nil, fmt.Errorf("access denied to client %d: %w", clientID, domain.ErrForbidden)
	}

	info, err := a.clients.Get(clientID)
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			return nil, fmt.Errorf("client %d: %w", clientID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("resolve client %d: %w", clientID, err)
	}
	return info, nil
}
