package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are the JWT claims of a CMS backend user calling the selector API.
type AdminClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Role    string `json:"role"`
	Clients []int  `json:"clients"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *AdminClaims) GetUserID() string {
	return c.Subject
}

// CanAccessClient reports whether the token grants access to clientID. A token
// without a client list grants access to every client.
func (c *AdminClaims) CanAccessClient(clientID int) bool {
	if len(c.Clients) == 0 {
		return true
	}
	for _, id := range c.Clients {
		if id == clientID {
			return true
		}
	}
	return false
}
