package models

import "github.com/golang-jwt/jwt/v5"

// MemberClaims is the payload carried by the X-Access-Token header.
type MemberClaims struct {
	jwt.RegisteredClaims
	MemberID     uint   `json:"member_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

// IsAdmin reports whether the claims belong to an admin account.
func (c *MemberClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
