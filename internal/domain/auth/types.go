package auth

// Package auth contains domain-level types for the client-side session.
// It is pure and free of transport/adapter concerns.

import "time"

// Role represents the application role carried by the login response.
// Kept in string form for easy persistence. Valid values below; an empty
// role means the server omitted it.
type Role string

const (
	RoleMember Role = "Member"
	RoleAdmin  Role = "Admin"
)

// User is the identity portion of the session, as issued by the API at login.
type User struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
	// ExpiresAt is the absolute token expiry. A zero value means the server
	// did not supply one; such sessions never passively expire.
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session is the in-memory and persisted record of the current user's
// credential and identity. Token is the opaque bearer credential; empty
// together with a nil User means unauthenticated.
type Session struct {
	Token           string `json:"token"`
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Empty is the unauthenticated zero session.
func Empty() Session {
	return Session{}
}

// Consistent reports whether the derived IsAuthenticated flag agrees with
// the token/user pair. Every reachable session state must satisfy this.
func (s Session) Consistent() bool {
	return s.IsAuthenticated == (s.User != nil)
}

// IsAdmin returns true iff the session is authenticated with the Admin role.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated && s.User != nil && s.User.Role == RoleAdmin
}

// IsMember returns true iff the session is authenticated with the Member role.
func (s Session) IsMember() bool {
	return s.IsAuthenticated && s.User != nil && s.User.Role == RoleMember
}

// HasRole reports whether the session satisfies a role requirement.
// An empty requirement only asks for authentication.
func (s Session) HasRole(required Role) bool {
	if !s.IsAuthenticated || s.User == nil {
		return false
	}
	return required == "" || s.User.Role == required
}

// AuthResponse is the login response shape consumed by the session store.
// Any field may be absent from the wire; absent strings decode to "" and an
// absent expiry decodes to the zero time.
type AuthResponse struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}
