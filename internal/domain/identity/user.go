package identity

import (
	"context"

	"github.com/paperstock/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role determines which navigation entries and admin pages a user can reach.
// This is presentation-layer gating, not a security boundary.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is a static account from the configured user table. Identifier is the
// login code the user types (e.g. ADM001). PasswordHash is an optional
// bcrypt hash; when empty, the identifier alone authenticates.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Identifier   string `json:"identifier"`
	PasswordHash string `json:"-"`
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CheckPassword verifies the optional password. Users without a hash accept
// any password, matching the original static lookup.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Directory is the injected static user table. It is constructed explicitly
// at startup rather than living as a process-wide singleton, so tests can
// build isolated directories.
type Directory struct {
	users []User
}

// NewDirectory creates a user directory from an explicit user list
func NewDirectory(users []User) (*Directory, error) {
	seen := make(map[string]bool, len(users))
	for _, u := range users {
		if u.ID == "" || u.Identifier == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "User ID and identifier cannot be empty")
		}
		if !u.Role.IsValid() {
			return nil, shared.NewDomainError("INVALID_INPUT", "User role must be admin or user")
		}
		if seen[u.Identifier] {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Duplicate user identifier")
		}
		seen[u.Identifier] = true
	}
	return &Directory{users: users}, nil
}

// FindByIdentifier looks up a user by login identifier
func (d *Directory) FindByIdentifier(_ context.Context, identifier string) (*User, error) {
	for i := range d.users {
		if d.users[i].Identifier == identifier {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindByID looks up a user by internal id
func (d *Directory) FindByID(_ context.Context, id string) (*User, error) {
	for i := range d.users {
		if d.users[i].ID == id {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns the full user table in configured order
func (d *Directory) FindAll(_ context.Context) ([]User, error) {
	out := make([]User, len(d.users))
	copy(out, d.users)
	return out, nil
}

// DefaultUsers returns the built-in user table
func DefaultUsers() []User {
	return []User{
		{ID: "admin-001", Name: "Admin User", Role: RoleAdmin, Identifier: "ADM001"},
		{ID: "user-001", Name: "John Doe", Role: RoleUser, Identifier: "USR001"},
		{ID: "user-002", Name: "Jane Smith", Role: RoleUser, Identifier: "USR002"},
	}
}
