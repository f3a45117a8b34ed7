package models

import (
	"strings"
	"time"
)

// UserRole controls what a signed-in user may do in the application.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleViewer     UserRole = "viewer"
)

var roleRank = map[UserRole]int{
	RoleViewer:     1,
	RoleAccountant: 2,
	RoleAdmin:      3,
}

// Allows reports whether a user holding r may perform an action that
// requires the given role.
func (r UserRole) Allows(required UserRole) bool {
	return roleRank[r] >= roleRank[required]
}

// User is a cloud account as stored by the remote store server.
type User struct {
	// UserID is the owner identity stamped on every remote row (UUID).
	UserID string `json:"id"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// Password is only populated on sign-in/sign-up requests and never
	// persisted in plaintext.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept by the server.
	PasswordHash string `json:"-"`

	FullName    string    `json:"full_name,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	GSTState    string    `json:"gst_state,omitempty"`
	Role        UserRole  `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// LocalUser is an offline-mode account kept in the "users" dataset.
type LocalUser struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"passwordHash"`
	Role         UserRole   `json:"role"`
	CompanyName  string     `json:"companyName"`
	GSTState     string     `json:"gstState"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// SameUsername compares usernames case-insensitively.
func (u LocalUser) SameUsername(name string) bool {
	return strings.EqualFold(u.Username, name)
}

// Session is the authenticated cloud session held by the client.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
	User        User      `json:"user"`
	IssuedAt    time.Time `json:"-"`
}

// Valid reports whether the session can authorise remote calls.
func (s *Session) Valid() bool {
	return s != nil && s.AccessToken != "" && s.User.UserID != ""
}

// Credentials is the sign-in/registration input of a local account.
type Credentials struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Role        UserRole `json:"role,omitempty"`
	CompanyName string   `json:"companyName,omitempty"`
	GSTState    string   `json:"gstState,omitempty"`
}
