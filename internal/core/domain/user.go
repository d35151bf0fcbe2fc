package domain

import (
	"errors"
	"time"
)

// Role is the coarse capability label attached to a user. The raw strings
// match what the identity worker and the users table store.
type Role string

const (
	RoleEndUser         Role = "END_USER"
	RolePremiumUser     Role = "PREMIUM_USER"
	RoleClientAdmin     Role = "CLIENT_ADMIN"
	RoleSupplierAdmin   Role = "SUPPLIER_ADMIN"
	RoleProviderAdmin   Role = "PROVIDER_ADMIN"
	RoleGlobalAdmin     Role = "GLOBAL_ADMIN"
	RoleClientSupport   Role = "CLIENT_SUPPORT"
	RoleSupplierSupport Role = "SUPPLIER_SUPPORT"
)

// Capability groups raw roles into the buckets access checks care about.
type Capability string

const (
	CapabilityStandard Capability = "standard"
	CapabilityPremium  Capability = "premium"
	CapabilityAdmin    Capability = "admin"
)

// capabilities is the single mapping from raw role to capability group.
// Unknown roles fall back to standard.
var capabilities = map[Role]Capability{
	RoleEndUser:         CapabilityStandard,
	RolePremiumUser:     CapabilityPremium,
	RoleClientAdmin:     CapabilityAdmin,
	RoleSupplierAdmin:   CapabilityAdmin,
	RoleProviderAdmin:   CapabilityAdmin,
	RoleGlobalAdmin:     CapabilityAdmin,
	RoleClientSupport:   CapabilityAdmin,
	RoleSupplierSupport: CapabilityAdmin,
}

// Capability returns the capability group for the role.
func (r Role) Capability() Capability {
	if c, ok := capabilities[r]; ok {
		return c
	}
	return CapabilityStandard
}

// IsAdmin reports whether the role belongs to the admin capability group.
func (r Role) IsAdmin() bool {
	return r.Capability() == CapabilityAdmin
}

// Valid reports whether the role is one of the known literals.
func (r Role) Valid() bool {
	_, ok := capabilities[r]
	return ok
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an account stored locally. Accounts created through
// registration always start as END_USER; role changes happen elsewhere.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	AccessCode   string    `json:"access_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated view of a caller: what the identity worker
// returned, possibly enriched with the local user record. APIToken is the
// worker's opaque upstream token and is never interpreted here.
type Identity struct {
	UserID     int64  `json:"user_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	AccessCode string `json:"access_code,omitempty"`
	APIToken   string `json:"-"`
}
