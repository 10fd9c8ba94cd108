package domain

import "time"

// Role is the canonical role enum. Two older vocabularies exist in external
// systems (short codes like "manager"/"operator" and hyphenated names like
// "hub-manager"/"delivery-personnel"); both are accepted as aliases and
// normalized through ParseRole at the boundary.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleHubManager Role = "hub_manager"
	RoleDriver     Role = "driver"
	RoleOperations Role = "operations"
	RoleCustomer   Role = "customer"
)

// roleAliases maps every accepted external representation onto the canonical enum.
var roleAliases = map[string]Role{
	"admin":              RoleAdmin,
	"manager":            RoleHubManager,
	"hub-manager":        RoleHubManager,
	"hub_manager":        RoleHubManager,
	"driver":             RoleDriver,
	"delivery-personnel": RoleDriver,
	"delivery_personnel": RoleDriver,
	"operator":           RoleOperations,
	"operations":         RoleOperations,
	"customer":           RoleCustomer,
}

// ParseRole normalizes an external role string to the canonical enum.
// Unknown values return false.
func ParseRole(s string) (Role, bool) {
	r, ok := roleAliases[s]
	return r, ok
}

// User models a person in the system: admins, hub managers, drivers,
// operations staff and customers. Drivers and hub managers may belong to at
// most one hub.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         Role      `json:"role" bson:"role"`
	HubID        string    `json:"hub_id,omitempty" bson:"hub_id,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
