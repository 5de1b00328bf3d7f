package kernel

import (
	"fmt"

	"tradefinance/internal/pkg/errs"
)

// Role is a caller-bound credential claim used for authorization. The escrow
// workflow recognizes exactly three parties: the seller who creates and ships
// orders, the buyer who confirms and pays, and the freight carrier who
// attests physical delivery.
type Role string

const (
	RoleSeller  Role = "seller"
	RoleBuyer   Role = "buyer"
	RoleFreight Role = "freight"
)

// roles lists every role the workflow accepts.
func roles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleSeller:  {},
		RoleBuyer:   {},
		RoleFreight: {},
	}
}

// RoleFromString parses a role attribute as carried in caller credentials.
// Unknown attributes are rejected rather than ignored so that a typo in a
// credential never silently widens access.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of seller, buyer, or freight.
func (r Role) Validate() error {
	if _, ok := roles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a recognized role", string(r)))
	}
	return nil
}

// String returns the role attribute as stored in credentials.
func (r Role) String() string {
	return string(r)
}

// RoleNames converts a role list to plain strings, mostly for error messages.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return names
}
