package kernel

import (
	"errors"
	"slices"

	"tradefinance/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the resolved identity of the caller of an operation. It carries
// the caller's identifier and role attributes, resolved once per invocation
// by the authentication layer and threaded explicitly through every command.
// A caller may hold more than one role attribute at once; sign-arrival
// derives the signing party from these attributes.
//
// Actor is immutable after construction.
type Actor struct {
	id    string
	roles []Role

	guard ConstructorGuard
}

// NewActor creates a caller identity from an identifier and at least one
// valid role attribute.
func NewActor(id string, actorRoles ...Role) (Actor, error) {
	if id == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor id")
	}
	if len(actorRoles) == 0 {
		return Actor{}, errs.NewValueIsRequiredError("actor roles")
	}
	for _, role := range actorRoles {
		if err := role.Validate(); err != nil {
			return Actor{}, err
		}
	}

	return Actor{
		id:    id,
		roles: slices.Clone(actorRoles),
		guard: NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the caller identifier.
func (a Actor) ID() string {
	return a.id
}

// Roles returns a copy of the caller's role attributes.
func (a Actor) Roles() []Role {
	return slices.Clone(a.roles)
}

// HasRole reports whether the caller holds the given role attribute.
func (a Actor) HasRole(role Role) bool {
	return slices.Contains(a.roles, role)
}

// HasAnyRole reports whether the caller holds at least one of the given
// role attributes.
func (a Actor) HasAnyRole(accepted ...Role) bool {
	for _, role := range accepted {
		if a.HasRole(role) {
			return true
		}
	}
	return false
}
