package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when
// no specific validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created
// through their designated constructor functions. A zero-value struct fails
// validation, which keeps domain objects from being used before their
// invariants were checked.
//
// Embed the guard as a private field and set it with NewConstructorGuard
// inside the constructor:
//
//	type Actor struct {
//	    id    string
//	    guard ConstructorGuard
//	}
//
//	func NewActor(id string) (Actor, error) {
//	    if id == "" {
//	        return Actor{}, errors.New("id is required")
//	    }
//	    return Actor{id: id, guard: NewConstructorGuard()}, nil
//	}
//
//	func (a Actor) Validate() error {
//	    return a.guard.Validate(ErrActorIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
