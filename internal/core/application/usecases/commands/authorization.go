package commands

import (
	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/pkg/errs"
)

// authorize checks the caller's role attributes against the roles an
// operation accepts. It runs before any state inspection so the error path
// leaks nothing about record existence.
func authorize(actor kernel.Actor, accepted ...kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.HasAnyRole(accepted...) {
		return errs.NewUnauthorizedError(actor.ID(), kernel.RoleNames(accepted)...)
	}

	return nil
}
