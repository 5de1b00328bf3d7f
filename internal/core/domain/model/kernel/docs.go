// Package kernel provides shared value objects for the trade-finance domain.
//
// The package includes:
//   - Role: the caller-bound role attributes (seller, buyer, freight) used
//     by the authorization guard
//   - Actor: the resolved caller identity threaded through every operation
//   - ConstructorGuard: a defensive pattern ensuring objects are only
//     created through their constructors
//
// These types carry no behavior beyond validation and comparison; business
// rules that use them live in the order model and the application layer.
package kernel
