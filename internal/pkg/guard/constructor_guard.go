// Package guard provides the constructor guard pattern used by domain value
// objects, entities, commands, and queries to detect zero-value instances that
// bypassed their designated constructor.
//
// Embedding a ConstructorGuard in a struct lets Validate methods distinguish a
// properly constructed object from one that was directly instantiated. The
// zero value of ConstructorGuard always fails validation, so any object built
// without its constructor is rejected before it can be used.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is invalid and fails Validate, which is the whole point:
// structs that embed a guard cannot be usefully created with a literal.
//
// Example:
//
//	type Money struct {
//	    cents int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMoney(cents int64) (Money, error) {
//	    if cents < 0 {
//	        return Money{}, errors.New("cents must not be negative")
//	    }
//	    return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
