// Package guard provides the constructor-guard pattern used by domain objects
// to detect zero-value instances that bypassed their constructor.
//
// Embedding a ConstructorGuard in a struct and setting it via NewConstructorGuard
// inside the constructor lets Validate distinguish properly built objects from
// accidental zero values, keeping domain invariants intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error. This guarantees a failed validation always carries a message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// The zero value is "not constructed" and fails validation.
//
// Example:
//
//	type Vendor struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewVendor(name string) (Vendor, error) {
//	    if name == "" {
//	        return Vendor{}, errors.New("name is required")
//	    }
//	    return Vendor{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (v Vendor) Validate() error {
//	    return v.guard.Validate(ErrVendorIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
// Call it only from the object's constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
