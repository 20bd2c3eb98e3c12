package core

import "fmt"

// ContractViolation is the panic value raised when a caller breaks a documented precondition
// (Get on a missing component, duplicate Insert). It indicates a defect in the calling system
// and is never recovered inside the library.
type ContractViolation struct {
	Op        string // Operation that was violated, e.g. "Store.Get"
	Entity    Entity
	Component string // Component type name
	Reason    string
}

func (v *ContractViolation) Error() string {
	return fmt.Sprintf("contract violation: %s(%s) on %s: %s", v.Op, v.Entity, v.Component, v.Reason)
}

// Violate panics with a ContractViolation
func Violate(op string, e Entity, component, reason string) {
	panic(&ContractViolation{
		Op:        op,
		Entity:    e,
		Component: component,
		Reason:    reason,
	})
}
