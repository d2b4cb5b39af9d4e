package common

import "ember/types"

// OperatorMethod represents a resolved intrinsic operator: the operation to
// perform and the type it yields.
type OperatorMethod struct {
	// The op code of the intrinsic operation.  This must be one of the
	// enumerated op codes below.
	OpCode int

	// The result type of applying the operator.
	ReturnType types.Type
}

// Enumeration of intrinsic op codes.
const (
	OCAdd = iota
	OCSub
	OCMul
	OCDiv
	OCMod
	OCNeg

	OCEq
	OCNEq
	OCLt
	OCGt
	OCLtEq
	OCGtEq

	OCNot
	OCAnd
	OCOr
)
