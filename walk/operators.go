package walk

import (
	"ember/common"
	"ember/syntax"
	"ember/types"
)

// GetIntrinsicBinaryOperator gets the intrinsic operator method corresponding
// to the binary operator token kind applied to the given operand types.  It
// returns nil if no intrinsic operator matches: for user code the walker turns
// that into a compile error; for compiler-synthesized operators a nil result
// is a compiler bug.
func GetIntrinsicBinaryOperator(kind int, lhs, rhs types.Type) *common.OperatorMethod {
	if !types.Equals(lhs, rhs) {
		return nil
	}

	lpt, ok := lhs.(types.PrimitiveType)
	if !ok {
		return nil
	}

	if lpt.IsIntegral() {
		switch kind {
		case syntax.TOK_PLUS:
			return &common.OperatorMethod{OpCode: common.OCAdd, ReturnType: types.PrimTypeI64}
		case syntax.TOK_MINUS:
			return &common.OperatorMethod{OpCode: common.OCSub, ReturnType: types.PrimTypeI64}
		case syntax.TOK_STAR:
			return &common.OperatorMethod{OpCode: common.OCMul, ReturnType: types.PrimTypeI64}
		case syntax.TOK_DIV:
			return &common.OperatorMethod{OpCode: common.OCDiv, ReturnType: types.PrimTypeI64}
		case syntax.TOK_MOD:
			return &common.OperatorMethod{OpCode: common.OCMod, ReturnType: types.PrimTypeI64}
		case syntax.TOK_LT:
			return &common.OperatorMethod{OpCode: common.OCLt, ReturnType: types.PrimTypeBool}
		case syntax.TOK_GT:
			return &common.OperatorMethod{OpCode: common.OCGt, ReturnType: types.PrimTypeBool}
		case syntax.TOK_LTEQ:
			return &common.OperatorMethod{OpCode: common.OCLtEq, ReturnType: types.PrimTypeBool}
		case syntax.TOK_GTEQ:
			return &common.OperatorMethod{OpCode: common.OCGtEq, ReturnType: types.PrimTypeBool}
		case syntax.TOK_EQ:
			return &common.OperatorMethod{OpCode: common.OCEq, ReturnType: types.PrimTypeBool}
		case syntax.TOK_NEQ:
			return &common.OperatorMethod{OpCode: common.OCNEq, ReturnType: types.PrimTypeBool}
		}

		return nil
	}

	if lpt == types.PrimTypeBool {
		switch kind {
		case syntax.TOK_AND:
			return &common.OperatorMethod{OpCode: common.OCAnd, ReturnType: types.PrimTypeBool}
		case syntax.TOK_OR:
			return &common.OperatorMethod{OpCode: common.OCOr, ReturnType: types.PrimTypeBool}
		case syntax.TOK_EQ:
			return &common.OperatorMethod{OpCode: common.OCEq, ReturnType: types.PrimTypeBool}
		case syntax.TOK_NEQ:
			return &common.OperatorMethod{OpCode: common.OCNEq, ReturnType: types.PrimTypeBool}
		}
	}

	return nil
}

// GetIntrinsicUnaryOperator gets the intrinsic operator method corresponding
// to the unary operator token kind applied to the given operand type.  It
// returns nil if no intrinsic operator matches.
func GetIntrinsicUnaryOperator(kind int, operand types.Type) *common.OperatorMethod {
	pt, ok := operand.(types.PrimitiveType)
	if !ok {
		return nil
	}

	switch kind {
	case syntax.TOK_MINUS:
		if pt.IsIntegral() {
			return &common.OperatorMethod{OpCode: common.OCNeg, ReturnType: types.PrimTypeI64}
		}
	case syntax.TOK_NOT:
		if pt == types.PrimTypeBool {
			return &common.OperatorMethod{OpCode: common.OCNot, ReturnType: types.PrimTypeBool}
		}
	}

	return nil
}
