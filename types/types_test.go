package types

import "testing"

func TestPrimitiveEquality(t *testing.T) {
	if !Equals(PrimTypeI64, PrimTypeI64) {
		t.Error("i64 != i64")
	}
	if Equals(PrimTypeI64, PrimTypeBool) {
		t.Error("i64 == bool")
	}
}

func TestPrimitiveRepr(t *testing.T) {
	tests := map[PrimitiveType]string{
		PrimTypeUnit: "unit",
		PrimTypeBool: "bool",
		PrimTypeI64:  "i64",
	}

	for pt, want := range tests {
		if got := pt.Repr(); got != want {
			t.Errorf("%d.Repr() = %s, want %s", pt, got, want)
		}
	}
}

func TestIsIntegral(t *testing.T) {
	if !PrimTypeI64.IsIntegral() {
		t.Error("i64 is not integral")
	}
	if PrimTypeBool.IsIntegral() || PrimTypeUnit.IsIntegral() {
		t.Error("non-integer type reported integral")
	}
}
