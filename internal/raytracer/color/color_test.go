package color

import "testing"

func TestArithmetic(t *testing.T) {
	a := New(0.9, 0.6, 0.75)
	b := New(0.7, 0.1, 0.25)

	if !a.Add(b).Equal(New(1.6, 0.7, 1.0)) {
		t.Error("colors are added by component")
	}
	if !a.Sub(b).Equal(New(0.2, 0.5, 0.5)) {
		t.Error("colors are subtracted by component")
	}
	if !New(0.2, 0.3, 0.4).Scale(2).Equal(New(0.4, 0.6, 0.8)) {
		t.Error("colors scale by a scalar")
	}
	c1 := New(1, 0.2, 0.4)
	c2 := New(0.9, 1, 0.1)
	if !c1.Mul(c2).Equal(New(0.9, 0.2, 0.04)) {
		t.Error("colors are multiplied by component (Hadamard product)")
	}
}

func TestBlackAndWhite(t *testing.T) {
	if !Black().Equal(New(0, 0, 0)) {
		t.Error("Black is (0,0,0)")
	}
	if !White().Equal(New(1, 1, 1)) {
		t.Error("White is (1,1,1)")
	}
}
