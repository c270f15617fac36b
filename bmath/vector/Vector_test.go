package vector_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

func TestVectorCreation(t *testing.T) {
	var v, c vector.Vector

	v = vector.Create(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Error("Creation failed")
	}

	c = v.Copy()

	if c.X != 1 || c.Y != 2 {
		t.Error("Copy failed")
	}
}

func TestUnary(t *testing.T) {
	var v1, v2 vector.Vector

	v1 = vector.Create(3, 4)
	if math.Abs(v1.Magnitude()-5) > 1e-12 {
		t.Error("Magnitude failed")
	}

	v2 = v1.Negate()
	if v2.X != -3 || v2.Y != -4 {
		t.Error("Negate failed")
	}

	v2 = v1.MirrorX()
	if v2.X != -3 || v2.Y != 4 {
		t.Error("MirrorX failed")
	}

	v2 = v1.Normalize()
	if math.Abs(v2.X-0.6) > 1e-12 || math.Abs(v2.Y-0.8) > 1e-12 {
		t.Error("Normalize failed")
	}

	v1 = vector.Create(0, 0)
	v2 = v1.Normalize()
	if v2.X != 0 || v2.Y != 0 {
		t.Error("Normalize failed")
	}
}

func TestBinary(t *testing.T) {
	var v1, v2 vector.Vector
	v1 = vector.Create(1, 2)
	v2 = v1.Add(v1.Copy())
	if v2.X != 2 || v2.Y != 4 {
		t.Error("Add failed")
	}

	v2 = v1.Subtract(v2)
	if v2.X != -1 || v2.Y != -2 {
		t.Error("Subtract failed")
	}

	if v1.MultiplyByVector(v1.Copy()) != (1 + 4) {
		t.Error("MultiplyByVector failed")
	}

	v2 = v1.MultiplyByConst(3)
	if v2.X != 3 || v2.Y != 6 {
		t.Error("MultiplyByConst failed")
	}
}

func TestPurity(t *testing.T) {
	v := vector.Create(1, 2)
	_ = v.Add(vector.Create(5, 5))
	_ = v.MultiplyByConst(10)
	_ = v.MirrorX()
	if v.X != 1 || v.Y != 2 {
		t.Error("operations must not change the receiver")
	}
}

