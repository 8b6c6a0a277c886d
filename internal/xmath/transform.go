package xmath

import "gonum.org/v1/gonum/mat"

// Transform is a rigid (or more generally, affine) transform in 3D space,
// represented as a 4x4 homogeneous matrix.
//
// Grounded on fj-math/src/transform.rs (original_source), which wraps
// nalgebra's Isometry/Matrix4; here the equivalent is gonum's mat.Dense,
// the matrix library ajsb85-sdfx already depends on for its
// own render and step packages.
type Transform struct {
	m *mat.Dense
}

// Identity returns the identity transform.
func Identity() Transform {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		d.Set(i, i, 1)
	}
	return Transform{m: d}
}

// Translation returns a transform that translates by v.
func Translation(v Vector3) Transform {
	t := Identity()
	t.m.Set(0, 3, float64(v.X))
	t.m.Set(1, 3, float64(v.Y))
	t.m.Set(2, 3, float64(v.Z))
	return t
}

// RotationX returns a transform that rotates by angle radians about the X axis.
func RotationX(angle Scalar) Transform {
	c, s := angle.Cos(), angle.Sin()
	d := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, float64(c), float64(-s), 0,
		0, float64(s), float64(c), 0,
		0, 0, 0, 1,
	})
	return Transform{m: d}
}

// RotationY returns a transform that rotates by angle radians about the Y axis.
func RotationY(angle Scalar) Transform {
	c, s := angle.Cos(), angle.Sin()
	d := mat.NewDense(4, 4, []float64{
		float64(c), 0, float64(s), 0,
		0, 1, 0, 0,
		float64(-s), 0, float64(c), 0,
		0, 0, 0, 1,
	})
	return Transform{m: d}
}

// RotationZ returns a transform that rotates by angle radians about the Z axis.
func RotationZ(angle Scalar) Transform {
	c, s := angle.Cos(), angle.Sin()
	d := mat.NewDense(4, 4, []float64{
		float64(c), float64(-s), 0, 0,
		float64(s), float64(c), 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	return Transform{m: d}
}

// RotationAboutAxis returns a transform that rotates by angle radians about
// an arbitrary axis through origin, using Rodrigues' rotation formula.
func RotationAboutAxis(origin Point3, axis Vector3, angle Scalar) Transform {
	axis = axis.Normalize()
	c, s := float64(angle.Cos()), float64(angle.Sin())
	x, y, z := float64(axis.X), float64(axis.Y), float64(axis.Z)
	k := 1 - c
	d := mat.NewDense(4, 4, []float64{
		c + x*x*k, x*y*k - z*s, x*z*k + y*s, 0,
		y*x*k + z*s, c + y*y*k, y*z*k - x*s, 0,
		z*x*k - y*s, z*y*k + x*s, c + z*z*k, 0,
		0, 0, 0, 1,
	})
	rot := Transform{m: d}
	toOrigin := Translation(Point3{}.Sub(origin))
	back := Translation(origin.Sub(Point3{}))
	return toOrigin.Compose(rot).Compose(back)
}

// Compose returns the transform that applies t first, then other: other.m * t.m.
func (t Transform) Compose(other Transform) Transform {
	var out mat.Dense
	out.Mul(other.m, t.m)
	return Transform{m: &out}
}

// ApplyPoint applies the transform to a point (translation included).
func (t Transform) ApplyPoint(p Point3) Point3 {
	v := mat.NewVecDense(4, []float64{float64(p.X), float64(p.Y), float64(p.Z), 1})
	var out mat.VecDense
	out.MulVec(t.m, v)
	return Point3{X: Scalar(out.AtVec(0)), Y: Scalar(out.AtVec(1)), Z: Scalar(out.AtVec(2))}
}

// ApplyVector applies the transform to a direction vector (translation
// excluded: only the upper-left 3x3 rotation/scale block is used).
func (t Transform) ApplyVector(v Vector3) Vector3 {
	vec := mat.NewVecDense(4, []float64{float64(v.X), float64(v.Y), float64(v.Z), 0})
	var out mat.VecDense
	out.MulVec(t.m, vec)
	return Vector3{X: Scalar(out.AtVec(0)), Y: Scalar(out.AtVec(1)), Z: Scalar(out.AtVec(2))}
}

// IsIdentity reports whether t is (within floating point noise) the identity.
func (t Transform) IsIdentity() bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if (t.m.At(i, j) - want) > 1e-12 || (want - t.m.At(i, j)) > 1e-12 {
				return false
			}
		}
	}
	return true
}
