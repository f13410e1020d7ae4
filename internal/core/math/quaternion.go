package math

import stdmath "math"

const (
	DegToRad = stdmath.Pi / 180
	RadToDeg = 180 / stdmath.Pi
)

type Quaternion struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

func Identity() Quaternion { return Quaternion{W: 1} }

// Euler builds a rotation from angles in degrees, applied Z, then X, then Y.
func Euler(x, y, z float64) Quaternion {
	return RotationYawPitchRoll(y*DegToRad, x*DegToRad, z*DegToRad)
}

func RotationYawPitchRoll(yaw, pitch, roll float64) Quaternion {
	hr, hp, hy := roll*0.5, pitch*0.5, yaw*0.5
	sr, cr := stdmath.Sin(hr), stdmath.Cos(hr)
	sp, cp := stdmath.Sin(hp), stdmath.Cos(hp)
	sy, cy := stdmath.Sin(hy), stdmath.Cos(hy)

	return Quaternion{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// AngleAxis builds a rotation of degrees around axis.
func AngleAxis(degrees float64, axis Vector3) Quaternion {
	axis = axis.Normalize()
	half := degrees * DegToRad * 0.5
	s := stdmath.Sin(half)
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: stdmath.Cos(half)}
}

func (q Quaternion) Multiply(o Quaternion) Quaternion {
	return Quaternion{
		X: q.X*o.W + q.Y*o.Z - q.Z*o.Y + q.W*o.X,
		Y: -q.X*o.Z + q.Y*o.W + q.Z*o.X + q.W*o.Y,
		Z: q.X*o.Y - q.Y*o.X + q.Z*o.W + q.W*o.Z,
		W: -q.X*o.X - q.Y*o.Y - q.Z*o.Z + q.W*o.W,
	}
}

func (q Quaternion) Conjugate() Quaternion { return Quaternion{-q.X, -q.Y, -q.Z, q.W} }

func (q Quaternion) Length() float64 {
	return stdmath.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return Identity()
	}
	inv := 1 / l
	return Quaternion{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Rotate applies q to v.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Multiply(p).Multiply(q.Conjugate())
	return Vector3{r.X, r.Y, r.Z}
}

// EulerAngles returns the rotation as degrees around X, Y and Z.
func (q Quaternion) EulerAngles() Vector3 {
	sinp := 2 * (q.W*q.X - q.Y*q.Z)
	var pitch float64
	if stdmath.Abs(sinp) >= 1 {
		pitch = stdmath.Copysign(stdmath.Pi/2, sinp)
	} else {
		pitch = stdmath.Asin(sinp)
	}
	yaw := stdmath.Atan2(2*(q.W*q.Y+q.X*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	roll := stdmath.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.X*q.X+q.Z*q.Z))
	return Vector3{pitch * RadToDeg, yaw * RadToDeg, roll * RadToDeg}
}

// Equals compares rotations, treating q and -q as the same orientation.
func (q Quaternion) Equals(o Quaternion) bool {
	dot := q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
	return stdmath.Abs(stdmath.Abs(dot)-1) <= Epsilon
}
