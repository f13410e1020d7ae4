// Package math holds the value types used as component fields. Values are
// passed by copy; every operation returns a new value.
package math

import stdmath "math"

// Epsilon is the tolerance used by the Equals helpers.
const Epsilon = 0.001

type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func NewVector2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

func (v Vector2) Add(o Vector2) Vector2      { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Subtract(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Scale(s float64) Vector2    { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Length() float64            { return stdmath.Hypot(v.X, v.Y) }
func (v Vector2) Equals(o Vector2) bool      { return near(v.X, o.X) && near(v.Y, o.Y) }
func (v Vector2) Dot(o Vector2) float64      { return v.X*o.X + v.Y*o.Y }

type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func NewVector3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func Zero() Vector3    { return Vector3{} }
func One() Vector3     { return Vector3{1, 1, 1} }
func Up() Vector3      { return Vector3{0, 1, 0} }
func Forward() Vector3 { return Vector3{0, 0, 1} }
func Right() Vector3   { return Vector3{1, 0, 0} }

func (v Vector3) Add(o Vector3) Vector3      { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Subtract(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Multiply(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) Negate() Vector3            { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Dot(o Vector3) float64      { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) LengthSquared() float64 { return v.Dot(v) }
func (v Vector3) Length() float64        { return stdmath.Sqrt(v.LengthSquared()) }

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

func (v Vector3) Distance(o Vector3) float64 { return v.Subtract(o).Length() }

// Lerp interpolates linearly between v and o by t in [0, 1].
func (v Vector3) Lerp(o Vector3, t float64) Vector3 {
	return v.Add(o.Subtract(v).Scale(t))
}

func (v Vector3) Equals(o Vector3) bool {
	return near(v.X, o.X) && near(v.Y, o.Y) && near(v.Z, o.Z)
}

func near(a, b float64) bool { return stdmath.Abs(a-b) <= Epsilon }
