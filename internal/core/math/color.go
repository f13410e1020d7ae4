package math

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

var ErrInvalidHex = eris.New("invalid hex color")

type Color3 struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

type Color4 struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

func White() Color3 { return Color3{1, 1, 1} }
func Black() Color3 { return Color3{} }
func Red() Color3   { return Color3{R: 1} }
func Green() Color3 { return Color3{G: 1} }
func Blue() Color3  { return Color3{B: 1} }

// ColorFromHex parses "#RRGGBB" or "RRGGBB".
func ColorFromHex(hex string) (Color3, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return Color3{}, eris.Wrapf(ErrInvalidHex, "%q", hex)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color3{}, eris.Wrapf(ErrInvalidHex, "%q", hex)
	}
	return Color3{
		R: float64((n>>16)&0xff) / 255,
		G: float64((n>>8)&0xff) / 255,
		B: float64(n&0xff) / 255,
	}, nil
}

func (c Color3) ToColor4(alpha float64) Color4 {
	return Color4{R: c.R, G: c.G, B: c.B, A: alpha}
}

func (c Color3) Equals(o Color3) bool {
	return near(c.R, o.R) && near(c.G, o.G) && near(c.B, o.B)
}

func (c Color4) ToColor3() Color3 { return Color3{R: c.R, G: c.G, B: c.B} }

func (c Color4) Equals(o Color4) bool {
	return c.ToColor3().Equals(o.ToColor3()) && near(c.A, o.A)
}
