package viz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera projects world positions in meters onto canvas dots. Extent is
// the world distance that maps to a third of the shorter canvas side.
type Camera struct {
	Center     r3.Vec
	Extent     float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera(extent float64) *Camera {
	if extent <= 0 {
		extent = 1
	}
	return &Camera{Extent: extent, Zoom: 1}
}

// FitCamera returns a camera centered on the mean of points whose extent
// covers the farthest point.
func FitCamera(points []r3.Vec) *Camera {
	if len(points) == 0 {
		return NewCamera(1)
	}
	var c r3.Vec
	for _, p := range points {
		c = r3.Add(c, p)
	}
	c = r3.Scale(1/float64(len(points)), c)

	extent := 0.0
	for _, p := range points {
		extent = math.Max(extent, r3.Norm(r3.Sub(p, c)))
	}
	cam := NewCamera(extent * 1.2)
	cam.Center = c
	return cam
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(100, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.01, c.Zoom/1.2) }

// View rotates p about the camera center, first around X then around Y.
func (c *Camera) View(p r3.Vec) r3.Vec {
	p = r3.Sub(p, c.Center)
	if c.RotX != 0 {
		p = r3.NewRotation(c.RotX, r3.Vec{X: 1}).Rotate(p)
	}
	if c.RotY != 0 {
		p = r3.NewRotation(c.RotY, r3.Vec{Y: 1}).Rotate(p)
	}
	return p
}

// Project maps p to dot coordinates on a w x h dot canvas. The bool is
// false when the point falls outside.
func (c *Camera) Project(p r3.Vec, w, h int) (int, int, bool) {
	v := c.View(p)
	side := float64(min(w, h))
	scale := c.Zoom * side / 3 / c.Extent
	x := int(math.Round(v.X*scale)) + w/2
	y := int(math.Round(-v.Y*scale)) + h/2
	return x, y, x >= 0 && x < w && y >= 0 && y < h
}
