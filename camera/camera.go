// Package camera maps pointer positions between screen space and the 2D world
// through the camera's projection and world transform
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/vmath"
)

// NearPlaneNDC is the NDC depth at which screen points are unprojected
const NearPlaneNDC = -1

// Camera holds the transforms of a 2D camera
// World places the camera in world space, Projection maps view space to clip space
type Camera struct {
	World      mgl32.Mat4
	Projection mgl32.Mat4
}

// NewOrthographic creates a camera at the world origin whose projection spans
// width x height world units centered on the camera
func NewOrthographic(width, height float32) Camera {
	hw, hh := width/2, height/2
	return Camera{
		World:      mgl32.Ident4(),
		Projection: mgl32.Ortho(-hw, hw, -hh, hh, -1000, 1000),
	}
}

// InverseProjection returns the inverse of the projection matrix
// A singular projection inverts to the zero matrix, which ScreenToWorld rejects
func (c Camera) InverseProjection() mgl32.Mat4 {
	return c.Projection.Inv()
}

// ScreenToWorld resolves a cursor against the camera for the given viewport
func (c Camera) ScreenToWorld(cursor core.Cursor, viewport mgl32.Vec2) (mgl32.Vec2, bool) {
	return ScreenToWorld(cursor, viewport, c.InverseProjection(), c.World)
}

// WorldToScreen projects a world point to screen pixels, origin at bottom-left
func (c Camera) WorldToScreen(world mgl32.Vec2, viewport mgl32.Vec2) (mgl32.Vec2, bool) {
	if !validViewport(viewport) {
		return mgl32.Vec2{}, false
	}
	clipFromWorld := c.Projection.Mul4(c.World.Inv())
	ndc := mgl32.TransformCoordinate(world.Vec3(0), clipFromWorld)
	screen := mgl32.Vec2{
		(ndc.X() + 1) / 2 * viewport.X(),
		(ndc.Y() + 1) / 2 * viewport.Y(),
	}
	if !finite2(screen) {
		return mgl32.Vec2{}, false
	}
	return screen, true
}

// ScreenToWorld converts a screen position into world space
//
// The position is normalized from [0, viewport] to NDC [-1, 1], then taken
// through worldTransform * inverseProjection at the near plane; depth is dropped.
// Returns false when the cursor is absent, the viewport is degenerate, or the
// matrices produce a non-finite point.
func ScreenToWorld(cursor core.Cursor, viewport mgl32.Vec2, inverseProjection, worldTransform mgl32.Mat4) (mgl32.Vec2, bool) {
	if !cursor.Valid {
		return mgl32.Vec2{}, false
	}
	if !validViewport(viewport) {
		return mgl32.Vec2{}, false
	}

	ndc := mgl32.Vec3{
		cursor.X/viewport.X()*2 - 1,
		cursor.Y/viewport.Y()*2 - 1,
		NearPlaneNDC,
	}

	worldFromNDC := worldTransform.Mul4(inverseProjection)
	world := projectPoint(worldFromNDC, ndc)
	if !finite2(world) {
		return mgl32.Vec2{}, false
	}
	return world, true
}

// projectPoint transforms p as a point with perspective divide
// A zero w yields non-finite output instead of mgl32's silent passthrough
func projectPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec2 {
	h := m.Mul4x1(p.Vec4(1))
	w := h.W()
	return mgl32.Vec2{h.X() / w, h.Y() / w}
}

func validViewport(v mgl32.Vec2) bool {
	return v.X() > 0 && v.Y() > 0 && vmath.IsFinite(v.X()) && vmath.IsFinite(v.Y())
}

func finite2(v mgl32.Vec2) bool {
	return vmath.IsFinite(v.X()) && vmath.IsFinite(v.Y())
}
