package uniforms

import (
	"github.com/go-gl/mathgl/mgl32"

	timer "github.com/silvester747/vimshady/timer"
)

// Setter is the surface of a compiled program that injection writes through.
// Implementations must silently ignore names the program does not declare.
type Setter interface {
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec4(name string, v mgl32.Vec4)
}

// State aggregates the per-frame uniform sources: the latest timer tick, the
// mouse and the framebuffer viewport. It is mutated by window input callbacks
// and read once per frame by Apply, all on the render thread.
type State struct {
	tick timer.Tick

	mouseCurrent mgl32.Vec2
	mouseClick   mgl32.Vec2
	mouseScroll  mgl32.Vec2

	viewport mgl32.Vec2
}

func NewState() *State {
	return &State{}
}

// SetTick stores the timer values for the current frame.
func (s *State) SetTick(t timer.Tick) {
	s.tick = t
}

// MousePress records a button press, moving both the current position and the
// click position to the same point.
func (s *State) MousePress(x, y float32) {
	s.mouseCurrent = mgl32.Vec2{x, y}
	s.mouseClick = mgl32.Vec2{x, y}
}

// MouseDrag updates the current position only.
func (s *State) MouseDrag(x, y float32) {
	s.mouseCurrent = mgl32.Vec2{x, y}
}

// MouseScroll accumulates scroll deltas. The accumulator is never reset for
// the lifetime of the process.
func (s *State) MouseScroll(dx, dy float32) {
	s.mouseScroll = s.mouseScroll.Add(mgl32.Vec2{dx, dy})
}

// Resize records the framebuffer size in pixels.
func (s *State) Resize(width, height int) {
	s.viewport = mgl32.Vec2{float32(width), float32(height)}
}

// Apply pushes every well-known uniform into the program. Sampler uniforms
// (the tex* names) are never part of this set; they are bound by the texture
// loader instead.
func (s *State) Apply(p Setter) {
	s.applyShadertoy(p)
	s.applyBonzomatic(p)
	s.applyScroll(p)
}

// Shadertoy-convention names.
func (s *State) applyShadertoy(p Setter) {
	p.SetFloat("iTime", float32(s.tick.TotalTime))
	p.SetFloat("iTimeDelta", float32(s.tick.FrameTime))
	p.SetVec4("iMouse", mgl32.Vec4{
		s.mouseCurrent.X(), s.mouseCurrent.Y(),
		s.mouseClick.X(), s.mouseClick.Y(),
	})
}

// Bonzomatic-compatible names.
func (s *State) applyBonzomatic(p Setter) {
	p.SetFloat("fGlobalTime", float32(s.tick.TotalTime))
	p.SetFloat("fFrameTime", float32(s.tick.FrameTime))
	p.SetVec2("v2Resolution", s.viewport)
}

func (s *State) applyScroll(p Setter) {
	p.SetVec2("iMouseScroll", s.mouseScroll)
}
