package uniforms

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	timer "github.com/silvester747/vimshady/timer"
)

// recorder collects every value pushed through the Setter interface. Unlike a
// real program it declares every name, which lets tests see the full set.
type recorder struct {
	floats map[string]float32
	vec2s  map[string]mgl32.Vec2
	vec4s  map[string]mgl32.Vec4
}

func newRecorder() *recorder {
	return &recorder{
		floats: make(map[string]float32),
		vec2s:  make(map[string]mgl32.Vec2),
		vec4s:  make(map[string]mgl32.Vec4),
	}
}

func (r *recorder) SetFloat(name string, v float32)   { r.floats[name] = v }
func (r *recorder) SetVec2(name string, v mgl32.Vec2) { r.vec2s[name] = v }
func (r *recorder) SetVec4(name string, v mgl32.Vec4) { r.vec4s[name] = v }

func TestApplyPushesBothFamilies(t *testing.T) {
	s := NewState()
	s.SetTick(timer.Tick{TotalTime: 4.5, FrameTime: 0.016})
	s.Resize(800, 600)
	s.MousePress(10, 20)
	s.MouseDrag(30, 40)

	r := newRecorder()
	s.Apply(r)

	for name, want := range map[string]float32{
		"iTime":       4.5,
		"iTimeDelta":  0.016,
		"fGlobalTime": 4.5,
		"fFrameTime":  0.016,
	} {
		if got := r.floats[name]; got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	if got, want := r.vec2s["v2Resolution"], (mgl32.Vec2{800, 600}); got != want {
		t.Errorf("v2Resolution = %v, want %v", got, want)
	}
	if got, want := r.vec4s["iMouse"], (mgl32.Vec4{30, 40, 10, 20}); got != want {
		t.Errorf("iMouse = %v, want %v", got, want)
	}
}

func TestMousePressMovesClickAndCurrent(t *testing.T) {
	s := NewState()
	s.MouseDrag(5, 5)
	s.MousePress(100, 200)

	r := newRecorder()
	s.Apply(r)
	if got, want := r.vec4s["iMouse"], (mgl32.Vec4{100, 200, 100, 200}); got != want {
		t.Errorf("iMouse after press = %v, want %v", got, want)
	}
}

func TestScrollAccumulatesWithoutReset(t *testing.T) {
	s := NewState()
	for i := 0; i < 10; i++ {
		s.MouseScroll(1, -2)
	}
	s.MousePress(0, 0)
	s.Resize(1, 1)

	r := newRecorder()
	s.Apply(r)
	if got, want := r.vec2s["iMouseScroll"], (mgl32.Vec2{10, -20}); got != want {
		t.Errorf("iMouseScroll = %v, want %v", got, want)
	}
}
