package shader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Setters for names missing from the uniform table must do nothing at all.
// The guard is load-bearing: without it these calls would reach the GL
// driver, which is not even loaded here.
func TestSettersSkipUndeclaredNames(t *testing.T) {
	p := &Program{uniforms: map[string]UniformInfo{}}

	p.SetFloat("iTime", 1.0)
	p.SetVec2("v2Resolution", mgl32.Vec2{640, 480})
	p.SetVec4("iMouse", mgl32.Vec4{1, 2, 3, 4})
	p.SetInt("texFoo", 0)
}

func TestSamplersAreTexPrefixedInOrder(t *testing.T) {
	p := &Program{
		uniforms: map[string]UniformInfo{},
		samplers: []string{"texFoo", "texBar"},
	}
	got := p.Samplers()
	if len(got) != 2 || got[0] != "texFoo" || got[1] != "texBar" {
		t.Errorf("Samplers() = %v, want [texFoo texBar]", got)
	}
}
