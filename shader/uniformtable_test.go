package shader

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestTypeByteLength(t *testing.T) {
	cases := []struct {
		name   string
		glType uint32
		want   int
	}{
		{"float", gl.FLOAT, 4},
		{"vec2", gl.FLOAT_VEC2, 8},
		{"vec3", gl.FLOAT_VEC3, 12},
		{"vec4", gl.FLOAT_VEC4, 16},
		{"int", gl.INT, 4},
		{"ivec4", gl.INT_VEC4, 16},
		{"mat3", gl.FLOAT_MAT3, 36},
		{"mat4", gl.FLOAT_MAT4, 64},
		{"sampler2D", gl.SAMPLER_2D, 4},
		{"samplerCube", gl.SAMPLER_CUBE, 4},
	}
	for _, c := range cases {
		if got := typeByteLength(c.glType); got != c.want {
			t.Errorf("typeByteLength(%s) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestCompileErrorMessages(t *testing.T) {
	compile := &CompileError{Stage: "fragment", Log: "0:3: syntax error"}
	if got, want := compile.Error(), "failed to compile fragment shader: 0:3: syntax error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	link := &CompileError{Stage: "link", Log: "no main"}
	if got, want := link.Error(), "failed to link program: no main"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
