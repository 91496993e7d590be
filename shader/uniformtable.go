package shader

import "github.com/go-gl/gl/v4.1-core/gl"

// typeByteLength returns the byte size of a single element of a uniform of
// the given GL type. Together with the array size this yields the "length"
// reported in the uniform table.
func typeByteLength(glType uint32) int {
	switch glType {
	case gl.FLOAT, gl.INT, gl.UNSIGNED_INT, gl.BOOL:
		return 4
	case gl.FLOAT_VEC2, gl.INT_VEC2, gl.UNSIGNED_INT_VEC2, gl.BOOL_VEC2:
		return 8
	case gl.FLOAT_VEC3, gl.INT_VEC3, gl.UNSIGNED_INT_VEC3, gl.BOOL_VEC3:
		return 12
	case gl.FLOAT_VEC4, gl.INT_VEC4, gl.UNSIGNED_INT_VEC4, gl.BOOL_VEC4:
		return 16
	case gl.DOUBLE:
		return 8
	case gl.FLOAT_MAT2:
		return 16
	case gl.FLOAT_MAT2x3, gl.FLOAT_MAT3x2:
		return 24
	case gl.FLOAT_MAT2x4, gl.FLOAT_MAT4x2:
		return 32
	case gl.FLOAT_MAT3:
		return 36
	case gl.FLOAT_MAT3x4, gl.FLOAT_MAT4x3:
		return 48
	case gl.FLOAT_MAT4:
		return 64
	default:
		// Samplers and anything exotic occupy one int slot.
		return 4
	}
}
