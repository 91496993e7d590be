package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileError reports a compile or link failure with the driver's info log.
// It never affects the active program; callers report it upward and keep
// rendering whatever was active before.
type CompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// UniformInfo describes one entry of a program's uniform table, resolved once
// at link time so per-frame injection never queries the driver.
type UniformInfo struct {
	Name     string
	Length   int // byte length of the uniform's data
	Location int32
	Size     int // array element count
}

// Program is a linked GL program together with its introspected uniform
// table. A Program either exists fully linked with a populated table, or not
// at all; there is no partial state.
type Program struct {
	id       uint32
	uniforms map[string]UniformInfo
	order    []string // uniform names in introspection order
	samplers []string // tex-prefixed uniform names, introspection order
}

// Compile builds a program from the fixed vertex stage and the supplied
// fragment source, links it and introspects every declared uniform.
func Compile(fragmentSource string) (*Program, error) {
	vertexShader, err := compileStage(VertexSource, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileStage(fragmentSource, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return nil, &CompileError{Stage: "link", Log: strings.TrimRight(logText, "\x00")}
	}

	p := &Program{id: program}
	p.introspect()
	return p, nil
}

func compileStage(source, stage string) (uint32, error) {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == "fragment" {
		shaderType = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(logText, "\x00")}
	}
	return shader, nil
}

func (p *Program) introspect() {
	var count int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORMS, &count)

	var maxLen int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}
	buf := make([]byte, maxLen+1)

	p.uniforms = make(map[string]UniformInfo, count)
	for i := int32(0); i < count; i++ {
		var written, size int32
		var glType uint32
		gl.GetActiveUniform(p.id, uint32(i), maxLen, &written, &size, &glType, &buf[0])

		// Array uniforms are reported as "name[0]".
		name := strings.TrimSuffix(string(buf[:written]), "[0]")
		location := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))

		p.uniforms[name] = UniformInfo{
			Name:     name,
			Length:   typeByteLength(glType) * int(size),
			Location: location,
			Size:     int(size),
		}
		p.order = append(p.order, name)
		if strings.HasPrefix(name, SamplerPrefix) {
			p.samplers = append(p.samplers, name)
		}
	}
}

// Use binds the program for rendering.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the GL program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}

// Uniforms returns the uniform table in introspection order.
func (p *Program) Uniforms() []UniformInfo {
	out := make([]UniformInfo, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.uniforms[name])
	}
	return out
}

// Samplers returns the tex-prefixed uniform names in introspection order.
// A sampler's index in this slice is its texture unit at draw time.
func (p *Program) Samplers() []string {
	return p.samplers
}

// SetFloat sets a float uniform, silently skipping undeclared names. The
// program must be in use. The same applies to the other setters.
func (p *Program) SetFloat(name string, v float32) {
	if info, ok := p.uniforms[name]; ok {
		gl.Uniform1f(info.Location, v)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if info, ok := p.uniforms[name]; ok {
		gl.Uniform2f(info.Location, v.X(), v.Y())
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if info, ok := p.uniforms[name]; ok {
		gl.Uniform4f(info.Location, v.X(), v.Y(), v.Z(), v.W())
	}
}

func (p *Program) SetInt(name string, v int32) {
	if info, ok := p.uniforms[name]; ok {
		gl.Uniform1i(info.Location, v)
	}
}
