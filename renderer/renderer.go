// Package renderer runs the render process: it owns the GL context, drains
// one protocol request per frame and draws the active shader on a
// full-screen quad.
package renderer

import (
	"fmt"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	config "github.com/silvester747/vimshady/config"
	protocol "github.com/silvester747/vimshady/protocol"
	shader "github.com/silvester747/vimshady/shader"
	texture "github.com/silvester747/vimshady/texture"
	timer "github.com/silvester747/vimshady/timer"
	uniforms "github.com/silvester747/vimshady/uniforms"
	window "github.com/silvester747/vimshady/window"
)

// Two triangles covering clip space, interleaved position and texcoord.
var quadVertices = []float32{
	-1.0, -1.0, 0.5, 0.0, 0.0,
	-1.0, 1.0, 0.5, 0.0, 1.0,
	1.0, -1.0, 0.5, 1.0, 0.0,
	-1.0, 1.0, 0.5, 0.0, 1.0,
	1.0, 1.0, 0.5, 1.0, 1.0,
	1.0, -1.0, 0.5, 1.0, 0.0,
}

// Renderer is the single-threaded core of the render process. Everything
// that touches GPU state, including request handling, runs on the thread
// that owns the GL context.
type Renderer struct {
	context  *window.Context
	server   *protocol.Server
	timer    *timer.Timer
	state    *uniforms.State
	programs *shader.Manager

	textureDir string
	textures   *texture.Bindings

	quadVAO uint32
	quadVBO uint32
}

// New acquires the window and GL context. Failure here is fatal to the
// process; there is no recovery path without a context.
func New(server *protocol.Server, cfg config.Config) (*Renderer, error) {
	t := timer.New()
	s := uniforms.NewState()

	ctx, err := window.New(cfg, t, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create render window: %w", err)
	}
	if err := gl.Init(); err != nil {
		ctx.Destroy()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	r := &Renderer{
		context:    ctx,
		server:     server,
		timer:      t,
		state:      s,
		programs:   shader.NewManager(),
		textureDir: ".",
	}
	r.initQuad()
	return r, nil
}

func (r *Renderer) initQuad() {
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	const stride = 5 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// UpdateShader implements protocol.Handler. A compile or link failure leaves
// the active program and its texture bindings untouched.
func (r *Renderer) UpdateShader(req *protocol.UpdateShaderRequest) *protocol.UpdateShaderResponse {
	program, err := r.programs.Update(req.FragmentShaderSource)
	if err != nil {
		log.Printf("shader update rejected: %v", err)
		return &protocol.UpdateShaderResponse{Error: err.Error()}
	}

	r.reloadTextures()
	log.Printf("shader compiled, %d uniforms", len(program.Uniforms()))

	return &protocol.UpdateShaderResponse{Uniforms: uniformDetails(program)}
}

// SetTextureDir implements protocol.Handler.
func (r *Renderer) SetTextureDir(req *protocol.SetTextureDirRequest) *protocol.SetTextureDirResponse {
	info, err := os.Stat(req.TextureDir)
	if err != nil {
		return &protocol.SetTextureDirResponse{Error: err.Error()}
	}
	if !info.IsDir() {
		return &protocol.SetTextureDirResponse{Error: fmt.Sprintf("%s is not a directory", req.TextureDir)}
	}

	r.textureDir = req.TextureDir
	r.reloadTextures()
	return &protocol.SetTextureDirResponse{}
}

// reloadTextures rebuilds the bindings for the active program from scratch,
// discarding whatever was bound before.
func (r *Renderer) reloadTextures() {
	active := r.programs.Active()
	if active == nil {
		return
	}
	if r.textures != nil {
		r.textures.Destroy()
	}
	r.textures = texture.Reload(active, r.textureDir)
	if samplers := len(active.Samplers()); samplers > 0 {
		log.Printf("textures reloaded, %d of %d samplers bound", r.textures.Len(), samplers)
	}
}

func uniformDetails(p *shader.Program) []protocol.UniformDetails {
	infos := p.Uniforms()
	details := make([]protocol.UniformDetails, 0, len(infos))
	for _, info := range infos {
		details = append(details, protocol.UniformDetails{
			Name:     info.Name,
			Length:   info.Length,
			Location: info.Location,
			Size:     info.Size,
		})
	}
	return details
}

// Run is the render loop. Each frame handles at most one queued request,
// advances the timer, injects uniforms and draws the active program.
func (r *Renderer) Run() {
	for !r.context.ShouldClose() {
		if req, ok := r.server.Poll(); ok {
			resp := protocol.Dispatch(r, req)
			if err := r.server.Respond(resp); err != nil {
				log.Printf("failed to send response: %v", err)
			}
		}

		tick := r.timer.Tick()
		r.state.SetTick(tick)

		width, height := r.context.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if active := r.programs.Active(); active != nil {
			active.Use()
			r.state.Apply(active)
			if r.textures != nil {
				r.textures.Bind(active)
			}
			gl.BindVertexArray(r.quadVAO)
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
			gl.BindVertexArray(0)
		}

		r.context.EndFrame()
	}
}

// Shutdown persists the window geometry and releases every GPU resource.
func (r *Renderer) Shutdown() {
	if err := r.context.Geometry().Save(); err != nil {
		log.Printf("failed to save window geometry: %v", err)
	}
	if r.textures != nil {
		r.textures.Destroy()
	}
	r.programs.Shutdown()
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	r.context.Destroy()
}
