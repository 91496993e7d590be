// Package protocol defines the request/response channel between the editor
// integration process and the render process: a closed, tagged set of JSON
// messages over a unix domain socket, paired by send order with a single
// request in flight.
package protocol

import "errors"

// ErrChannel reports that the render process is unreachable or has
// terminated. It is fatal to the session; no reconnection is attempted.
var ErrChannel = errors.New("render channel unavailable")

// Message kind tags.
const (
	KindUpdateShader          = "update_shader"
	KindUpdateShaderResponse  = "update_shader_response"
	KindSetTextureDir         = "set_texture_dir"
	KindSetTextureDirResponse = "set_texture_dir_response"
)

// Request is the closed set of messages a client can send.
type Request interface {
	requestKind() string
}

// Response is the closed set of messages the server answers with. A response
// with an empty Error means the operation's postconditions hold.
type Response interface {
	responseKind() string
}

// UniformDetails describes one introspected uniform for display by the
// editor integration.
type UniformDetails struct {
	Name     string `json:"name"`
	Length   int    `json:"length"`
	Location int32  `json:"location"`
	Size     int    `json:"size"`
}

type UpdateShaderRequest struct {
	FragmentShaderSource string `json:"fragment_shader_source"`
}

func (*UpdateShaderRequest) requestKind() string { return KindUpdateShader }

type UpdateShaderResponse struct {
	Error    string           `json:"error,omitempty"`
	Uniforms []UniformDetails `json:"uniforms,omitempty"`
}

func (*UpdateShaderResponse) responseKind() string { return KindUpdateShaderResponse }

type SetTextureDirRequest struct {
	TextureDir string `json:"texture_dir"`
}

func (*SetTextureDirRequest) requestKind() string { return KindSetTextureDir }

type SetTextureDirResponse struct {
	Error string `json:"error,omitempty"`
}

func (*SetTextureDirResponse) responseKind() string { return KindSetTextureDirResponse }
