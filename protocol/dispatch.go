package protocol

import "fmt"

// Handler implements the operations behind the request kinds.
type Handler interface {
	UpdateShader(*UpdateShaderRequest) *UpdateShaderResponse
	SetTextureDir(*SetTextureDirRequest) *SetTextureDirResponse
}

// Dispatch routes one request to the handler, exhaustively over the closed
// request set. A panic while handling is recovered and converted into a
// response error string, so request handling can never crash the render
// process. An unknown request type is a programming error and is reported
// the same way.
func Dispatch(h Handler, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = errorResponse(req, fmt.Sprintf("unhandled error: %v", r))
		}
	}()

	switch q := req.(type) {
	case *UpdateShaderRequest:
		return h.UpdateShader(q)
	case *SetTextureDirRequest:
		return h.SetTextureDir(q)
	default:
		panic(fmt.Sprintf("unknown request type %T", req))
	}
}

// errorResponse builds the response variant matching the request so pairing
// by send order is preserved even on failure.
func errorResponse(req Request, msg string) Response {
	switch req.(type) {
	case *SetTextureDirRequest:
		return &SetTextureDirResponse{Error: msg}
	default:
		return &UpdateShaderResponse{Error: msg}
	}
}
