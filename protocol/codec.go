package protocol

import (
	"encoding/json"
	"fmt"
	"io"
)

// envelope is the wire framing: one JSON object per line tagging the message
// kind around the message payload.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Conn frames protocol messages over a duplex byte stream.
type Conn struct {
	enc    *json.Encoder
	dec    *json.Decoder
	closer io.Closer
}

func NewConn(rw io.ReadWriteCloser) *Conn {
	return &Conn{
		enc:    json.NewEncoder(rw),
		dec:    json.NewDecoder(rw),
		closer: rw,
	}
}

func (c *Conn) Close() error {
	return c.closer.Close()
}

func (c *Conn) WriteRequest(req Request) error {
	return c.write(req.requestKind(), req)
}

func (c *Conn) WriteResponse(resp Response) error {
	return c.write(resp.responseKind(), resp)
}

func (c *Conn) write(kind string, msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.enc.Encode(envelope{Type: kind, Payload: payload})
}

// ReadRequest decodes the next request from the stream. A kind outside the
// closed request set is a protocol violation and returns an error.
func (c *Conn) ReadRequest() (Request, error) {
	var env envelope
	if err := c.dec.Decode(&env); err != nil {
		return nil, err
	}
	var req Request
	switch env.Type {
	case KindUpdateShader:
		req = &UpdateShaderRequest{}
	case KindSetTextureDir:
		req = &SetTextureDirRequest{}
	default:
		return nil, fmt.Errorf("unknown request kind %q", env.Type)
	}
	if err := json.Unmarshal(env.Payload, req); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
	}
	return req, nil
}

// ReadResponse decodes the next response from the stream.
func (c *Conn) ReadResponse() (Response, error) {
	var env envelope
	if err := c.dec.Decode(&env); err != nil {
		return nil, err
	}
	var resp Response
	switch env.Type {
	case KindUpdateShaderResponse:
		resp = &UpdateShaderResponse{}
	case KindSetTextureDirResponse:
		resp = &SetTextureDirResponse{}
	default:
		return nil, fmt.Errorf("unknown response kind %q", env.Type)
	}
	if err := json.Unmarshal(env.Payload, resp); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
	}
	return resp, nil
}
