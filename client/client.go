// Package client is the editor-integration side of the render channel: it
// launches the render process, sends one request at a time and blocks until
// the correlated response arrives.
package client

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	protocol "github.com/silvester747/vimshady/protocol"
)

// dialRetryWindow bounds how long Dial waits for a freshly launched render
// process to bind its socket.
const dialRetryWindow = 5 * time.Second

// RequestError carries a non-empty response error field: the operation
// failed on the render side (for example a shader compile error) but the
// channel itself is healthy.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client is a synchronous stub for the render process. It is not safe for
// concurrent use: the protocol pairs responses to requests by send order, so
// exactly one request may be in flight.
type Client struct {
	conn    *protocol.Conn
	netConn net.Conn
	proc    *exec.Cmd
	timeout time.Duration
}

type Option func(*Client)

// WithRequestTimeout bounds each request/response exchange. The zero default
// blocks forever, leaving a frozen render process to hang the caller; any
// timeout is reported as a channel failure and the session must be
// abandoned.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New wraps an existing duplex connection.
func New(conn net.Conn, opts ...Option) *Client {
	c := &Client{conn: protocol.NewConn(conn), netConn: conn}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to a render process already listening on socketPath,
// retrying while the process starts up.
func Dial(socketPath string, opts ...Option) (*Client, error) {
	deadline := time.Now().Add(dialRetryWindow)
	for {
		conn, err := net.Dial("unix", socketPath)
		if err == nil {
			return New(conn, opts...), nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %v", protocol.ErrChannel, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// Launch starts the current executable as a render server on a private
// socket and connects to it. Closing the client does not stop the render
// process; it exits when its window is closed.
func Launch(opts ...Option) (*Client, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", protocol.ErrChannel, err)
	}
	socket := filepath.Join(os.TempDir(), fmt.Sprintf("vimshady-%d.sock", os.Getpid()))

	cmd := exec.Command(exe, "-render", "-socket", socket)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start render process: %v", protocol.ErrChannel, err)
	}

	c, err := Dial(socket, opts...)
	if err != nil {
		cmd.Process.Kill()
		cmd.Wait()
		return nil, err
	}
	c.proc = cmd
	return c, nil
}

// UpdateShaderSource sends new fragment shader source and blocks for the
// result. On success the response lists every uniform the compiled program
// declares; a compile failure is returned as a RequestError.
func (c *Client) UpdateShaderSource(source string) (*protocol.UpdateShaderResponse, error) {
	resp, err := c.call(&protocol.UpdateShaderRequest{FragmentShaderSource: source})
	if err != nil {
		return nil, err
	}
	update, ok := resp.(*protocol.UpdateShaderResponse)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected response %T", protocol.ErrChannel, resp)
	}
	if update.Error != "" {
		return nil, &RequestError{Message: update.Error}
	}
	return update, nil
}

// SetTextureDir points the render process at a new texture directory,
// rebinding all sampler uniforms of the active shader.
func (c *Client) SetTextureDir(dir string) error {
	resp, err := c.call(&protocol.SetTextureDirRequest{TextureDir: dir})
	if err != nil {
		return err
	}
	setDir, ok := resp.(*protocol.SetTextureDirResponse)
	if !ok {
		return fmt.Errorf("%w: unexpected response %T", protocol.ErrChannel, resp)
	}
	if setDir.Error != "" {
		return &RequestError{Message: setDir.Error}
	}
	return nil
}

func (c *Client) call(req protocol.Request) (protocol.Response, error) {
	if c.timeout > 0 {
		c.netConn.SetDeadline(time.Now().Add(c.timeout))
		defer c.netConn.SetDeadline(time.Time{})
	}
	if err := c.conn.WriteRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", protocol.ErrChannel, err)
	}
	resp, err := c.conn.ReadResponse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", protocol.ErrChannel, err)
	}
	return resp, nil
}

// Close drops the connection. A launched render process keeps running until
// its window is closed.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Wait blocks until a launched render process exits. It returns immediately
// for clients that attached to an existing process.
func (c *Client) Wait() error {
	if c.proc == nil {
		return nil
	}
	return c.proc.Wait()
}
