package protocol

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
)

// The OS may buffer more, but the server only ever holds this many decoded
// requests; a blocked queue applies backpressure to the reader.
const requestQueueSize = 16

// Server is the render process side of the channel. It listens on a unix
// socket, accepts one editor connection at a time, and queues decoded
// requests for the render loop, which drains at most one per frame.
type Server struct {
	listener net.Listener
	requests chan Request

	mu   sync.Mutex
	conn *Conn
}

// Listen binds the unix socket and starts accepting in the background. A
// stale socket file from a previous run is removed first.
func Listen(socketPath string) (*Server, error) {
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	s := &Server{
		listener: listener,
		requests: make(chan Request, requestQueueSize),
	}
	go s.acceptLoop()
	return s, nil
}

func (s *Server) acceptLoop() {
	for {
		raw, err := s.listener.Accept()
		if err != nil {
			return // listener closed
		}
		conn := NewConn(raw)
		s.mu.Lock()
		s.conn = conn
		s.mu.Unlock()
		s.readLoop(conn)
	}
}

// readLoop shuttles decoded requests into the queue. It runs on the accept
// goroutine; the render loop itself never blocks on the socket.
func (s *Server) readLoop(conn *Conn) {
	defer conn.Close()
	for {
		req, err := conn.ReadRequest()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.Printf("render channel read failed: %v", err)
			}
			return
		}
		s.requests <- req
	}
}

// Poll returns one queued request without blocking.
func (s *Server) Poll() (Request, bool) {
	select {
	case req := <-s.requests:
		return req, true
	default:
		return nil, false
	}
}

// Respond sends a response on the current connection.
func (s *Server) Respond(resp Response) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return ErrChannel
	}
	if err := conn.WriteResponse(resp); err != nil {
		return fmt.Errorf("%w: %v", ErrChannel, err)
	}
	return nil
}

// Close tears down the listener and any live connection.
func (s *Server) Close() error {
	err := s.listener.Close()
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()
	if conn != nil {
		conn.Close()
	}
	return err
}
