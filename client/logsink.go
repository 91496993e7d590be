package client

import (
	"fmt"
	"io"
	"strings"

	protocol "github.com/silvester747/vimshady/protocol"
)

// LogSink accepts ordered lines of text for user-visible display. The editor
// integration supplies its own implementation (a log buffer, a split
// window); WriterSink covers plain streams.
type LogSink interface {
	Append(lines ...string)
}

// WriterSink writes each line to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Append(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(s.W, line)
	}
}

// ReportUpdate formats the outcome of an UpdateShaderSource call into log
// lines. Errors are split on newline boundaries so multi-line compiler
// diagnostics stay readable.
func ReportUpdate(sink LogSink, resp *protocol.UpdateShaderResponse, err error) {
	if err != nil {
		sink.Append(strings.Split(err.Error(), "\n")...)
		return
	}
	sink.Append("Shader compiled")
	if len(resp.Uniforms) == 0 {
		return
	}
	sink.Append("Uniforms detected:")
	for _, u := range resp.Uniforms {
		sink.Append(fmt.Sprintf("\t%s: length=%d, size=%d", u.Name, u.Length, u.Size))
	}
}
