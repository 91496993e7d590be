package options

import (
	"flag"
	"time"
)

// Options is the parsed command line. One binary serves both roles: the
// default mode drives a render process as a client, -render runs the render
// server itself.
type Options struct {
	Render     *bool
	Socket     *string
	ShaderFile *string
	TextureDir *string
	Timeout    *time.Duration
	Help       *bool
}

func Parse() *Options {
	o := &Options{
		Render:     flag.Bool("render", false, "run as the render server process"),
		Socket:     flag.String("socket", "", "unix socket path for the render channel"),
		ShaderFile: flag.String("shader", "", "fragment shader file to render"),
		TextureDir: flag.String("texture-dir", "", "directory searched for tex* sampler images"),
		Timeout:    flag.Duration("timeout", 0, "per-request timeout (0 blocks forever)"),
		Help:       flag.Bool("help", false, "show help message"),
	}
	flag.Parse()
	return o
}
