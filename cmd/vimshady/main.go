package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	client "github.com/silvester747/vimshady/client"
	config "github.com/silvester747/vimshady/config"
	options "github.com/silvester747/vimshady/options"
	protocol "github.com/silvester747/vimshady/protocol"
	renderer "github.com/silvester747/vimshady/renderer"
	window "github.com/silvester747/vimshady/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Parse()

	if *opts.Help {
		fmt.Println("Vim Shady live shader preview")
		flag.PrintDefaults()
		return
	}

	if *opts.Render {
		runServer(opts)
		return
	}
	runClient(opts)
}

// runServer is the render process: window, GL context and the request loop.
func runServer(opts *options.Options) {
	if *opts.Socket == "" {
		log.Fatalf("-render requires -socket")
	}

	if err := window.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer window.Terminate()

	server, err := protocol.Listen(*opts.Socket)
	if err != nil {
		log.Fatalf("Failed to open render channel: %v", err)
	}
	defer server.Close()

	r, err := renderer.New(server, config.Load())
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	log.Println("Starting render loop...")
	r.Run()
}

// runClient spawns the render process, pushes the shader at it and streams
// the resulting log lines to stdout.
func runClient(opts *options.Options) {
	if *opts.ShaderFile == "" {
		log.Fatalf("no shader file given, see -help")
	}
	source, err := os.ReadFile(*opts.ShaderFile)
	if err != nil {
		log.Fatalf("Failed to read shader: %v", err)
	}

	var clientOpts []client.Option
	if *opts.Timeout > 0 {
		clientOpts = append(clientOpts, client.WithRequestTimeout(*opts.Timeout))
	}
	c, err := client.Launch(clientOpts...)
	if err != nil {
		log.Fatalf("Failed to start render process: %v", err)
	}
	defer c.Close()

	sink := client.WriterSink{W: os.Stdout}
	sink.Append(fmt.Sprintf("Rendering shader from `%s`", *opts.ShaderFile))

	if *opts.TextureDir != "" {
		if err := c.SetTextureDir(*opts.TextureDir); err != nil {
			sink.Append(fmt.Sprintf("Failed to set texture dir: %v", err))
		}
	}

	resp, err := c.UpdateShaderSource(string(source))
	client.ReportUpdate(sink, resp, err)

	// Stay attached until the render window is closed.
	if err := c.Wait(); err != nil {
		log.Fatalf("Render process exited: %v", err)
	}
}
