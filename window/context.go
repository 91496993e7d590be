package window

import (
	"fmt"
	"log"
	"runtime"
	"time"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	config "github.com/silvester747/vimshady/config"
	timer "github.com/silvester747/vimshady/timer"
	uniforms "github.com/silvester747/vimshady/uniforms"
)

// Context owns the GLFW window and translates its input events into timer
// and uniform state changes. All callbacks run on the render thread; no
// locking is involved.
type Context struct {
	window *glfw.Window
	timer  *timer.Timer
	state  *uniforms.State

	buttonsDown int

	frames    int
	lastTitle time.Time
}

// Init initializes GLFW. Must be called from the main thread before New.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW terminated")
}

// New creates the render window with the persisted geometry and wires the
// input callbacks. The GL context is made current on the calling thread.
func New(cfg config.Config, t *timer.Timer, s *uniforms.State) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, "Vim Shady", nil, nil)
	if err != nil {
		return nil, err
	}
	win.SetPos(cfg.WindowX, cfg.WindowY)

	c := &Context{
		window:    win,
		timer:     t,
		state:     s,
		lastTitle: time.Now(),
	}
	win.SetKeyCallback(c.onKey)
	win.SetMouseButtonCallback(c.onMouseButton)
	win.SetCursorPosCallback(c.onCursorPos)
	win.SetScrollCallback(c.onScroll)
	win.SetFramebufferSizeCallback(c.onFramebufferResize)

	win.MakeContextCurrent()

	// Initial show: record the framebuffer size and center the click point.
	fbWidth, fbHeight := win.GetFramebufferSize()
	s.Resize(fbWidth, fbHeight)
	s.MousePress(float32(fbWidth)/2, float32(fbHeight)/2)

	return c, nil
}

func (c *Context) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	step := 0.1
	if mods&glfw.ModControl != 0 {
		step = 1.0
	} else if mods&glfw.ModShift != 0 {
		step = 0.5
	}

	switch key {
	case glfw.KeyP:
		c.timer.TogglePause()
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		c.timer.AdjustSpeed(-step)
	case glfw.KeyEqual, glfw.KeyKPAdd:
		c.timer.AdjustSpeed(step)
	case glfw.KeyQ:
		c.window.SetShouldClose(true)
	}
}

// Any button presses and drags, not just the left one.
func (c *Context) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		c.buttonsDown++
		x, y := c.window.GetCursorPos()
		fx, fy := c.toFramebuffer(x, y)
		c.state.MousePress(fx, fy)
	case glfw.Release:
		if c.buttonsDown > 0 {
			c.buttonsDown--
		}
	}
}

func (c *Context) onCursorPos(w *glfw.Window, x, y float64) {
	if c.buttonsDown == 0 {
		return
	}
	fx, fy := c.toFramebuffer(x, y)
	c.state.MouseDrag(fx, fy)
}

func (c *Context) onScroll(w *glfw.Window, dx, dy float64) {
	c.state.MouseScroll(float32(dx), float32(dy))
}

func (c *Context) onFramebufferResize(w *glfw.Window, width, height int) {
	c.state.Resize(width, height)
}

// toFramebuffer converts window coordinates to framebuffer pixels with a
// bottom-left origin, scaling for high-DPI windows where the two differ.
func (c *Context) toFramebuffer(x, y float64) (float32, float32) {
	fbWidth, fbHeight := c.window.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	scaleX, scaleY := 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}
	return float32(x * scaleX), float32(fbHeight) - float32(y*scaleY)
}

// EndFrame presents the frame, pumps events and refreshes the title readout
// about once per second.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()

	c.frames++
	if since := time.Since(c.lastTitle); since >= time.Second {
		fps := float64(c.frames) / since.Seconds()
		speed := "Paused"
		if c.timer.Running {
			speed = fmt.Sprintf("Speed: %.1f", c.timer.Speed)
		}
		c.window.SetTitle(fmt.Sprintf("Vim Shady | %.0f fps | %s", fps, speed))
		c.frames = 0
		c.lastTitle = time.Now()
	}
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Geometry returns the current window placement for persistence.
func (c *Context) Geometry() config.Config {
	x, y := c.window.GetPos()
	w, h := c.window.GetSize()
	return config.Config{WindowX: x, WindowY: y, WindowWidth: w, WindowHeight: h}
}

// Destroy closes the window.
func (c *Context) Destroy() {
	c.window.Destroy()
}
