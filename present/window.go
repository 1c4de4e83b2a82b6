// Package present ties a frame to a window, event, and tick cycle. The
// rendered surface is uploaded as an OpenGL texture and blitted onto a
// fullscreen quad every iteration.
package present

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/vg"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Window owns a GLFW window and drives a frame through the
// poll/tick/draw/blit cycle until the window is closed.
type Window struct {
	win      *glfw.Window
	frame    vg.Frame
	handlers *Handlers

	size  observed[vg.Point]
	ratio float64

	program uint32
	vao     uint32
	vbo     uint32
	texture uint32
	texW    int
	texH    int
}

// NewWindow opens a window of the given logical size over the frame.
// It must be called from the main goroutine.
func NewWindow(title string, width, height int, frame vg.Frame, handlers *Handlers) (*Window, error) {
	if handlers == nil {
		handlers = NewHandlers()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("present: init glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("present: create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("present: init gl: %w", err)
	}
	glfw.SwapInterval(1)

	w := &Window{
		win:      win,
		frame:    frame,
		handlers: handlers,
		ratio:    1,
	}
	if err := w.initPipeline(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	fbW, fbH := win.GetFramebufferSize()
	w.updateScale()
	w.size.set(vg.Pt(float64(fbW), float64(fbH)))

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.updateScale()
		w.size.set(vg.Pt(float64(width), float64(height)))
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.handlers.dispatchCursor(CursorEvent{Position: vg.Pt(x, y)})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		w.handlers.dispatchButton(ButtonEvent{
			Button:   int(button),
			Pressed:  action == glfw.Press,
			Position: vg.Pt(x, y),
		})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		w.handlers.dispatchKey(KeyEvent{Key: int(key), Pressed: action == glfw.Press})
	})
	return w, nil
}

// Handlers returns the window's event registry.
func (w *Window) Handlers() *Handlers { return w.handlers }

// Close requests loop termination.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// Run drives the presentation cycle until the window closes: poll
// events, fire tick handlers with the elapsed time, apply any pending
// resize to the frame, draw, and blit the snapshot. Draw errors abort
// the loop.
func (w *Window) Run() error {
	defer func() {
		w.win.Destroy()
		glfw.Terminate()
	}()

	last := time.Now()
	for !w.win.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		w.handlers.dispatchTick(now.Sub(last))
		last = now

		if size, dirty := w.size.take(); dirty {
			w.frame.Resize(size)
			w.frame.SetPixelRatio(w.ratio)
			w.frame.SetViewport(vg.Rect{Size: vg.Pt(size.X/w.ratio, size.Y/w.ratio)})
			w.handlers.dispatchResize(ResizeEvent{Size: size, PixelRatio: w.ratio})
		}

		img, err := w.frame.Image()
		if err != nil {
			return fmt.Errorf("present: render: %w", err)
		}
		if err := w.blit(img); err != nil {
			return err
		}
		w.win.SwapBuffers()
	}
	return nil
}

func (w *Window) updateScale() {
	sx, _ := w.win.GetContentScale()
	if sx > 0 {
		w.ratio = float64(sx)
	}
}

// blit uploads the snapshot pixels and draws the fullscreen quad.
func (w *Window) blit(img vg.Image) error {
	viewer, ok := img.(vg.PixelViewer)
	if !ok {
		return fmt.Errorf("present: snapshot %T: %w", img, vg.ErrNoPixelAccess)
	}
	rgba, err := viewer.PixelBuffer()
	if err != nil {
		return fmt.Errorf("present: snapshot pixels: %w", err)
	}
	b := rgba.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	if width != w.texW || height != w.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
		w.texW, w.texH = width, height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	}

	gl.UseProgram(w.program)
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	return nil
}

const (
	vertexShaderSource = `#version 330 core
layout(location = 0) in vec2 pos;
layout(location = 1) in vec2 uv;
out vec2 vUV;
void main() {
	vUV = uv;
	gl_Position = vec4(pos, 0.0, 1.0);
}
` + "\x00"

	fragmentShaderSource = `#version 330 core
in vec2 vUV;
out vec4 fragColor;
uniform sampler2D tex;
void main() {
	fragColor = texture(tex, vUV);
}
` + "\x00"
)

// quad is a fullscreen triangle strip. The surface stores rows
// top-first while GL's v axis points up, so the v coordinate flips.
var quad = []float32{
	// x, y, u, v
	-1, 1, 0, 0,
	1, 1, 1, 0,
	-1, -1, 0, 1,
	1, -1, 1, 1,
}

func (w *Window) initPipeline() error {
	program, err := linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	w.program = program

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 16, 8)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &w.texture)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength)+1)
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("present: compile shader: %s", log)
	}
	return shader, nil
}

func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertex, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragment, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength)+1)
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("present: link program: %s", log)
	}
	return program, nil
}
