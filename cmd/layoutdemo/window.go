package main

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/layout"
	"github.com/go-theft-auto/layout/backend/opengl"
)

type windowOptions struct {
	width, height int
	screenshot    string
	frames        int
}

func newWindowCmd(a *app) *cobra.Command {
	opts := windowOptions{}
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the demo in a GLFW window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), a, opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 800, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 600, "window height")
	cmd.Flags().StringVar(&opts.screenshot, "screenshot", "", "render hidden, save a JPEG to this path and exit")
	cmd.Flags().IntVar(&opts.frames, "frames", 3, "frames to render before the screenshot")
	return cmd
}

func runWindow(ctx context.Context, a *app, opts windowOptions) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.screenshot != "" {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(opts.width, opts.height, "layoutdemo", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("layout renderer: %w", err)
	}
	defer renderer.Delete()

	adapter := opengl.NewGLFWInputAdapter(window)
	ui := layout.New(renderer, layout.WithStyle(a.style))
	defer ui.Close()

	s := newScene(a.items, a.logger)
	a.logger.Info("window open", "width", fbw, "height", fbh, "items", a.items)

	last := glfw.GetTime()
	for frame := 1; !window.ShouldClose(); frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		glfw.PollEvents()
		in := adapter.Update()

		w, h := window.GetFramebufferSize()
		if w != fbw || h != fbh {
			fbw, fbh = w, h
			ui.Resize(w, h)
		}
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		displaySize := layout.Vec2{X: float32(w), Y: float32(h)}
		if err := ui.Frame(in, displaySize, dt, s.build); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		adapter.EndFrame()

		if opts.screenshot != "" && frame >= opts.frames {
			if err := saveScreenshot(opts.screenshot, w, h); err != nil {
				return err
			}
			a.logger.Info("screenshot saved", "path", opts.screenshot)
			return nil
		}
		window.SwapBuffers()
	}
	return nil
}

// saveScreenshot reads the back buffer and writes it as a JPEG.
func saveScreenshot(path string, width, height int) error {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode screenshot: %w", err)
	}
	return nil
}
