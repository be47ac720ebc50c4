package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Window is a pixel-per-cell view of a board. Live cells are white.
type Window struct {
	Width, Height int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	pixels        []byte
}

func NewWindow(width, height int32) *Window {
	err := sdl.Init(sdl.INIT_EVERYTHING)
	check(err)

	window, err := sdl.CreateWindow("Game of Life", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		scale(width), scale(height), sdl.WINDOW_SHOWN)
	check(err)

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	check(err)
	err = renderer.SetLogicalSize(width, height)
	check(err)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STATIC, width, height)
	check(err)

	return &Window{
		Width:    width,
		Height:   height,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, width*height*4),
	}
}

// scale keeps small boards visible on screen.
func scale(n int32) int32 {
	for n < 256 {
		n *= 2
	}
	return n
}

func (w *Window) Destroy() {
	err := w.texture.Destroy()
	check(err)
	err = w.renderer.Destroy()
	check(err)
	err = w.window.Destroy()
	check(err)
	sdl.Quit()
}

func (w *Window) RenderFrame() {
	err := w.texture.Update(nil, w.pixels, int(w.Width)*4)
	check(err)
	err = w.renderer.Clear()
	check(err)
	err = w.renderer.Copy(w.texture, nil, nil)
	check(err)
	w.renderer.Present()
}

// PollEvent drains pending SDL events and reports whether the window was closed.
func (w *Window) PollEvent() bool {
	closed := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			closed = true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				closed = true
			}
		}
	}
	return closed
}

func (w *Window) SetPixel(x, y int, alive bool) {
	var v byte
	if alive {
		v = 0xFF
	}
	i := (y*int(w.Width) + x) * 4
	w.pixels[i+0] = v
	w.pixels[i+1] = v
	w.pixels[i+2] = v
	w.pixels[i+3] = 0xFF
}

func (w *Window) FlipPixel(x, y int) {
	i := (y*int(w.Width) + x) * 4
	w.pixels[i+0] = ^w.pixels[i+0]
	w.pixels[i+1] = ^w.pixels[i+1]
	w.pixels[i+2] = ^w.pixels[i+2]
	w.pixels[i+3] = 0xFF
}

// CountPixels returns the number of lit pixels, i.e. live cells on screen.
func (w *Window) CountPixels() int {
	count := 0
	for i := 0; i < len(w.pixels); i += 4 {
		if w.pixels[i] == 0xFF {
			count++
		}
	}
	return count
}

func check(err error) {
	if err != nil {
		panic(fmt.Sprintf("sdl: %v", err))
	}
}
