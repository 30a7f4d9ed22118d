package raster

import "image"

// FrameBuffer holds the rendering target as a flat RGB slice for cache
// locality. Pixels are row-major from the top-left corner and start out
// black.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGB interleaved, len = W*H*3
}

// NewFrameBuffer allocates a zeroed color buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}
}

// RGB returns the color at pixel (x, y).
func (fb *FrameBuffer) RGB(x, y int) (r, g, b uint8) {
	i := (y*fb.Width + x) * 3
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// NRGBA converts the framebuffer to an opaque image for encoding.
func (fb *FrameBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i := 0; i < fb.Width*fb.Height; i++ {
		img.Pix[i*4] = fb.Pix[i*3]
		img.Pix[i*4+1] = fb.Pix[i*3+1]
		img.Pix[i*4+2] = fb.Pix[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}
