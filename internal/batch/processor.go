// Package batch renders turntable frames through a worker pool and encodes
// them to disk.
package batch

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"turntable-renderer/internal/mesh"
	"turntable-renderer/internal/project"
	"turntable-renderer/internal/raster"
)

// Config holds shared settings for a batch run.
type Config struct {
	OutputDir string
	Size      int
	Margin    int
	Format    string // webp, png or tga
	Workers   int
}

// Result holds the outcome of rendering one frame. The decoded image is
// retained so post-processing can reuse it without re-reading files.
type Result struct {
	Index   int
	Path    string
	Image   *image.NRGBA
	Success bool
	Error   string
}

// Run renders all frames using a worker pool. Frames are independent, so
// per-frame failures are captured in the results rather than aborting the
// run.
func Run(cfg Config, m *mesh.Mesh, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Index: frames[i].Index, Error: err.Error()}
		}
		return results
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, m, frames[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, m *mesh.Mesh, fr Frame) Result {
	screen, depths := project.ProjectVertices(m.Verts, fr.View, fr.Eye, cfg.Size, cfg.Margin)
	fb := raster.Render(screen, depths, m.Faces, cfg.Size, cfg.Size)
	img := fb.NRGBA()

	format := strings.ToLower(cfg.Format)
	var encode func(f *os.File) error
	switch format {
	case "webp":
		encode = func(f *os.File) error { return nativewebp.Encode(f, img, nil) }
	case "png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case "tga":
		encode = func(f *os.File) error { return tga.Encode(f, img) }
	default:
		return Result{Index: fr.Index, Error: fmt.Sprintf("unknown format %q", cfg.Format)}
	}

	outPath := filepath.Join(cfg.OutputDir, FrameFileName(fr.Index, format))
	f, err := os.Create(outPath)
	if err != nil {
		return Result{Index: fr.Index, Error: err.Error()}
	}
	defer f.Close()

	if err := encode(f); err != nil {
		return Result{Index: fr.Index, Error: fmt.Sprintf("%s encode: %v", format, err)}
	}

	return Result{Index: fr.Index, Path: outPath, Image: img, Success: true}
}

// FrameFileName returns the image file name for a frame index.
func FrameFileName(index int, format string) string {
	return fmt.Sprintf("frame_%03d.%s", index, strings.ToLower(format))
}
