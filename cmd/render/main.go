package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"turntable-renderer/internal/batch"
	"turntable-renderer/internal/config"
	"turntable-renderer/internal/mesh"
	"turntable-renderer/internal/postprocess"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	meshPath := flag.String("mesh", "", "Mesh file to render (.stl, .gltf, .glb)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	size := flag.Int("size", 0, "Image size in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 8)")
	radius := flag.Float64("radius", 0, "Orbit radius (default: auto from mesh bounds)")
	elev := flag.Float64("elev", 0, "Camera elevation in degrees from the pole (default: 60)")
	format := flag.String("format", "", "Output format: webp, png or tga (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	sheet := flag.Bool("sheet", false, "Also write a contact sheet overview")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		MeshPath:  *meshPath,
		OutputDir: *outputDir,
		Format:    *format,
		Size:      *size,
		Frames:    *frames,
		Radius:    *radius,
		Elevation: *elev,
		Workers:   *workers,
		Sheet:     *sheet,
	})

	if cfg.MeshPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no mesh file. Use -mesh or set it in config.json.")
		os.Exit(1)
	}

	m, err := mesh.Load(cfg.MeshPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad mesh topology: %v\n", err)
		os.Exit(1)
	}
	if m.TriangleCount() == 0 {
		fmt.Fprintf(os.Stderr, "Error: %s holds no triangles\n", cfg.MeshPath)
		os.Exit(1)
	}

	if cfg.Radius <= 0 {
		cfg.Radius = 2.5 * m.BoundingRadius()
	}

	turntable := batch.Frames(m, cfg.Radius, cfg.Elevation, cfg.Frames)

	fmt.Printf("Turntable renderer: %s\n", m.Name)
	fmt.Printf("Mesh: %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	fmt.Printf("Frames: %d at radius %.2f, elevation %.1f°, Workers: %d\n",
		len(turntable), cfg.Radius, cfg.Elevation, cfg.Workers)
	fmt.Printf("Output: %s (%s, %dpx)\n", cfg.OutputDir, cfg.Format, cfg.Size)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Size:      cfg.Size,
		Margin:    cfg.Margin,
		Format:    cfg.Format,
		Workers:   cfg.Workers,
	}, m, turntable)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, turntable, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if cfg.Sheet {
		if err := writeSheet(cfg, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: contact sheet failed: %v\n", err)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func writeSheet(cfg config.Config, results []batch.Result) error {
	imgs := make([]*image.NRGBA, 0, len(results))
	for _, r := range results {
		if r.Success {
			imgs = append(imgs, r.Image)
		}
	}
	sheet := postprocess.ContactSheet(imgs, cfg.SheetCols, cfg.SheetCell)
	if sheet == nil {
		return fmt.Errorf("no frames rendered")
	}

	path := filepath.Join(cfg.OutputDir, "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, sheet); err != nil {
		return err
	}
	fmt.Printf("Contact sheet: %s\n", path)
	return nil
}
