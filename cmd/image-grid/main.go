package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"golang.org/x/image/font"

	"github.com/ironsheep/image-grid/internal/fonts"
	"github.com/ironsheep/image-grid/internal/grid"
	"github.com/ironsheep/image-grid/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("image-grid %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		columns   = flag.Int("columns", 0, "maximum number of grid columns (rows follow)")
		rows      = flag.Int("rows", 0, "maximum number of grid rows (columns follow)")
		gap       = flag.Int("gap", 0, "pixel spacing between adjacent tiles")
		out       = flag.String("out", "grid.png", "output file (format from extension)")
		colLabels = flag.String("col-labels", "", "comma-separated column labels")
		rowLabels = flag.String("row-labels", "", "comma-separated row labels")
		fontName  = flag.String("font", "", "font file path or system font name (default: embedded Go Regular)")
		fontSize  = flag.Int("font-size", 16, "label font size in points")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: image-grid [options] image...\n\n")
		fmt.Fprintf(os.Stderr, "Composes the given images into a labeled comparison grid.\n")
		fmt.Fprintf(os.Stderr, "Exactly one of -columns or -rows must be set.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if (*columns > 0) == (*rows > 0) {
		log.Fatal("exactly one of -columns or -rows is required")
	}

	cache := imaging.NewImageCache()
	images := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := cache.Load(p)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", p, err)
		}
		images = append(images, img)
	}

	ann, err := buildAnnotation(*colLabels, *rowLabels, *fontName, *fontSize)
	if err != nil {
		log.Fatalf("Failed to prepare annotation: %v", err)
	}

	var result image.Image
	if *columns > 0 {
		result, err = grid.ByColumns(images, *gap, *columns, ann)
	} else {
		result, err = grid.ByRows(images, *gap, *rows, ann)
	}
	if err != nil {
		log.Fatalf("Failed to compose grid: %v", err)
	}

	if err := imaging.Save(result, *out); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	b := result.Bounds()
	log.Printf("Wrote %dx%d grid to %s", b.Dx(), b.Dy(), *out)
}

// buildAnnotation turns the label flags into a grid.Annotation, or nil
// when no labels were requested. Labels for both axes are required once
// either is given; the composer rejects half-annotated grids.
func buildAnnotation(colCSV, rowCSV, fontName string, size int) (*grid.Annotation, error) {
	if colCSV == "" && rowCSV == "" {
		return nil, nil
	}

	face, err := loadFace(fontName, float64(size))
	if err != nil {
		return nil, err
	}

	return &grid.Annotation{
		ColumnLabels: splitLabels(colCSV),
		RowLabels:    splitLabels(rowCSV),
		Font:         grid.Font{Face: face, Size: size},
	}, nil
}

func loadFace(name string, size float64) (font.Face, error) {
	switch {
	case name == "":
		return fonts.Default(size)
	case strings.ContainsAny(name, `/\`):
		return fonts.Load(name, size)
	default:
		return fonts.Find(name, size)
	}
}

func splitLabels(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
