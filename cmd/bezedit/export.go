package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/bezedit/ggraster"
	"github.com/benoitkugler/bezedit/pdfdraw"
	"github.com/benoitkugler/bezedit/pdfdraw/alt"
	"github.com/benoitkugler/bezedit/raster"
	"github.com/benoitkugler/bezedit/scene"
	"github.com/benoitkugler/bezedit/svgio"
)

// exporter writes frames, choosing the format from the file extension.
type exporter struct {
	style   scene.Style
	backend string // rasterx or gg
	pdf     string // gofpdf or alt
}

func (ex exporter) export(c *scene.Canvas, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" && ex.pdf == "alt" {
		// the alt writer only writes to files
		if err := alt.RenderCanvasToPDF(c, ex.style, path); err != nil {
			return fmt.Errorf("exporting %s: %w", path, err)
		}
		return nil
	}

	var write func(w *bufio.Writer) error
	switch ext {
	case ".png":
		write = func(w *bufio.Writer) error { return ex.writePNG(c, w) }
	case ".pdf":
		write = func(w *bufio.Writer) error { return pdfdraw.RenderCanvasToPDF(c, ex.style, w) }
	case ".svg":
		write = func(w *bufio.Writer) error { return svgio.WriteCanvas(w, c, ex.style) }
	default:
		return fmt.Errorf("exporting %s: unsupported format %q", path, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	scene.Logger().Info("frame exported", "file", path, "items", c.Len())
	return nil
}

func (ex exporter) writePNG(c *scene.Canvas, w *bufio.Writer) error {
	if ex.backend == "gg" {
		dc, err := ggraster.RenderCanvas(c, ex.style)
		if err != nil {
			return err
		}
		defer dc.Close()
		return dc.EncodePNG(w)
	}
	return raster.EncodePNG(w, raster.RasterCanvasToImage(c, ex.style))
}
