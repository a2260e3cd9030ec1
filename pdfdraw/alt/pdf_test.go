package alt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/bezedit/editor"
	"github.com/benoitkugler/pdf/reader"
)

func TestRenderCanvasToPDF(t *testing.T) {
	for _, precision := range []float64{0.01, 0.2, 2} {
		e := editor.New(editor.DefaultLayout(), editor.WithPrecision(precision))
		out := filepath.Join(t.TempDir(), "frame.pdf")
		if err := RenderCanvasToPDF(e.Canvas(), e.Style(), out); err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(b, []byte("%PDF-")) {
			t.Errorf("precision %g: invalid pdf header", precision)
		}

		doc, _, err := reader.ParsePDFFile(out, reader.Options{})
		if err != nil {
			t.Fatal(err)
		}
		pages := doc.Catalog.Pages.Flatten()
		if len(pages) != 1 {
			t.Fatalf("precision %g: expected one page, got %d", precision, len(pages))
		}
		box := pages[0].MediaBox
		if box == nil || box.Urx != 1200 || box.Ury != 800 {
			t.Errorf("precision %g: unexpected media box %v", precision, box)
		}
		if len(pages[0].Contents) != 1 {
			t.Errorf("precision %g: expected one content stream, got %d", precision, len(pages[0].Contents))
		}
	}
}
