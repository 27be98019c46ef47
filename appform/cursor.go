package appform

import "github.com/jung-kurt/gofpdf"

// cursor tracks the vertical write position against the page bounds and
// makes every page-break decision for the document. The write position
// itself lives in the underlying pdf so that flowing text and explicit
// advances stay in agreement; the cursor only ever reads and moves it,
// never draws.
type cursor struct {
	pdf          *gofpdf.Fpdf
	pageHeight   float64
	bottomMargin float64
}

func (c *cursor) Y() float64 {
	return c.pdf.GetY()
}

// Advance moves the write position down by delta without drawing.
func (c *cursor) Advance(delta float64) {
	c.pdf.SetY(c.pdf.GetY() + delta)
}

// Remaining reports the vertical space left above the bottom margin.
func (c *cursor) Remaining() float64 {
	return c.pageHeight - c.pdf.GetY() - c.bottomMargin
}

// EnsureSpace starts a new page when fewer than required points remain,
// resetting the write position to the top margin. Callers invoke it before
// drawing any block that must not straddle a page boundary: one field row,
// one section banner, one image block. It reports whether a break happened.
func (c *cursor) EnsureSpace(required float64) bool {
	if c.Remaining() < required {
		c.pdf.AddPage()
		return true
	}
	return false
}
