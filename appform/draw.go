package appform

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// Low-level placement primitives. Everything here appends operations to the
// current page at absolute coordinates; nothing edits what was already
// drawn.

func (d *Doc) setLabelFont(size float64) {
	d.pdf.SetFont(d.fonts.labelFamily, d.fonts.labelStyle, size)
}

func (d *Doc) setValueFont(size float64) {
	d.pdf.SetFont(d.fonts.valueFamily, d.fonts.valueStyle, size)
}

func (d *Doc) setTextColor(c rgb) {
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

// textRun draws txt at (x, y) and leaves the write position at the end of
// the run, so a following run continues on the same line. Width bookkeeping
// stays inside the pdf; callers only pick fonts and colors.
func (d *Doc) textRun(x, y float64, txt string) {
	d.pdf.SetXY(x, y)
	w := d.pdf.GetStringWidth(txt)
	d.pdf.CellFormat(w, lineHeight, txt, "", 0, "L", false, 0, "")
}

// textBlock draws txt wrapped to width starting at the current position,
// advancing the write position below the last line. Align is one of the
// pdf alignment strings ("L", "C", "J").
func (d *Doc) textBlock(width, lineHt float64, txt, align string) {
	d.pdf.MultiCell(width, lineHt, txt, "", align, false)
}

// bannerRect draws the filled rounded rectangle behind a section title.
func (d *Doc) bannerRect(x, y, w, h float64) {
	d.pdf.SetFillColor(primaryColor.r, primaryColor.g, primaryColor.b)
	d.pdf.RoundedRect(x, y, w, h, 4, "1234", "F")
}

// divider draws a full-width horizontal rule at y.
func (d *Doc) divider(y float64) {
	d.pdf.SetDrawColor(dividerColor.r, dividerColor.g, dividerColor.b)
	d.pdf.Line(d.left, y, d.left+d.contentWidth, y)
}

// placeImage registers buf under name and draws it at (x, y) scaled to fit
// inside a w×h box with the aspect ratio preserved, anchored top-left.
// Passing h == 0 fixes the width and lets the height follow the image.
// The drawn extent is returned; a buffer the pdf cannot decode poisons the
// document, which is surfaced as a terminal error by Bytes.
func (d *Doc) placeImage(name string, buf []byte, x, y, w, h float64) (float64, float64) {
	kind := sniffImageType(buf)
	if kind == "" {
		d.pdf.SetError(fmt.Errorf("image %q: unrecognized format", name))
		return 0, 0
	}
	opt := gofpdf.ImageOptions{ImageType: kind}
	info := d.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(buf))
	if d.pdf.Err() {
		return 0, 0
	}

	iw, ih := info.Extent()
	var dw, dh float64
	switch {
	case h == 0:
		dw, dh = w, w*ih/iw
	default:
		scale := math.Min(w/iw, h/ih)
		dw, dh = iw*scale, ih*scale
	}
	d.pdf.ImageOptions(name, x, y, dw, dh, false, opt, 0, "")
	return dw, dh
}

// linkRegion overlays an invisible clickable rectangle routing to url.
func (d *Doc) linkRegion(x, y, w, h float64, url string) {
	d.pdf.LinkString(x, y, w, h, url)
}

// sniffImageType identifies the formats the pdf can embed from the buffer's
// magic bytes. Registration from a reader cannot infer the type from a file
// name, so it has to be detected here.
func sniffImageType(buf []byte) string {
	switch {
	case len(buf) >= 8 && bytes.Equal(buf[:8], []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case len(buf) >= 3 && bytes.Equal(buf[:3], []byte("\xff\xd8\xff")):
		return "jpg"
	case len(buf) >= 6 && (bytes.Equal(buf[:6], []byte("GIF87a")) || bytes.Equal(buf[:6], []byte("GIF89a"))):
		return "gif"
	}
	return ""
}
