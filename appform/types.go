package appform

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry and layout constants, in points. US Letter, 50pt margins
// all round.
const (
	pageHeight   = 792.0
	pageMargin   = 50.0
	bottomMargin = 50.0

	fontSize   = 12.0
	footerSize = 10.0
	brandSize  = 8.0
	titleSize  = 18.0

	lineHeight = 15.0 // one body line at fontSize
	footerLine = 13.0 // one line at footerSize

	fieldGap  = 4.5 // after a single field
	rowGap    = 6.0 // after a two-column row
	columnGap = 30.0

	bannerHeight = 22.0
	bannerBudget = 50.0 // lookahead before drawing a section banner

	imageMaxHeight = 220.0
	imageInset     = 20.0 // image blocks are inset from both margins
	imageBudget    = imageMaxHeight + 50.0
)

type rgb struct{ r, g, b int }

var (
	primaryColor = rgb{8, 58, 91}    // #083A5B
	labelColor   = rgb{51, 51, 51}   // #333333
	textColor    = rgb{85, 85, 85}   // #555555
	dividerColor = rgb{221, 221, 221}
	inverseColor = rgb{255, 255, 255}
)

// Options configures a Doc independently of any one application record.
type Options struct {
	// CompanyName and Title are printed in the document header.
	// Zero values select the KCO Properties defaults.
	CompanyName string
	Title       string

	// PublicBaseURL resolves relative upload URLs ("/uploads/x.jpg") into
	// absolute ones for the clickable regions overlaid on embedded images.
	PublicBaseURL string
}

// SectionMark records on which page a section banner was drawn. The marks
// double as a cheap table of contents for logging and let callers verify
// pagination decisions.
type SectionMark struct {
	Title string
	Page  int
}

// Doc is a single rental-application document under construction. It owns
// its cursor and page buffers exclusively; a Doc must not be shared between
// goroutines, and a fresh one is needed per render.
type Doc struct {
	pdf   *gofpdf.Fpdf
	cur   *cursor
	fonts fontTable
	opts  Options

	left         float64
	contentWidth float64

	marks []SectionMark
}

// NewDoc starts an empty document on its first page. Fonts from assets are
// registered up front so style selection never touches the file system
// during layout.
func NewDoc(assets Assets, opts Options) *Doc {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, bottomMargin)
	// Pinned so rendering the same record twice yields identical bytes.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())

	d := &Doc{
		pdf:   pdf,
		fonts: resolveFonts(pdf, assets),
		opts:  opts,
	}
	left, _, right, _ := pdf.GetMargins()
	w, h := pdf.GetPageSize()
	d.left = left
	d.contentWidth = w - left - right
	d.cur = &cursor{pdf: pdf, pageHeight: h, bottomMargin: bottomMargin}

	pdf.AddPage()
	return d
}

// Sections returns the banner marks in the order they were drawn.
func (d *Doc) Sections() []SectionMark {
	return d.marks
}

// PageNo reports the page currently being written.
func (d *Doc) PageNo() int {
	return d.pdf.PageNo()
}

// Bytes closes the document and returns the finished PDF. Any drawing fault
// accumulated during layout surfaces here; no partial output is returned.
func (d *Doc) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing application pdf: %w", err)
	}
	return buf.Bytes(), nil
}
