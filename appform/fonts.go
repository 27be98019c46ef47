package appform

import "github.com/jung-kurt/gofpdf"

// fontTable is the immutable style table used for the rest of a render.
// Resolving it once up front keeps font fallback decisions out of the
// layout code.
type fontTable struct {
	labelFamily string
	labelStyle  string
	valueFamily string
	valueStyle  string
}

// resolveFonts registers the Montserrat faces when their bytes were
// supplied and falls back to the built-in Helvetica styles otherwise.
// A missing font never fails a render.
func resolveFonts(pdf *gofpdf.Fpdf, assets Assets) fontTable {
	t := fontTable{
		labelFamily: "Helvetica", labelStyle: "B",
		valueFamily: "Helvetica", valueStyle: "",
	}
	if len(assets.BoldFont) > 0 {
		pdf.AddUTF8FontFromBytes("Montserrat", "B", assets.BoldFont)
		t.labelFamily, t.labelStyle = "Montserrat", "B"
	}
	if len(assets.RegularFont) > 0 {
		pdf.AddUTF8FontFromBytes("Montserrat", "", assets.RegularFont)
		t.valueFamily, t.valueStyle = "Montserrat", ""
	}
	return t
}
