package appform

// Section draws a titled banner across the content width and runs body
// below it. The banner never straddles a page boundary; the body makes its
// own page-break decisions, so a long section may continue onto following
// pages. Each banner is recorded as a SectionMark on the page it landed on.
func (d *Doc) Section(title string, body func()) {
	d.cur.EnsureSpace(bannerBudget)
	d.marks = append(d.marks, SectionMark{Title: title, Page: d.pdf.PageNo()})

	y := d.cur.Y()
	d.bannerRect(d.left, y+5, d.contentWidth, bannerHeight)

	d.setTextColor(inverseColor)
	d.setLabelFont(fontSize)
	d.pdf.SetXY(d.left+10, y+8)
	d.pdf.CellFormat(d.contentWidth-20, fontSize+2, title, "", 0, "L", false, 0, "")

	d.pdf.SetY(y + 35)
	d.cur.Advance(3)

	d.setTextColor(textColor)
	d.setValueFont(fontSize)
	body()

	d.cur.Advance(9)
}

// SubHeading renders a small primary-colored heading inside a section body.
func (d *Doc) SubHeading(text string) {
	d.setTextColor(primaryColor)
	d.setLabelFont(fontSize)
	d.pdf.SetXY(d.left, d.cur.Y())
	d.textBlock(d.contentWidth, lineHeight, text, "L")
}

// NewPage forces a page break unconditionally, regardless of how much room
// remains on the current page.
func (d *Doc) NewPage() {
	d.pdf.AddPage()
}
