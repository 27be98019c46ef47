package appform

import "math"

// Field draws `label: ` in the label style immediately followed on the same
// line by value in the value style, spanning the full content width. A
// blank value still advances one line so absent data keeps its label.
func (d *Doc) Field(label, value string) {
	d.cur.EnsureSpace(lineHeight + fieldGap)
	d.labeledText(d.left, d.cur.Y(), d.contentWidth, label, value)
	d.cur.Advance(fieldGap)
}

// FieldRow renders up to two labeled values side by side in two equal
// columns. The row is atomic with respect to page breaks, and the cursor
// afterwards sits below the taller of the two columns, so a value wrapping
// to more lines on one side never overlaps the following row.
func (d *Doc) FieldRow(label1, value1, label2, value2 string) {
	d.cur.EnsureSpace(lineHeight + rowGap)
	colWidth := (d.contentWidth - columnGap) / 2
	yStart := d.cur.Y()

	leftY := d.labeledText(d.left, yStart, colWidth, label1, value1)
	rightY := yStart
	if label2 != "" {
		rightY = d.labeledText(d.left+colWidth+columnGap, yStart, colWidth, label2, value2)
	}

	d.pdf.SetY(math.Max(leftY, rightY) + rowGap)
}

// BoolField renders value as Yes/No. Unlike Field, an absent value omits
// the whole line, label included.
func (d *Doc) BoolField(label string, value *bool) {
	if value == nil {
		return
	}
	if *value {
		d.Field(label, "Yes")
	} else {
		d.Field(label, "No")
	}
}

// CheckboxLine renders "[x] label" or "[ ] label" on one line.
func (d *Doc) CheckboxLine(checked bool, label string) {
	d.cur.EnsureSpace(lineHeight + fieldGap)
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	d.setTextColor(textColor)
	d.setLabelFont(fontSize)
	d.pdf.SetXY(d.left, d.cur.Y())
	d.textBlock(d.contentWidth, lineHeight, box+" "+label, "L")
	d.cur.Advance(fieldGap)
}

// ValueLine renders a bare value without any label, used by sections whose
// single field needs no annotation. Blank values still advance a line.
func (d *Doc) ValueLine(value string) {
	d.cur.EnsureSpace(lineHeight + fieldGap)
	if value == "" {
		value = " "
	}
	d.setTextColor(textColor)
	d.setValueFont(fontSize)
	d.pdf.SetXY(d.left, d.cur.Y())
	d.textBlock(d.contentWidth, lineHeight, value, "L")
	d.cur.Advance(fieldGap)
}

// labeledText draws one label/value pair wrapped inside width starting at
// (x, y) and returns the y below its last line. The value follows the label
// on the same line; when the label alone fills the column, the value wraps
// to the next line instead of being squeezed into a sliver.
func (d *Doc) labeledText(x, y, width float64, label, value string) float64 {
	d.setTextColor(labelColor)
	d.setLabelFont(fontSize)
	prefix := label + ": "
	labelWidth := d.pdf.GetStringWidth(prefix)
	d.textRun(x, y, prefix)

	if value == "" {
		value = " " // keeps the line height
	}
	d.setTextColor(textColor)
	d.setValueFont(fontSize)

	valueWidth := width - labelWidth
	if valueWidth < 2*fontSize {
		d.pdf.SetXY(x, y+lineHeight)
		valueWidth = width
	}
	d.textBlock(valueWidth, lineHeight, value, "L")
	return d.pdf.GetY()
}
