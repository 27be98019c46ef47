package appform

// ImageBlock embeds a pre-fetched document image under a label. A nil
// buffer skips the whole block, label included — uploads are the one place
// where absence means full omission rather than a blank value. When url is
// set, an invisible link region the size of the image box makes the
// rendered image clickable back to its source. name keys the image inside
// the pdf and must be unique per document.
func (d *Doc) ImageBlock(name, label string, buf []byte, url string) {
	if len(buf) == 0 {
		return
	}

	maxWidth := d.contentWidth - 2*imageInset
	d.cur.EnsureSpace(imageBudget)

	x := d.left + imageInset
	d.setTextColor(labelColor)
	d.setLabelFont(fontSize)
	d.pdf.SetXY(x, d.cur.Y())
	d.pdf.CellFormat(maxWidth, lineHeight, label, "", 1, "L", false, 0, "")
	d.cur.Advance(fieldGap)

	imageY := d.cur.Y()
	d.placeImage(name, buf, x, imageY, maxWidth, imageMaxHeight)
	if url != "" {
		d.linkRegion(x, imageY, maxWidth, imageMaxHeight, absoluteURL(url, d.opts.PublicBaseURL))
	}

	// Advance past the full box, not the drawn extent, so following content
	// clears the link region.
	d.pdf.SetY(imageY + imageMaxHeight + 10)
}
