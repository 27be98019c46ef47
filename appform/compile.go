package appform

import "strings"

const (
	defaultCompanyName = "KCO PROPERTIES, LLC."
	defaultTitle       = "Rental Application"
)

var consentParagraphs = []string{
	"By submitting this application, I certify that all information provided is true and complete to the best of my knowledge. I understand that false information may result in denial of my application or termination of my lease agreement.",
	"I authorize KCO Properties, LLC to verify the information provided and to obtain a consumer credit report and criminal background check. I understand that this is a soft inquiry and will not affect my credit score.",
	"I understand that submission of this application does not guarantee approval or reservation of the property. The application will be processed in the order received, and approval is subject to verification of all information and satisfactory credit and background checks.",
	"I acknowledge that KCO Properties, LLC complies with all Fair Housing laws and does not discriminate based on race, color, religion, sex, national origin, familial status, or disability.",
}

const consentAcknowledgement = "I have read and agree to the above consent and authorization. I understand that by checking this box, I am providing my electronic signature."

// Render lays out the full application record and returns the finished
// multi-page PDF. Rendering is deterministic: the same record and assets
// produce byte-identical output.
func Render(app Application, assets Assets, opts Options) ([]byte, error) {
	return Compose(app, assets, opts).Bytes()
}

// Compose builds the document without serializing it, leaving the page
// structure open for inspection. The section order is fixed; only the
// Upload Documents content varies with which image buffers were resolved.
func Compose(app Application, assets Assets, opts Options) *Doc {
	d := NewDoc(assets, opts)
	d.compose(app, assets)
	return d
}

func (d *Doc) compose(app Application, assets Assets) {
	d.header(assets)

	d.Section("Personal Information", func() {
		d.FieldRow("Name", app.FullName, "Email Address", app.Email)
		d.FieldRow("Phone Number", app.Phone, "Date of Birth", app.DateOfBirth)
		d.FieldRow("Last 4 Digits of SSN", app.SSNLast4, "", "")
	})

	d.Section("Current Residence", func() {
		addr := splitAddress(app.CurrentAddress)
		d.FieldRow("Street Address", addr.Street, "City", addr.City)
		d.FieldRow("ZIP Code", addr.Zip, "State", addr.State)
		d.FieldRow("Reason for Leaving", app.ReasonForLeaving, "", "")
	})

	d.Section("Employment & Income", func() {
		// Discrete supervisor fields win; older submissions only carry the
		// combined "Name - Phone" string.
		name, phone := splitSupervisorContact(app.SupervisorContact)
		if app.SupervisorName != "" {
			name = app.SupervisorName
		}
		if app.SupervisorPhone != "" {
			phone = app.SupervisorPhone
		}

		income := ""
		if app.MonthlyIncome != nil {
			income = formatMoney(*app.MonthlyIncome)
		}

		d.FieldRow("Employer Name", app.EmployerName, "Position/Title", app.Position)
		d.FieldRow("Employer Address", app.EmployerAddress, "", "")
		d.FieldRow("Length of Employment", app.EmploymentLength, "Monthly Gross Income", income)
		d.FieldRow("Supervisor Name", name, "Supervisor Phone", phone)
		d.FieldRow("Additional Monthly Income", app.AdditionalIncome, "Source of Additional Income", app.AdditionalIncomeSource)
	})

	d.Section("Emergency Contact & Additional Info", func() {
		d.FieldRow("Name", app.EmergencyContactName, "Phone Number", app.EmergencyContactPhone)
		d.FieldRow("Relationship", app.EmergencyContactRelation, "", "")

		hasPets := strings.TrimSpace(app.Pets) != ""
		if app.HasPets != nil {
			hasPets = *app.HasPets
		}
		hasVehicles := strings.TrimSpace(app.Vehicles) != ""
		if app.HasVehicles != nil {
			hasVehicles = *app.HasVehicles
		}

		// Heading plus both checkboxes stay together on one page.
		d.cur.EnsureSpace(60)
		d.cur.Advance(7)
		d.SubHeading("Additional Information")
		d.cur.Advance(6)
		d.CheckboxLine(hasPets, "I have pets")
		d.CheckboxLine(hasVehicles, "I have vehicles")
	})

	d.Section("Additional Occupants", func() {
		d.ValueLine(app.AdditionalOccupants)
	})

	d.Section("Upload Documents", func() {
		d.ImageBlock("id-document", "Photo ID:", assets.IDDocument, app.IDDocumentURL)
		d.ImageBlock("income-proof", "Proof of Income:", assets.IncomeProof, app.IncomeProofURL)
	})

	// Legal text always starts on its own page so it is never visually
	// mixed with application data, even when room remains.
	d.NewPage()
	d.Section("Consent & Authorization", func() {
		for i, p := range consentParagraphs {
			if i > 0 {
				d.cur.Advance(5)
			}
			d.setTextColor(textColor)
			d.setValueFont(footerSize)
			d.pdf.SetXY(d.left, d.cur.Y())
			d.textBlock(d.contentWidth, footerLine, p, "J")
		}

		d.cur.Advance(9)
		box := "[ ]"
		if app.ConsentGiven {
			box = "[x]"
		}
		d.setTextColor(labelColor)
		d.setValueFont(fontSize)
		d.pdf.SetXY(d.left, d.cur.Y())
		d.textBlock(d.contentWidth, lineHeight, box+" "+consentAcknowledgement, "L")
	})
}

// header draws the logo (or its spacing fallback), the company name, the
// document title and a divider ahead of the first section.
func (d *Doc) header(assets Assets) {
	if len(assets.Logo) > 0 {
		const logoWidth = 100
		x := d.left + (d.contentWidth-logoWidth)/2
		y := d.cur.Y()
		d.placeImage("logo", assets.Logo, x, y, logoWidth, 0)
		d.pdf.SetY(y + 80)
	} else {
		d.cur.Advance(1.5 * lineHeight)
	}

	company := d.opts.CompanyName
	if company == "" {
		company = defaultCompanyName
	}
	title := d.opts.Title
	if title == "" {
		title = defaultTitle
	}

	d.setTextColor(primaryColor)
	d.setLabelFont(brandSize)
	d.pdf.SetX(d.left)
	d.pdf.CellFormat(d.contentWidth, 10, company, "", 1, "C", false, 0, "")
	d.cur.Advance(2)

	d.setTextColor(labelColor)
	d.setLabelFont(titleSize)
	d.pdf.SetX(d.left)
	d.pdf.CellFormat(d.contentWidth, 22, title, "", 1, "C", false, 0, "")
	d.cur.Advance(24)

	d.divider(d.cur.Y())
	d.cur.Advance(lineHeight)
}
