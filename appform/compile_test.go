package appform

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
)

// tinyPNG encodes a small blank PNG, enough to exercise image embedding.
func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

var sectionOrder = []string{
	"Personal Information",
	"Current Residence",
	"Employment & Income",
	"Emergency Contact & Additional Info",
	"Additional Occupants",
	"Upload Documents",
	"Consent & Authorization",
}

func minimalApplication() Application {
	return Application{
		FullName:     "Ada Applicant",
		Email:        "ada@example.com",
		Phone:        "555-0100",
		ConsentGiven: true,
	}
}

// composeRaw builds a document with stream compression off so tests can
// look for literal text in the page content.
func composeRaw(t *testing.T, app Application, assets Assets) []byte {
	t.Helper()
	d := NewDoc(assets, Options{})
	d.pdf.SetCompression(false)
	d.compose(app, assets)
	out, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	return out
}

func TestRenderEmptyRecord(t *testing.T) {
	out := composeRaw(t, minimalApplication(), Assets{})
	if len(out) == 0 {
		t.Fatal("rendered empty document")
	}

	content := string(out)
	for _, label := range []string{
		"Last 4 Digits of SSN: ",
		"Street Address: ",
		"Employer Name: ",
		"Relationship: ",
		"Monthly Gross Income: ",
	} {
		if !strings.Contains(content, label) {
			t.Errorf("label %q missing for an absent value; labels render regardless of data", label)
		}
	}

	d := Compose(minimalApplication(), Assets{}, Options{})
	marks := d.Sections()
	if len(marks) != len(sectionOrder) {
		t.Fatalf("got %d section banners, want %d", len(marks), len(sectionOrder))
	}
	for i, want := range sectionOrder {
		if marks[i].Title != want {
			t.Errorf("section %d = %q, want %q", i, marks[i].Title, want)
		}
	}
}

func TestConsentAlwaysStartsOnFreshPage(t *testing.T) {
	// A minimal record leaves most of the last content page free, so any
	// page advance before the consent banner has to be the forced break.
	d := Compose(minimalApplication(), Assets{}, Options{})

	pageOf := map[string]int{}
	for _, m := range d.Sections() {
		pageOf[m.Title] = m.Page
	}
	uploads, consent := pageOf["Upload Documents"], pageOf["Consent & Authorization"]
	if uploads == 0 || consent == 0 {
		t.Fatalf("missing section marks: %v", d.Sections())
	}
	if consent != uploads+1 {
		t.Errorf("consent on page %d, uploads on page %d; want consent exactly one page later", consent, uploads)
	}
	if d.PageNo() != consent {
		t.Errorf("document ends on page %d, consent starts on %d; legal text should fit its page", d.PageNo(), consent)
	}
}

func TestSupervisorContactFallback(t *testing.T) {
	app := minimalApplication()
	app.SupervisorContact = "Jane Doe - 555-1234"

	content := string(composeRaw(t, app, Assets{}))
	if !strings.Contains(content, "Jane Doe") {
		t.Error("supervisor name from combined contact string not rendered")
	}
	if !strings.Contains(content, "555-1234") {
		t.Error("supervisor phone from combined contact string not rendered")
	}
}

func TestMissingImageBufferOmitsWholeBlock(t *testing.T) {
	app := minimalApplication()
	app.IDDocumentURL = "/uploads/id.jpg" // URL known, fetch failed upstream

	content := string(composeRaw(t, app, Assets{}))
	if strings.Contains(content, "Photo ID:") {
		t.Error("image block label rendered although its buffer is missing")
	}
	// Text fields behave the opposite way: the label stays.
	if !strings.Contains(content, "Name: ") {
		t.Error("text field label missing")
	}
}

func TestPresentImageRendersLabelAndLink(t *testing.T) {
	app := minimalApplication()
	app.IDDocumentURL = "/uploads/id.jpg"

	content := string(composeRaw(t, app, Assets{IDDocument: tinyPNG(t)}))
	if !strings.Contains(content, "Photo ID:") {
		t.Error("image block label missing")
	}
	if !strings.Contains(content, "http://localhost:3000/uploads/id.jpg") {
		t.Error("clickable link region does not carry the absolute source URL")
	}
}

func TestCorruptImageBufferFailsRender(t *testing.T) {
	app := minimalApplication()
	_, err := Render(app, Assets{IDDocument: []byte("definitely not an image")}, Options{})
	if err == nil {
		t.Fatal("corrupt image buffer did not abort the render")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	app := minimalApplication()
	app.CurrentAddress = "12 Main St, Springfield, IL 62704"
	income := int64(450000)
	app.MonthlyIncome = &income

	first, err := Render(app, Assets{}, Options{})
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := Render(app, Assets{}, Options{})
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two renders of the same record differ")
	}
}

func TestMonthlyIncomeFormatting(t *testing.T) {
	app := minimalApplication()
	income := int64(450000)
	app.MonthlyIncome = &income

	content := string(composeRaw(t, app, Assets{}))
	if !strings.Contains(content, "$4,500") {
		t.Error("monthly income of 450000 cents not rendered as $4,500")
	}
}

func TestPartialAddressRendersWithoutError(t *testing.T) {
	app := minimalApplication()
	app.CurrentAddress = "12 Main St, Springfield"

	content := string(composeRaw(t, app, Assets{}))
	if !strings.Contains(content, "12 Main St") || !strings.Contains(content, "Springfield") {
		t.Error("street and city from a partial address not rendered")
	}
	if !strings.Contains(content, "State: ") || !strings.Contains(content, "ZIP Code: ") {
		t.Error("state and zip labels must render with blank values")
	}
}
