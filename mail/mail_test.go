package mail

import (
	"strings"
	"testing"

	gomail "gopkg.in/gomail.v2"

	"github.com/plaxsys/rentapp/appform"
)

func testConfig() Config {
	return Config{Host: "smtp.example.com", Port: 587, User: "u", Pass: "p", From: "apply@example.com"}
}

func TestEnabled(t *testing.T) {
	if New(Config{}, nil).Enabled() {
		t.Error("zero config reported enabled")
	}
	if New(testConfig(), nil).Enabled() {
		t.Error("no recipients reported enabled")
	}
	if !New(testConfig(), []string{"mgr@example.com"}).Enabled() {
		t.Error("complete config reported disabled")
	}
}

func TestSendApplicationBuildsMessage(t *testing.T) {
	m := New(testConfig(), []string{"mgr@example.com"})

	var captured *gomail.Message
	m.send = func(msg *gomail.Message) error {
		captured = msg
		return nil
	}

	app := appform.Application{FullName: "Ada Applicant", Email: "ada@example.com", Phone: "555-0100"}
	if err := m.SendApplication(app, "Maple Court", []byte("%PDF-fake")); err != nil {
		t.Fatalf("SendApplication: %v", err)
	}
	if captured == nil {
		t.Fatal("no message was handed to the transport")
	}

	subject := captured.GetHeader("Subject")
	if len(subject) != 1 || subject[0] != "New Rental Application - Maple Court - Ada Applicant" {
		t.Errorf("subject = %v", subject)
	}
	if to := captured.GetHeader("To"); len(to) != 1 || to[0] != "mgr@example.com" {
		t.Errorf("recipients = %v", to)
	}

	var buf strings.Builder
	if _, err := captured.WriteTo(&buf); err != nil {
		t.Fatalf("serializing message: %v", err)
	}
	raw := buf.String()
	if !strings.Contains(raw, "<strong>Applicant:</strong>") {
		t.Error("markdown body was not converted to HTML")
	}
	if !strings.Contains(raw, attachmentName) {
		t.Error("pdf attachment missing from message")
	}
}

func TestSendApplicationDisabledTransport(t *testing.T) {
	m := New(Config{}, nil)
	err := m.SendApplication(appform.Application{FullName: "Ada"}, "Maple Court", nil)
	if err == nil {
		t.Fatal("disabled transport did not report an error")
	}
}
