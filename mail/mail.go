// Package mail delivers rendered application PDFs to the property managers
// over SMTP. The notification body is kept as a small markdown template and
// converted to sanitized HTML at send time.
package mail

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	gomail "gopkg.in/gomail.v2"

	"github.com/plaxsys/rentapp/appform"
)

const attachmentName = "rental-application.pdf"

// Config carries the SMTP transport settings. A zero Host disables sending;
// the service then runs render-only, which keeps local development working
// without a mail account.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

// ConfigFromEnv reads the SMTP_* environment variables, the deployment
// shape the hosted service uses.
func ConfigFromEnv() Config {
	cfg := Config{
		Host: os.Getenv("SMTP_HOST"),
		Port: 587,
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("SMTP_FROM"),
	}
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		cfg.Port = p
	}
	if cfg.From == "" {
		cfg.From = "apply@kcoproperties.com"
	}
	return cfg
}

// Mailer sends application notifications to a fixed recipient list.
type Mailer struct {
	cfg    Config
	to     []string
	policy *bluemonday.Policy
	send   func(m *gomail.Message) error
}

func New(cfg Config, recipients []string) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return &Mailer{
		cfg:    cfg,
		to:     recipients,
		policy: bluemonday.UGCPolicy(),
		send: func(m *gomail.Message) error {
			return d.DialAndSend(m)
		},
	}
}

// Enabled reports whether the transport is configured well enough to try.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.User != "" && m.cfg.Pass != "" && len(m.to) > 0
}

const bodyTemplate = `You have received a new rental application.

**Applicant:** %s

**Property:** %s

The full application details are attached as a PDF.
`

// SendApplication mails the rendered PDF for one application. The caller
// renders first; a send failure never invalidates the document itself.
func (m *Mailer) SendApplication(app appform.Application, propertyName string, pdf []byte) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp transport not configured")
	}

	md := fmt.Sprintf(bodyTemplate, app.FullName, propertyName)
	body := m.policy.SanitizeBytes(blackfriday.Run([]byte(md)))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.to...)
	msg.SetHeader("Subject", fmt.Sprintf("New Rental Application - %s - %s", propertyName, app.FullName))
	msg.SetBody("text/html", string(body))
	msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	if err := m.send(msg); err != nil {
		return fmt.Errorf("sending application mail for %s: %w", app.FullName, err)
	}
	return nil
}
