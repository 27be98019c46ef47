// Command rentappd runs the rental-application intake service.
package main

import (
	"flag"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plaxsys/rentapp/appform"
	"github.com/plaxsys/rentapp/assets"
	"github.com/plaxsys/rentapp/mail"
	"github.com/plaxsys/rentapp/srv"
	"github.com/plaxsys/rentapp/srv/util"
)

var configPath = flag.String("config", "rentapp.yaml", "service configuration file")

// Config is the daemon's YAML configuration. SMTP settings left empty in
// the file fall back to the SMTP_* environment variables.
type Config struct {
	Listen        string      `yaml:"listen"`
	UploadsDir    string      `yaml:"uploads_dir"`
	FontDir       string      `yaml:"font_dir"`
	LogoURL       string      `yaml:"logo_url"`
	PublicBaseURL string      `yaml:"public_base_url"`
	Recipients    []string    `yaml:"recipients"`
	SMTP          mail.Config `yaml:"smtp"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{
		Listen:     ":8080",
		UploadsDir: "uploads",
		FontDir:    "fonts",
		LogoURL:    assets.DefaultLogoURL,
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		util.ErrorLogger.Fatalf("loading config %s: %v", *configPath, err)
	}
	if cfg.SMTP.Host == "" {
		cfg.SMTP = mail.ConfigFromEnv()
	}

	fetcher := assets.NewFetcher(cfg.UploadsDir, cfg.FontDir)
	fetcher.LogoURL = cfg.LogoURL

	mailer := mail.New(cfg.SMTP, cfg.Recipients)
	if !mailer.Enabled() {
		util.InfoLogger.Printf("SMTP not configured - applications will be rendered but not mailed")
	}

	server := srv.New(fetcher, mailer, appform.Options{PublicBaseURL: cfg.PublicBaseURL})

	util.InfoLogger.Printf("Server starting on %s", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, server); err != nil {
		util.ErrorLogger.Fatal(err)
	}
}
