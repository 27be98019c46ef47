// Command rentapp renders a rental application record from a JSON file
// into a PDF, using the same engine the intake service runs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/plaxsys/rentapp/appform"
	"github.com/plaxsys/rentapp/assets"
)

var (
	in      = flag.String("in", "application.json", "JSON file holding the application record")
	out     = flag.String("out", "rental-application.pdf", "path of the PDF to write")
	uploads = flag.String("uploads", "uploads", "directory holding locally uploaded document images")
	fontDir = flag.String("fonts", "fonts", "directory holding the Montserrat font files")
	logoURL = flag.String("logo", assets.DefaultLogoURL, "logo image URL (empty to skip the logo)")
	baseURL = flag.String("base-url", "", "public base URL for links to uploaded documents")
)

func main() {
	flag.Parse()

	raw, err := os.ReadFile(*in)
	if err != nil {
		fmt.Printf("Error reading application file: %v\n", err)
		os.Exit(1)
	}
	var app appform.Application
	if err := json.Unmarshal(raw, &app); err != nil {
		fmt.Printf("Error parsing application file: %v\n", err)
		os.Exit(1)
	}

	fetcher := assets.NewFetcher(*uploads, *fontDir)
	fetcher.LogoURL = *logoURL

	pdf, err := appform.Render(app, fetcher.Resolve(app), appform.Options{PublicBaseURL: *baseURL})
	if err != nil {
		fmt.Printf("Error rendering application: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		fmt.Printf("Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *out, len(pdf))
}
