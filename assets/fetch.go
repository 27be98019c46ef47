// Package assets resolves the byte buffers a render needs — logo, uploaded
// document images, font files — before the layout engine runs. The engine
// is deliberately free of I/O, so everything here happens up front and
// every failure degrades to a nil buffer instead of an error.
package assets

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/plaxsys/rentapp/appform"
)

// DefaultLogoURL is the organization logo embedded in every application.
const DefaultLogoURL = "https://plaxweb.com/assets/images/kco.png"

const maxImageBytes = 10 << 20

// Fetcher resolves image and font buffers. Remote fetches are cached so the
// logo is not re-downloaded for every application.
type Fetcher struct {
	UploadsDir  string
	FontDir     string
	LogoURL     string
	client      *http.Client
	remoteCache *cache.Cache
}

func NewFetcher(uploadsDir, fontDir string) *Fetcher {
	return &Fetcher{
		UploadsDir:  uploadsDir,
		FontDir:     fontDir,
		LogoURL:     DefaultLogoURL,
		client:      &http.Client{Timeout: 15 * time.Second},
		remoteCache: cache.New(24*time.Hour, 1*time.Hour),
	}
}

// Resolve gathers every buffer one render of app needs. Individual assets
// that cannot be resolved come back nil; the engine renders around them.
func (f *Fetcher) Resolve(app appform.Application) appform.Assets {
	bold, regular := f.Fonts()
	return appform.Assets{
		Logo:        f.Image(f.LogoURL),
		IDDocument:  f.imageIfSet(app.IDDocumentURL),
		IncomeProof: f.imageIfSet(app.IncomeProofURL),
		BoldFont:    bold,
		RegularFont: regular,
	}
}

func (f *Fetcher) imageIfSet(url string) []byte {
	if url == "" {
		return nil
	}
	return f.Image(url)
}

// Image fetches one image. Local uploads ("/uploads/...") are read from the
// uploads directory; anything else is fetched over HTTP(S). Any failure —
// missing file, non-200, network error — returns nil.
func (f *Fetcher) Image(url string) []byte {
	if url == "" {
		return nil
	}

	if name, ok := strings.CutPrefix(url, "/uploads/"); ok {
		buf, err := os.ReadFile(filepath.Join(f.UploadsDir, filepath.Base(name)))
		if err != nil {
			log.Printf("uploaded image %s unavailable: %v", url, err)
			return nil
		}
		return buf
	}

	if buf, found := f.remoteCache.Get(url); found {
		return buf.([]byte)
	}

	resp, err := f.client.Get(url)
	if err != nil {
		log.Printf("fetching image %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("fetching image %s: status %d", url, resp.StatusCode)
		return nil
	}

	buf, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		log.Printf("reading image %s: %v", url, err)
		return nil
	}

	f.remoteCache.Set(url, buf, cache.DefaultExpiration)
	return buf
}

// Fonts loads the Montserrat faces from the font directory. Missing files
// return nil and the engine falls back to its built-in styles.
func (f *Fetcher) Fonts() (bold, regular []byte) {
	if f.FontDir == "" {
		return nil, nil
	}
	bold, err := os.ReadFile(filepath.Join(f.FontDir, "Montserrat-Bold.ttf"))
	if err != nil {
		bold = nil
	}
	regular, err = os.ReadFile(filepath.Join(f.FontDir, "Montserrat-Regular.ttf"))
	if err != nil {
		regular = nil
	}
	return bold, regular
}
