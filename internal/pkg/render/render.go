package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"amazon-price-tracker/internal/resolver"
	"amazon-price-tracker/internal/scraperapi"
)

var (
	errLabel   = color.New(color.FgRed, color.Bold)
	warnLabel  = color.New(color.FgYellow)
	fieldLabel = color.New(color.FgCyan)
	okLabel    = color.New(color.FgGreen)
)

type ProductView struct {
	ASIN     string
	Name     string
	Pricing  string
	ImageURL string
}

func Product(w io.Writer, p ProductView) {
	field(w, "ASIN", p.ASIN)
	field(w, "Name", p.Name)
	field(w, "Price", p.Pricing)
	field(w, "Image", p.ImageURL)
}

func Saved(w io.Writer, path string, n int64) {
	okLabel.Fprint(w, "Saved: ")
	fmt.Fprintf(w, "product image written to %s (%d bytes)\n", path, n)
}

func Warn(w io.Writer, msg string) {
	warnLabel.Fprint(w, "Warning: ")
	fmt.Fprintln(w, msg)
}

func Err(w io.Writer, err error) {
	errLabel.Fprint(w, "Error: ")
	fmt.Fprintln(w, Message(err))
}

// Message maps known error kinds to a user-facing sentence and falls back to
// the error text.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, resolver.ErrMalformedURL):
		return "Please enter a valid URL with a domain name."
	case errors.Is(err, resolver.ErrInvalidDomain):
		return "The domain name is not valid."
	case errors.Is(err, resolver.ErrASINNotFound):
		return "Failed to extract ASIN from given URL"
	case errors.Is(err, resolver.ErrRequest):
		return "Failed to follow the short link: " + err.Error()
	case errors.Is(err, scraperapi.ErrIncompleteData):
		return "The scraper API returned incomplete data: " + err.Error()
	case errors.Is(err, scraperapi.ErrParse):
		return "Failed to parse the scraper API response: " + err.Error()
	case errors.Is(err, scraperapi.ErrRequest):
		return "Failed to fetch product data: " + err.Error()
	default:
		return err.Error()
	}
}

func field(w io.Writer, label, value string) {
	fieldLabel.Fprintf(w, "%-6s ", label+":")
	fmt.Fprintln(w, value)
}
