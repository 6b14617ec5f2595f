package render

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"amazon-price-tracker/internal/resolver"
	"amazon-price-tracker/internal/scraperapi"
)

func init() {
	color.NoColor = true
}

func TestProduct(t *testing.T) {
	var buf bytes.Buffer
	Product(&buf, ProductView{ASIN: "B08N5WRWNW", Name: "Widget", Pricing: "₹999", ImageURL: "http://x/img.jpg"})

	assert.Equal(t,
		"ASIN:  B08N5WRWNW\nName:  Widget\nPrice: ₹999\nImage: http://x/img.jpg\n",
		buf.String())
}

func TestErr_PrefixesMessage(t *testing.T) {
	var buf bytes.Buffer
	Err(&buf, fmt.Errorf("wrap: %w", resolver.ErrASINNotFound))
	assert.Equal(t, "Error: Failed to extract ASIN from given URL\n", buf.String())
}

func TestMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{resolver.ErrRequest, "Failed to follow the short link"},
		{fmt.Errorf("%w: missing pricing", scraperapi.ErrIncompleteData), "incomplete data"},
		{fmt.Errorf("%w: eof", scraperapi.ErrParse), "Failed to parse"},
		{fmt.Errorf("%w: 500", scraperapi.ErrRequest), "Failed to fetch product data"},
		{errors.New("boom"), "boom"},
	}
	for _, tc := range cases {
		assert.Contains(t, Message(tc.err), tc.want)
	}
	assert.Empty(t, Message(nil))
}

func TestMessage_InvalidDomain(t *testing.T) {
	assert.Equal(t, "The domain name is not valid.",
		Message(fmt.Errorf("%w: unsupported host %q", resolver.ErrInvalidDomain, "www.ebay.com")))
	assert.Equal(t, "Please enter a valid URL with a domain name.",
		Message(fmt.Errorf("%w: %q", resolver.ErrMalformedURL, "amazon")))
}

func TestWarnAndSaved(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "image download failed")
	Saved(&buf, "product_image.jpg", 42)

	assert.Equal(t,
		"Warning: image download failed\nSaved: product image written to product_image.jpg (42 bytes)\n",
		buf.String())
}
