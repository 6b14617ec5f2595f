package scraperapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrRequest = errors.New("request failed")
	ErrParse   = errors.New("invalid response")
	// ErrIncompleteData also matches ErrParse.
	ErrIncompleteData = fmt.Errorf("%w: incomplete data", ErrParse)
	ErrImageDownload  = errors.New("image download failed")
)

const maxBodyBytes = 10 << 20

type Config struct {
	Endpoint  string
	APIKey    string
	Country   string
	TLD       string
	UserAgent string
}

type Product struct {
	ASIN     string
	Name     string
	Pricing  string
	ImageURL string
	Images   []string
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.SugaredLogger
}

func New(cfg Config, httpClient *http.Client, logger *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{cfg: cfg, http: httpClient, logger: logger}
}

// FetchProductData asks the structured endpoint for the product identified by
// asin. An empty country falls back to the configured one.
func (c *Client) FetchProductData(ctx context.Context, asin, country string) (Product, error) {
	if strings.TrimSpace(asin) == "" {
		return Product{}, fmt.Errorf("%w: missing asin", ErrRequest)
	}
	if country == "" {
		country = c.cfg.Country
	}

	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return Product{}, fmt.Errorf("%w: bad endpoint: %v", ErrRequest, err)
	}
	q := u.Query()
	q.Set("api_key", c.cfg.APIKey)
	q.Set("asin", asin)
	q.Set("country", country)
	q.Set("tld", c.cfg.TLD)
	q.Set("autoparse", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Infow("fetching product", "asin", asin, "country", country, "tld", c.cfg.TLD)
	resp, err := c.http.Do(req)
	if err != nil {
		// The URL carries the API key; report the host only.
		return Product{}, fmt.Errorf("%w: GET %s: %v", ErrRequest, u.Host, unwrapURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Product{}, fmt.Errorf("%w: read body: %v", ErrRequest, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return Product{}, fmt.Errorf("%w: unexpected status %s: %s", ErrRequest, resp.Status, snippet(body))
	}

	out, err := decodeProduct(body)
	if err != nil {
		c.logger.Warnw("product response rejected", "asin", asin, "err", err)
		return Product{}, err
	}

	return Product{
		ASIN:     asin,
		Name:     out.Name,
		Pricing:  string(out.Pricing),
		ImageURL: out.Images[0],
		Images:   out.Images,
	}, nil
}

func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
