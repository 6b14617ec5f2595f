package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Domain is the host label immediately before the top-level suffix,
// e.g. "amazon" for www.amazon.in and "amzn" for amzn.to.
type Domain string

const (
	Amazon    Domain = "amazon"
	ShortLink Domain = "amzn"
)

var (
	ErrInvalidDomain = errors.New("invalid domain")
	ErrASINNotFound  = errors.New("asin not found")
	ErrRequest       = errors.New("redirect request failed")

	// ErrMalformedURL is an ErrInvalidDomain where no host could be isolated.
	ErrMalformedURL = fmt.Errorf("%w: malformed URL", ErrInvalidDomain)
)

var asinRE = regexp.MustCompile(`/([A-Z0-9]{10})(?:[/?]|$)`)

type Config struct {
	// Direct is the label of full product URLs; ShortLink is the label of
	// links that must be followed before an ASIN can be read.
	Direct    Domain
	ShortLink Domain
	UserAgent string
}

func DefaultConfig() Config {
	return Config{Direct: Amazon, ShortLink: ShortLink}
}

type Resolver struct {
	cfg    Config
	client *http.Client
	logger *zap.SugaredLogger
}

// Resolution is the outcome of a successful Resolve.
type Resolution struct {
	Domain      Domain
	ResolvedURL string
	ASIN        string
}

func New(cfg Config, client *http.Client, logger *zap.SugaredLogger) *Resolver {
	if cfg.Direct == "" {
		cfg.Direct = Amazon
	}
	if cfg.ShortLink == "" {
		cfg.ShortLink = ShortLink
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resolver{cfg: cfg, client: client, logger: logger}
}

// ValidateDomain returns the Amazon-family label of rawURL's host.
func (r *Resolver) ValidateDomain(rawURL string) (Domain, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, rawURL)
	}

	labels := strings.Split(u.Hostname(), ".")
	if len(labels) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, rawURL)
	}

	switch d := Domain(labels[len(labels)-2]); d {
	case r.cfg.Direct, r.cfg.ShortLink:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unsupported host %q", ErrInvalidDomain, u.Hostname())
	}
}

// ExtractASIN returns the first 10-character uppercase alphanumeric path
// segment of rawURL that is followed by "/", "?" or the end of the string.
func ExtractASIN(rawURL string) (string, bool) {
	m := asinRE.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

// ResolveASIN derives the ASIN of rawURL. Short links are followed to their
// final location first.
func (r *Resolver) ResolveASIN(ctx context.Context, rawURL string, domain Domain) (string, error) {
	target, err := r.productURL(ctx, rawURL, domain)
	if err != nil {
		return "", err
	}
	return asinOf(target)
}

// Resolve validates rawURL and resolves its ASIN.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (Resolution, error) {
	domain, err := r.ValidateDomain(rawURL)
	if err != nil {
		return Resolution{}, err
	}

	target, err := r.productURL(ctx, rawURL, domain)
	if err != nil {
		return Resolution{Domain: domain}, err
	}
	asin, err := asinOf(target)
	if err != nil {
		return Resolution{Domain: domain, ResolvedURL: target}, err
	}
	return Resolution{Domain: domain, ResolvedURL: target, ASIN: asin}, nil
}

func (r *Resolver) productURL(ctx context.Context, rawURL string, domain Domain) (string, error) {
	target := strings.TrimSpace(rawURL)
	switch domain {
	case r.cfg.Direct:
		return target, nil
	case r.cfg.ShortLink:
		final, err := r.followRedirects(ctx, target)
		if err != nil {
			return "", err
		}
		r.logger.Debugw("short link resolved", "from", target, "to", final)
		return final, nil
	default:
		return "", fmt.Errorf("%w: unsupported domain %q", ErrInvalidDomain, domain)
	}
}

func asinOf(target string) (string, error) {
	asin, ok := ExtractASIN(target)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrASINNotFound, target)
	}
	return asin, nil
}

// followRedirects issues a GET and returns the URL of the last hop. The status
// of the final response is not checked: only its location matters.
func (r *Resolver) followRedirects(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequest, err)
	}
	if r.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", r.cfg.UserAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	return resp.Request.URL.String(), nil
}
