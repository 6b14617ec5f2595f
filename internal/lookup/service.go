package lookup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"amazon-price-tracker/internal/pkg/render"
	"amazon-price-tracker/internal/resolver"
	"amazon-price-tracker/internal/scraperapi"
)

const PromptText = "Enter the URL of the product to track its price: "

var ErrEmptyInput = errors.New("no URL entered")

type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (resolver.Resolution, error)
}

type Fetcher interface {
	FetchProductData(ctx context.Context, asin, country string) (scraperapi.Product, error)
	FetchAndSaveImage(ctx context.Context, imageURL, dest string) (int64, error)
}

type Options struct {
	Country   string
	ImagePath string
}

type Service struct {
	resolver Resolver
	fetcher  Fetcher
	opts     Options
	logger   *zap.SugaredLogger
}

// Result describes one completed lookup.
type Result struct {
	RunID      string
	Resolution resolver.Resolution
	Product    scraperapi.Product
	ImagePath  string
	ImageBytes int64
	// ImageErr is set when the product was found but its image could not be
	// saved. It never fails the run.
	ImageErr error
}

func NewService(r Resolver, f Fetcher, opts Options, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{resolver: r, fetcher: f, opts: opts, logger: logger}
}

// Prompt asks for the product URL on w and reads a single line from in.
func (s *Service) Prompt(in io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, PromptText)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrEmptyInput
	}
	return line, nil
}

// Run resolves rawURL, fetches the product, renders it to w and saves its
// image.
func (s *Service) Run(ctx context.Context, rawURL string, w io.Writer) (Result, error) {
	res := Result{RunID: uuid.NewString(), ImagePath: s.opts.ImagePath}
	log := s.logger.With("run_id", res.RunID)

	resolution, err := s.resolver.Resolve(ctx, rawURL)
	if err != nil {
		log.Warnw("resolve failed", "url", rawURL, "err", err)
		return res, err
	}
	res.Resolution = resolution
	log.Infow("asin resolved", "domain", resolution.Domain, "asin", resolution.ASIN)

	product, err := s.fetcher.FetchProductData(ctx, resolution.ASIN, s.opts.Country)
	if err != nil {
		log.Warnw("fetch product failed", "asin", resolution.ASIN, "err", err)
		return res, err
	}
	res.Product = product

	render.Product(w, render.ProductView{
		ASIN:     product.ASIN,
		Name:     product.Name,
		Pricing:  product.Pricing,
		ImageURL: product.ImageURL,
	})

	n, err := s.fetcher.FetchAndSaveImage(ctx, product.ImageURL, s.opts.ImagePath)
	if err != nil {
		log.Warnw("image download failed", "image_url", product.ImageURL, "err", err)
		res.ImageErr = err
		render.Warn(w, fmt.Sprintf("could not save product image: %v", err))
		return res, nil
	}
	res.ImageBytes = n
	render.Saved(w, s.opts.ImagePath, n)
	return res, nil
}
