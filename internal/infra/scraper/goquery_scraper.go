// Package scraper fetches course pages and extracts their readable content.
package scraper

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	appcfg "github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const (
	defaultFetchTimeout = 15 * time.Second
	defaultMaxBodyBytes = 8 << 20

	// Text shorter than this after whitespace collapsing is treated as
	// decoration rather than content.
	minTextLength = 3

	userAgent = "Mozilla/5.0"
)

// Tags whose subtrees carry no readable page content.
var strippedTags = "script, style, noscript, header, footer, nav"

// Tags whose text is worth keeping.
var contentTags = "h1, h2, h3, h4, h5, h6, p, div, li, a"

var whitespaceRe = regexp.MustCompile(`\s+`)

// goqueryScraper implements service.PageScraper with a bounded HTTP client
// and goquery-based extraction.
type goqueryScraper struct {
	client       *http.Client
	maxBodyBytes int64
}

// NewGoqueryScraper builds the scraper from the application config.
func NewGoqueryScraper(cfg *appcfg.Config) service.PageScraper {
	timeout := defaultFetchTimeout
	maxBody := int64(defaultMaxBodyBytes)
	if cfg.Scraper != nil {
		if cfg.Scraper.FetchTimeout > 0 {
			timeout = cfg.Scraper.FetchTimeout
		}
		if cfg.Scraper.MaxBodyBytes > 0 {
			maxBody = cfg.Scraper.MaxBodyBytes
		}
	}

	return &goqueryScraper{
		client:       &http.Client{Timeout: timeout},
		maxBodyBytes: maxBody,
	}
}

// Scrape fetches the page and returns its meaningful text blocks in document
// order, each tagged with the element it came from.
func (s *goqueryScraper) Scrape(ctx context.Context, url string) (*entity.ScrapedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build scrape request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch page")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, s.maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page")
	}

	return &entity.ScrapedPage{
		URL:     url,
		Content: extractContent(doc),
	}, nil
}

// extractContent strips non-content subtrees and collects the remaining
// meaningful blocks.
func extractContent(doc *goquery.Document) []entity.ScrapedBlock {
	doc.Find(strippedTags).Remove()

	var blocks []entity.ScrapedBlock
	doc.Find(contentTags).Each(func(_ int, sel *goquery.Selection) {
		text := collapseWhitespace(sel.Text())
		if len(text) < minTextLength {
			return
		}
		blocks = append(blocks, entity.ScrapedBlock{
			Tag:  goquery.NodeName(sel),
			Text: text,
		})
	})

	return blocks
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
