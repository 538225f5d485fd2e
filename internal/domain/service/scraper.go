package service

import (
	"context"
	"io"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
)

// PageScraper fetches a web page and extracts its meaningful content.
type PageScraper interface {
	Scrape(ctx context.Context, url string) (*entity.ScrapedPage, error)
}

// PDFRenderer renders a scraped page into a PDF document.
type PDFRenderer interface {
	Render(page *entity.ScrapedPage, w io.Writer) error
}
