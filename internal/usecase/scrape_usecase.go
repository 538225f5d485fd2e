package usecase

import "context"

// ScrapeOutput describes the generated summary document.
type ScrapeOutput struct {
	PDFPath string `json:"pdf_path"`
}

// ScrapeUsecase turns a public course page into a printable PDF summary.
type ScrapeUsecase interface {
	ScrapeAndRender(ctx context.Context, url string) (*ScrapeOutput, error)
}
