package impl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/drbearcub/jw-deployable-app/config"
	deliverycontext "github.com/drbearcub/jw-deployable-app/internal/delivery/context"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"
	"github.com/drbearcub/jw-deployable-app/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scrapeService implements the ScrapeUsecase interface.
type scrapeService struct {
	scraper   service.PageScraper
	renderer  service.PDFRenderer
	outputDir string
	logger    *slog.Logger
}

// ScrapeServiceParams holds dependencies for ScrapeService, injected by Fx.
type ScrapeServiceParams struct {
	fx.In

	Scraper  service.PageScraper
	Renderer service.PDFRenderer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewScrapeService is the constructor for scrapeService.
func NewScrapeService(params ScrapeServiceParams) usecase.ScrapeUsecase {
	outputDir := os.TempDir()
	if params.Config != nil && params.Config.Scraper != nil && params.Config.Scraper.OutputDir != "" {
		outputDir = params.Config.Scraper.OutputDir
	}

	return &scrapeService{
		scraper:   params.Scraper,
		renderer:  params.Renderer,
		outputDir: outputDir,
		logger:    params.Logger,
	}
}

func (srv *scrapeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ScrapeAndRender fetches the page, extracts its readable content, and writes
// a sectioned PDF summary. Each invocation writes a fresh file so concurrent
// requests never collide.
func (srv *scrapeService) ScrapeAndRender(ctx context.Context, url string) (*usecase.ScrapeOutput, error) {
	started := time.Now()

	page, err := srv.scraper.Scrape(ctx, url)
	if err != nil {
		srv.log(ctx).Warn("Scrape failed", slog.String("url", url), slog.Any("error", err))

		return nil, domainerrors.ErrScrapeFailed
	}

	pdfPath := filepath.Join(srv.outputDir, "scraped_summary_"+uuid.New().String()+".pdf")

	file, err := os.Create(pdfPath)
	if err != nil {
		srv.log(ctx).Error("Failed to create output file", slog.String("path", pdfPath), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to create output file")
	}

	if err := srv.renderer.Render(page, file); err != nil {
		_ = file.Close()
		_ = os.Remove(pdfPath)

		srv.log(ctx).Error("Failed to render pdf", slog.String("url", url), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to render pdf")
	}

	if err := file.Close(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to finalize pdf")
	}

	size := int64(0)
	if info, err := os.Stat(pdfPath); err == nil {
		size = info.Size()
	}

	srv.log(ctx).Info("Scrape summary generated",
		slog.String("url", url),
		slog.String("path", pdfPath),
		slog.String("size", util.FormatBytes(size)),
		slog.String("elapsed", util.FormatDuration(time.Since(started))))

	return &usecase.ScrapeOutput{PDFPath: pdfPath}, nil
}
