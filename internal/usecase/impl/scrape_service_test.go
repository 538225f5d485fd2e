package impl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"
	mockService "github.com/drbearcub/jw-deployable-app/internal/mocks/service"
	"github.com/drbearcub/jw-deployable-app/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scrapeServiceFixtures holds all test dependencies for scrape service tests.
type scrapeServiceFixtures struct {
	service  usecase.ScrapeUsecase
	scraper  *mockService.MockPageScraper
	renderer *mockService.MockPDFRenderer
}

func createTestScrapeService(t *testing.T) scrapeServiceFixtures {
	scraper := mockService.NewMockPageScraper(t)
	renderer := mockService.NewMockPDFRenderer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewScrapeService(ScrapeServiceParams{
		Scraper:  scraper,
		Renderer: renderer,
		Config: &config.Config{
			Scraper: &config.ScraperConfig{OutputDir: t.TempDir()},
		},
		Logger: logger,
	})

	return scrapeServiceFixtures{
		service:  svc,
		scraper:  scraper,
		renderer: renderer,
	}
}

func TestScrapeService_ScrapeAndRender_Success(t *testing.T) {
	fx := createTestScrapeService(t)

	page := &entity.ScrapedPage{
		URL:     "https://example.edu/syllabus",
		Content: []entity.ScrapedBlock{{Tag: "h1", Text: "Syllabus"}},
	}

	fx.scraper.EXPECT().Scrape(mock.Anything, page.URL).Return(page, nil)
	fx.renderer.EXPECT().
		Render(page, mock.Anything).
		Run(func(p *entity.ScrapedPage, w io.Writer) {
			_, _ = w.Write([]byte("%PDF-1.4 test"))
		}).
		Return(nil)

	output, err := fx.service.ScrapeAndRender(context.Background(), page.URL)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(output.PDFPath, ".pdf"))

	written, err := os.ReadFile(output.PDFPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(written))
}

func TestScrapeService_ScrapeAndRender_DistinctPathsPerRequest(t *testing.T) {
	fx := createTestScrapeService(t)

	page := &entity.ScrapedPage{URL: "https://example.edu/syllabus"}

	fx.scraper.EXPECT().Scrape(mock.Anything, page.URL).Return(page, nil).Twice()
	fx.renderer.EXPECT().Render(page, mock.Anything).Return(nil).Twice()

	first, err := fx.service.ScrapeAndRender(context.Background(), page.URL)
	require.NoError(t, err)
	second, err := fx.service.ScrapeAndRender(context.Background(), page.URL)
	require.NoError(t, err)

	assert.NotEqual(t, first.PDFPath, second.PDFPath)
}

func TestScrapeService_ScrapeAndRender_FetchFailure(t *testing.T) {
	fx := createTestScrapeService(t)

	fx.scraper.EXPECT().
		Scrape(mock.Anything, "https://example.edu/down").
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.ScrapeAndRender(context.Background(), "https://example.edu/down")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrScrapeFailed)
}

func TestScrapeService_ScrapeAndRender_RenderFailureCleansUp(t *testing.T) {
	fx := createTestScrapeService(t)

	page := &entity.ScrapedPage{URL: "https://example.edu/syllabus"}

	fx.scraper.EXPECT().Scrape(mock.Anything, page.URL).Return(page, nil)
	fx.renderer.EXPECT().Render(page, mock.Anything).Return(errors.New("render exploded"))

	output, err := fx.service.ScrapeAndRender(context.Background(), page.URL)

	assert.Nil(t, output)
	assert.Error(t, err)
}
