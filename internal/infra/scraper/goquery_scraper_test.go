package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appcfg "github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html>
<head><title>CS 6750</title><script>var tracked = true;</script></head>
<body>
<nav><a href="/home">Home</a></nav>
<header><h1>Site banner</h1></header>
<h1>Course   Syllabus</h1>
<p>Welcome to the
course.</p>
<ul><li>Week 1: Intro</li><li>ok</li></ul>
<footer><p>Copyright 2026</p></footer>
<style>p { color: red }</style>
</body>
</html>`

func newTestScraper() *goqueryScraper {
	s := NewGoqueryScraper(&appcfg.Config{
		Scraper: &appcfg.ScraperConfig{FetchTimeout: 5 * time.Second},
	})
	return s.(*goqueryScraper)
}

func TestScrape_ExtractsMeaningfulBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer server.Close()

	page, err := newTestScraper().Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, server.URL, page.URL)
	assert.Equal(t, []entity.ScrapedBlock{
		{Tag: "h1", Text: "Course Syllabus"},
		{Tag: "p", Text: "Welcome to the course."},
		{Tag: "li", Text: "Week 1: Intro"},
	}, page.Content)
}

func TestScrape_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestScraper().Scrape(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestScrape_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(samplePage))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestScraper().Scrape(ctx, server.URL)
	assert.Error(t, err)
}
