package pdf

import (
	"bytes"
	"testing"

	"github.com/drbearcub/jw-deployable-app/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesPDF(t *testing.T) {
	page := &entity.ScrapedPage{
		URL: "https://example.edu/syllabus",
		Content: []entity.ScrapedBlock{
			{Tag: "h1", Text: "Course Overview"},
			{Tag: "h2", Text: "Grading"},
			{Tag: "p", Text: "Homework counts for 40 percent of the grade."},
			{Tag: "li", Text: "Week 1: Introduction"},
			{Tag: "a", Text: "Piazza forum"},
		},
	}

	var buf bytes.Buffer
	err := NewFpdfRenderer().Render(page, &buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRender_EmptyContent(t *testing.T) {
	page := &entity.ScrapedPage{URL: "https://example.edu/empty"}

	var buf bytes.Buffer
	err := NewFpdfRenderer().Render(page, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
