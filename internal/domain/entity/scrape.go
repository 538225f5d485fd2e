package entity

// ScrapedPage is the structured extraction of a web page, the intermediate
// form between scraping and PDF rendering.
type ScrapedPage struct {
	URL     string         `json:"url"`
	Content []ScrapedBlock `json:"extracted_content"`
}

// ScrapedBlock is one meaningful piece of page content, tagged with the
// HTML element it came from so the renderer can pick typography.
type ScrapedBlock struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}
