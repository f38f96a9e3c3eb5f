package server

// DataResponse wraps successful JSON API answers.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the body of every JSON API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

type ItemSummary struct {
	SectionID string `json:"section_id"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Path      string `json:"path"`
}

type SectionSummary struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Items []ItemSummary `json:"items"`
}

type CatalogResponse struct {
	Sections []SectionSummary `json:"sections"`
	Total    int              `json:"total"`
}

type HeadingResponse struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

type ItemResponse struct {
	SectionID    string            `json:"section_id"`
	SectionTitle string            `json:"section_title"`
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Position     int               `json:"position"`
	Content      string            `json:"content"`
	Headings     []HeadingResponse `json:"headings"`
	Prev         *ItemSummary      `json:"prev"`
	Next         *ItemSummary      `json:"next"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Pages   int    `json:"pages"`
}
