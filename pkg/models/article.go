package models

import "time"

// Source is the feed or outlet an article came from.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Article is the stored form of a news article. Category and Categories hold
// whatever the producer wrote: a slug, a label or an opaque category reference.
// None of them is trusted to be the display category.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	Content     string    `json:"content,omitempty"`
	Language    string    `json:"language"`
	Category    string    `json:"category,omitempty"`
	Categories  []string  `json:"categories"`
	Source      Source    `json:"source"`
	URL         string    `json:"url,omitempty"`
	Tags        []string  `json:"tags"`
	ViewCount   int       `json:"view_count"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArticleView is an article as served to readers. Category shadows the
// stored value with the resolved display category.
type ArticleView struct {
	Article
	StoredCategory string `json:"stored_category,omitempty"`
	Category       string `json:"category"`
	CategoryLabel  string `json:"category_label,omitempty"`
	ResolvedBy     string `json:"resolved_by"`
}

// ListResult is one page of a listing.
type ListResult struct {
	Items       []ArticleView `json:"items"`
	Total       int           `json:"total"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	Path        string        `json:"path"`
	Approximate bool          `json:"approximate"`
}
