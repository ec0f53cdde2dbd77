package live

import (
	"time"

	"newsportal/pkg/models"
)

const EventArticlePublished = "article.published"

// ArticleEvent is pushed to every live client when an article is stored.
type ArticleEvent struct {
	Type     string    `json:"type"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Language string    `json:"language"`
	Category string    `json:"category"`
	Label    string    `json:"label,omitempty"`
	At       time.Time `json:"at"`
}

func NewArticleEvent(v models.ArticleView, at time.Time) ArticleEvent {
	return ArticleEvent{
		Type:     EventArticlePublished,
		ID:       v.ID,
		Title:    v.Title,
		Language: v.Language,
		Category: v.Category,
		Label:    v.CategoryLabel,
		At:       at.UTC(),
	}
}
