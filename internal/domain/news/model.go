package news

import (
	"fmt"
	"time"
)

// Article is a news item; unpublished articles never appear on the
// public listing.
type Article struct {
	ID          string
	Title       string
	Content     string
	Excerpt     string
	Author      string
	Image       string
	PublishedAt string
	IsPublished bool
	CreatedAt   time.Time
}

func (a Article) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("news id is required")
	}
	if a.Title == "" {
		return fmt.Errorf("news title is required")
	}
	if a.Content == "" {
		return fmt.Errorf("news content is required")
	}
	if a.Author == "" {
		return fmt.Errorf("news author is required")
	}

	return nil
}
