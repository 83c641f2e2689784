package models

import "time"

// User represents a registered account.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	Email        string    `json:"email" validate:"required,email,max=100"`
	PasswordHash string    `json:"-" validate:"required"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post represents a blog post with comments.
type Post struct {
	ID         int        `json:"id" validate:"gte=0"`
	AuthorID   int        `json:"author_id" validate:"gte=0"`
	AuthorName string     `json:"author_name"`
	Title      string     `json:"title" validate:"required,min=3,max=200"`
	Subtitle   string     `json:"subtitle" validate:"max=300"`
	Body       string     `json:"body" validate:"required,min=10"`
	ImageURL   string     `json:"image_url" validate:"omitempty,url"`
	CreatedAt  time.Time  `json:"created_at"`
	Comments   []*Comment `json:"comments,omitempty" validate:"-"`
}

// Comment represents a comment on a blog post. AvatarURL is the
// author's gravatar, denormalized at creation like AuthorName.
type Comment struct {
	ID         int       `json:"id" validate:"gte=0"`
	PostID     int       `json:"post_id" validate:"required,gte=1"`
	AuthorID   int       `json:"author_id" validate:"required,gte=1"`
	AuthorName string    `json:"author_name"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Content    string    `json:"content" validate:"required,min=1,max=1000"`
	CreatedAt  time.Time `json:"created_at"`
	Post       *Post     `json:"-" validate:"-"`
}

// SearchTerm is a counted search query. UserID 0 addresses the
// site-wide aggregate.
type SearchTerm struct {
	Term   string `json:"term"`
	Count  int    `json:"count"`
	UserID int    `json:"user_id,omitempty"`
}

// Article is a single news article returned by the news API.
type Article struct {
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
}
