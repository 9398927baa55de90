package models

import (
	"time"
)

// Post lifecycle statuses. A post is a draft until its owner publishes it;
// trashing parks it for the 30-day purge window instead of deleting outright.
const (
	StatusPublished = 1
	StatusDraft     = 2
	StatusTrashed   = 3
)

type Post struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title"`
	Content      string     `json:"content" gorm:"type:text"`
	Image        string     `json:"image"`
	AuthorID     uint       `json:"author_id" gorm:"not null;index"`
	Author       User       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Status       int        `json:"status" gorm:"default:2"`
	PublishedOn  *time.Time `json:"published_on"`
	TrashDate    *time.Time `json:"trash_date"`
	Views        int64      `json:"views" gorm:"default:0"`
	CommentCount int64      `json:"comment_count" gorm:"default:0"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UpdatePostRequest carries a partial content patch. Empty fields are left
// untouched; there is no way to clear a field back to "".
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

type UpdateStatusRequest struct {
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

// StatusCount aggregates a user's posts per lifecycle status. Only computed
// for the first page of a listing.
type StatusCount struct {
	Publish int64 `json:"publish"`
	Draft   int64 `json:"draft"`
	Thrash  int64 `json:"thrash"`
	All     int64 `json:"all"`
}

// PostSummary is the owner-facing projection returned by the single-post
// lookup: just enough to populate the editor.
type PostSummary struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Status  int    `json:"status"`
}

// PublicPost is the read-only projection served to unauthenticated viewers.
type PublicPost struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name"`
}
