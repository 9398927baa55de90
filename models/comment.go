package models

import (
	"time"
)

type Comment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PostID          uint      `json:"post_id" gorm:"not null;index"`
	Post            Post      `json:"-" gorm:"foreignKey:PostID"`
	AuthorID        uint      `json:"author_id" gorm:"not null"`
	Author          User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Content         string    `json:"content" gorm:"type:text;not null"`
	ParentCommentID *uint     `json:"parent_comment_id" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	PostID        string `json:"postId"`
	Content       string `json:"content"`
	ParentComment string `json:"parentComment"`
}

// CommentView is a comment annotated for a particular viewer. On top-level
// comments Replies is always a list, empty when there are none; on the
// replies themselves it stays null since the thread is only two levels deep.
type CommentView struct {
	ID              uint          `json:"id"`
	PostID          uint          `json:"post_id"`
	AuthorID        uint          `json:"author_id"`
	AuthorName      string        `json:"author_name"`
	Content         string        `json:"content"`
	ParentCommentID *uint         `json:"parent_comment_id"`
	CreatedAt       time.Time     `json:"created_at"`
	IsDeletable     bool          `json:"isDeletable"`
	IsEditable      bool          `json:"isEditable"`
	Replies         []CommentView `json:"replies"`
}
