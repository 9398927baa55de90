package services

import (
	"errors"
	"log"

	"quill/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// PublicView is the anonymous read model for a published post page: the post
// itself plus its two-level comment thread, annotated per viewer.
type PublicView struct {
	Post     *models.PublicPost   `json:"post"`
	Comments []models.CommentView `json:"comments"`
}

// GetPublicView assembles the public post page. viewerID is optional (0 =
// anonymous); when present it drives the per-comment permission flags. The
// view counter is bumped in the background, the response never waits on it.
func (s *CommentService) GetPublicView(postID, viewerID uint) (*PublicView, error) {
	// The permission flags key off two different facts about the viewer: the
	// raw id for deletability, and whether an account actually exists for it
	// for editability. Both are resolved up front.
	viewerExists := false
	if viewerID != 0 {
		var viewer models.User
		if err := s.db.First(&viewer, viewerID).Error; err == nil {
			viewerExists = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var post models.Post
	err := s.db.Preload("Author").First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var topLevel []models.Comment
	err = s.db.Preload("Author").
		Where("post_id = ? AND parent_comment_id IS NULL", postID).
		Order("created_at DESC").
		Find(&topLevel).Error
	if err != nil {
		return nil, err
	}

	// Replies are fetched in one pass for every parent on the page, then
	// partitioned, rather than one query per thread.
	parentIDs := make([]uint, 0, len(topLevel))
	for _, c := range topLevel {
		parentIDs = append(parentIDs, c.ID)
	}

	var replies []models.Comment
	if len(parentIDs) > 0 {
		err = s.db.Preload("Author").
			Where("parent_comment_id IN ?", parentIDs).
			Order("created_at ASC").
			Find(&replies).Error
		if err != nil {
			return nil, err
		}
	}

	repliesByParent := make(map[uint][]models.CommentView, len(parentIDs))
	for _, reply := range replies {
		view := s.annotate(&reply, viewerID, post.AuthorID)
		repliesByParent[*reply.ParentCommentID] = append(repliesByParent[*reply.ParentCommentID], view)
	}

	comments := make([]models.CommentView, 0, len(topLevel))
	for _, comment := range topLevel {
		view := s.annotate(&comment, viewerID, post.AuthorID)
		// Editability only ever lights up on top-level comments, and only
		// when the supplied viewer id resolved to a real account.
		view.IsEditable = viewerExists
		view.Replies = repliesByParent[comment.ID]
		if view.Replies == nil {
			view.Replies = []models.CommentView{}
		}
		comments = append(comments, view)
	}

	go s.incrementViews(postID)

	return &PublicView{
		Post: &models.PublicPost{
			ID:         post.ID,
			Title:      post.Title,
			Content:    post.Content,
			Image:      post.Image,
			AuthorID:   post.AuthorID,
			AuthorName: post.Author.Username,
		},
		Comments: comments,
	}, nil
}

// annotate maps a stored comment to its viewer-specific projection. A
// comment is deletable by its author and by the post's owner; anonymous
// viewers can delete nothing.
func (s *CommentService) annotate(comment *models.Comment, viewerID, postAuthorID uint) models.CommentView {
	isDeletable := viewerID != 0 &&
		(comment.AuthorID == viewerID || postAuthorID == viewerID)

	return models.CommentView{
		ID:              comment.ID,
		PostID:          comment.PostID,
		AuthorID:        comment.AuthorID,
		AuthorName:      comment.Author.Username,
		Content:         comment.Content,
		ParentCommentID: comment.ParentCommentID,
		CreatedAt:       comment.CreatedAt,
		IsDeletable:     isDeletable,
	}
}

func (s *CommentService) incrementViews(postID uint) {
	err := s.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		log.Printf("Failed to increment views for post %d: %v", postID, err)
	}
}

// AddComment creates a comment (or a reply, when parentID is non-nil) and
// bumps the post's comment counter. The counter update is a separate write:
// a crash in between leaves the count off by one.
func (s *CommentService) AddComment(postID, authorID uint, content string, parentID *uint) (*models.CommentView, error) {
	if content == "" {
		return nil, ErrBadRequest
	}

	comment := &models.Comment{
		PostID:          postID,
		AuthorID:        authorID,
		Content:         content,
		ParentCommentID: parentID,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	err := s.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}

	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		return nil, err
	}
	comment.Author = author

	view := s.annotate(comment, 0, 0)
	return &view, nil
}

// DeleteComment removes a comment and its direct replies, then walks the
// post's comment counter back by the number of rows that went away. Only the
// comment's author and the post's owner may delete.
func (s *CommentService) DeleteComment(commentID, requesterID uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadRequest
		}
		return err
	}

	var post models.Post
	if err := s.db.First(&post, comment.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadRequest
		}
		return err
	}

	if comment.AuthorID != requesterID && post.AuthorID != requesterID {
		return ErrForbidden
	}

	if err := s.db.Delete(&models.Comment{}, commentID).Error; err != nil {
		return err
	}

	// One level of cascade only: grandchildren, if the data ever held any,
	// would be orphaned here.
	result := s.db.Where("parent_comment_id = ?", commentID).Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}

	return s.db.Model(&models.Post{}).
		Where("id = ?", comment.PostID).
		UpdateColumn("comment_count", gorm.Expr("comment_count - ?", result.RowsAffected+1)).Error
}
