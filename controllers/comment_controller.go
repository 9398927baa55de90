package controllers

import (
	"errors"
	"net/http"

	"quill/models"
	"quill/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	db             *gorm.DB
	commentService *services.CommentService
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		db:             db,
		commentService: services.NewCommentService(db),
	}
}

// GetPublicPost serves the anonymous post page: the post plus its comment
// thread. The optional userId path segment identifies the viewer so the
// per-comment permission flags can be filled in.
func (cc *CommentController) GetPublicPost(c *gin.Context) {
	postID, ok := parseID(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	var viewerID uint
	if rawViewer := c.Param("userId"); rawViewer != "" {
		viewerID, ok = parseID(rawViewer)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
			return
		}
	}

	view, err := cc.commentService.GetPublicView(postID, viewerID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"errorMessage": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": view.Post, "comments": view.Comments})
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	if req.PostID == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	postID, ok := parseID(req.PostID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	var parentID *uint
	if req.ParentComment != "" {
		parent, ok := parseID(req.ParentComment)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
			return
		}
		parentID = &parent
	}

	comment, err := cc.commentService.AddComment(postID, userID, req.Content, parentID)
	if err != nil {
		if errors.Is(err, services.ErrBadRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// DeleteComment removes a comment and its direct replies. Allowed for the
// comment's author and for the owner of the post it sits on.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	commentID, ok := parseID(c.Param("commentId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	if err := cc.commentService.DeleteComment(commentID, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"errorMessage": "You are not authorized to delete this comment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted": 1,
		"message": "Comment deleted successfully",
	})
}
