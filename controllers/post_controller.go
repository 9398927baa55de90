package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"quill/models"
	"quill/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db          *gorm.DB
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:          db,
		postService: services.NewPostService(db),
	}
}

// CreatePost opens a fresh empty draft for the authenticated user.
func (pc *PostController) CreatePost(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	post, err := pc.postService.CreateDraft(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"postId":  post.ID,
		"message": "Post Created Successfully",
	})
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	postID, ok := parseID(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	if _, err := pc.postService.UpdateContent(postID, userID, &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"errorMessage": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (pc *PostController) UpdatePostStatus(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	postID, ok := parseID(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	post, message, err := pc.postService.UpdateStatus(postID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"errorMessage": "Post not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post, "message": message})
}

// GetPosts lists the caller's posts, filtered by status (0 = all) and paged
// by a skip offset. Per-status counts come back on the first page only.
func (pc *PostController) GetPosts(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	status, err := strconv.Atoi(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	skip := 0
	if rawSkip := c.Query("skip"); rawSkip != "" {
		skip, err = strconv.Atoi(rawSkip)
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
			return
		}
	}

	posts, counts, err := pc.postService.ListForOwner(userID, status, skip)
	if err != nil {
		if errors.Is(err, services.ErrBadRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	body := gin.H{"posts": posts}
	if counts != nil {
		body["statusCount"] = counts
	}
	c.JSON(http.StatusOK, body)
}

// GetPost returns the editor projection of one owned post. A miss is not an
// error here: the body carries a null post and the status stays 200.
func (pc *PostController) GetPost(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	postID, ok := parseID(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	post, err := pc.postService.GetOwned(postID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID, exists := authedUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Unauthorized"})
		return
	}

	postID, ok := parseID(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	if err := pc.postService.DeleteOwned(postID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted": true,
		"message": "Post deleted Successfully",
	})
}
