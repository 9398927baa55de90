package controllers

import (
	"errors"
	"net/http"

	"quill/models"
	"quill/services"
	"quill/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	db          *gorm.DB
	userService *services.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		db:          db,
		userService: services.NewUserService(db),
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	_, err := ac.userService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"errorMessage": "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Register Successfully"})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		return
	}

	user, err := ac.userService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"errorMessage": "Bad request"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusConflict, gin.H{"errorMessage": "User doesn't exists"})
		case errors.Is(err, services.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"errorMessage": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		}
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"errorMessage": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successfully",
		"token":   token,
		"name":    user.Username,
		"userId":  user.ID,
	})
}
