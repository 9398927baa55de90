package routes

import (
	"net/http"

	"quill/controllers"
	"quill/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authController *controllers.AuthController, postController *controllers.PostController, commentController *controllers.CommentController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		posts := api.Group("/post")
		{
			// The public post page carries an optional viewer id, so the
			// route is registered with and without the trailing segment.
			posts.GET("/public-post/:postId", commentController.GetPublicPost)
			posts.GET("/public-post/:postId/:userId", commentController.GetPublicPost)

			authed := posts.Group("")
			authed.Use(middleware.AuthRequired())
			{
				authed.POST("", postController.CreatePost)
				authed.GET("", postController.GetPosts)
				authed.PUT("/update-status/:postId", postController.UpdatePostStatus)
				authed.GET("/:postId", postController.GetPost)
				authed.PUT("/:postId", postController.UpdatePost)
				authed.DELETE("/:postId", postController.DeletePost)
			}
		}

		comments := api.Group("/comment")
		comments.Use(middleware.AuthRequired())
		{
			comments.POST("", commentController.CreateComment)
			comments.DELETE("/:commentId", commentController.DeleteComment)
		}
	}
}
