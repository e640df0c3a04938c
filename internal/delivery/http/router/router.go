// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StoryHandler   *handler.StoryHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	storyHandler   *handler.StoryHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		storyHandler:   params.StoryHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The
// route paths follow the web client's existing contract, so they stay
// flat instead of grouped under a versioned prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/create-account", r.userHandler.CreateAccount)
	e.POST("/login", r.userHandler.Login)

	// Everything else requires a valid bearer token
	auth := e.Group("", r.authMiddleware.Authenticate)
	{
		auth.GET("/get-user", r.userHandler.GetUser)

		auth.POST("/add-travel-story", r.storyHandler.AddStory)
		auth.GET("/get-all-stories", r.storyHandler.GetAllStories)
		auth.PUT("/edit-story/:id", r.storyHandler.EditStory)
		auth.DELETE("/delete-story/:id", r.storyHandler.DeleteStory)
		auth.PUT("/update-is-favourite/:id", r.storyHandler.UpdateIsFavourite)
		auth.GET("/search", r.storyHandler.SearchStories)
		auth.GET("/travel-stories/filter", r.storyHandler.FilterStories)

		auth.POST("/image-upload", r.storyHandler.UploadImage)
		auth.DELETE("/delete-image", r.storyHandler.DeleteImage)

		auth.GET("/story-qr/:id", r.storyHandler.StoryQR)
	}
}
