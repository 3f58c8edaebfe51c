// Package router registers the HTTP routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmogib/classwork-v2/internal/server/handlers"
	"github.com/mmogib/classwork-v2/internal/server/middleware"
)

// New wires handlers and middleware into an HTTP router.
func New(handler *handlers.Handler, mw *middleware.Manager) http.Handler {
	router := gin.Default()
	router.Use(mw.CORS(), mw.RequestID(), mw.RateLimit())

	router.GET("/health", handler.Health)

	// Raw updater protocol endpoint, outside the versioned API.
	router.GET("/updates/:target/:version", handler.GetUpdate)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/grades/:base/:hid", handler.GetStudentGrades)
		v1.GET("/classwork/:base/:hid", handler.GetStudentClasswork)
		v1.GET("/assignments/:base", handler.GetAssignments)

		v1.GET("/courses", handler.GetCourses)

		v1.GET("/publications", handler.GetPublications)
		v1.GET("/publications/:id", handler.GetPublication)

		v1.GET("/employment", handler.GetEmployment)
		v1.GET("/employment/current", handler.GetCurrentEmployment)

		v1.GET("/education", handler.GetEducation)
		v1.GET("/projects", handler.GetProjects)

		v1.POST("/access/code", handler.CheckAccessCode)
	}

	return router
}
