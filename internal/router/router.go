// Package router wires the HTTP routes onto a gin engine.
package router

import (
	"github.com/folioapi/internal/handler"
	"github.com/gin-gonic/gin"
)

// Setup registers every route and returns the engine. Public reads stay
// open; everything that mutates content sits behind the auth middleware.
func Setup(api *handler.API) *gin.Engine {
	r := gin.Default()
	r.Use(handler.RequestID())

	r.GET("/health", api.Health)

	root := r.Group("/api")
	authRequired := api.AuthRequired()

	auth := root.Group("/auth")
	{
		auth.POST("/login", api.Login)
		auth.POST("/logout", api.Logout)
	}

	about := root.Group("/about")
	{
		about.GET("", api.GetAbout)
		about.POST("", authRequired, api.UpsertAbout)
		about.PUT("", authRequired, api.UpsertAbout)
		about.PATCH("/resume", authRequired, api.UpdateResume)
		about.DELETE("/resume", authRequired, api.DeleteResume)
		about.PATCH("/profile-image", authRequired, api.UpdateProfileImage)
		about.DELETE("/profile-image", authRequired, api.DeleteProfileImage)
		about.PATCH("/toggle-active", authRequired, api.ToggleAboutActive)
	}

	skills := root.Group("/skills")
	{
		skills.GET("", api.ListSkills)
		skills.GET("/:id", authRequired, api.GetSkill)
		skills.POST("/add-skill", authRequired, api.AddSkill)
		skills.PUT("/update/:id", authRequired, api.UpdateSkill)
		skills.DELETE("/delete/:id", authRequired, api.DeleteSkill)
	}

	experiences := root.Group("/experiences")
	{
		experiences.GET("", api.ListExperiences)
		experiences.GET("/:id", authRequired, api.GetExperience)
		experiences.POST("/add-experience", authRequired, api.AddExperience)
		experiences.PUT("/update/:id", authRequired, api.UpdateExperience)
		experiences.DELETE("/delete/:id", authRequired, api.DeleteExperience)
	}

	projects := root.Group("/projects")
	{
		projects.GET("", api.ListProjects)
		projects.GET("/:id", authRequired, api.GetProject)
		projects.POST("/add-project", authRequired, api.AddProject)
		projects.PUT("/update/:id", authRequired, api.UpdateProject)
		projects.DELETE("/delete/:id", authRequired, api.DeleteProject)
	}

	certifications := root.Group("/certifications")
	{
		certifications.GET("", api.ListCertifications)
		certifications.GET("/:id", authRequired, api.GetCertification)
		certifications.POST("/add-certification", authRequired, api.AddCertification)
		certifications.PUT("/update/:id", authRequired, api.UpdateCertification)
		certifications.DELETE("/delete/:id", authRequired, api.DeleteCertification)
	}

	contact := root.Group("/contact")
	{
		contact.POST("/submit", api.SubmitContact)
		contact.GET("", authRequired, api.ListContacts)
		contact.GET("/:id", authRequired, api.GetContact)
		contact.DELETE("", authRequired, api.DeleteContacts)
		contact.DELETE("/:id", authRequired, api.DeleteContact)
	}

	return r
}
