package api

import (
	"log"
	stdhttp "net/http"

	intconfig "bluebook/internal/config"
	"bluebook/internal/document"
	"bluebook/internal/form"
	h "bluebook/internal/http/handlers"
	"bluebook/internal/http/middleware"
	"bluebook/internal/mailer"
	"bluebook/internal/registry"
	"bluebook/internal/repositories"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	loader := registry.Loader{Dir: env.DataDir, BaseURL: env.RegistryBaseURL}
	company := intconfig.LoadCompany(env.CompanyFile)

	h.Init(h.Deps{
		Store:    form.NewStore(),
		Registry: loader.Load(),
		Company: document.Company{
			Name:      company.Name,
			Phone:     company.Phone,
			OrgNumber: company.OrgNumber,
			LogoPath:  company.LogoPath,
		},
		Relay:     mailer.Relay{URL: env.MailRelayURL},
		Drafts:    repositories.DraftRepository{},
		JWTSecret: []byte(env.JWTSecret),
	})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ukjend rute",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Reference registries (read-only, loaded at boot)
		reg := api.Group("/registry")
		reg.GET("/licenses", h.GetLicenses)
		reg.GET("/drivers", h.GetDrivers)
		reg.GET("/routes", h.GetRoutes)

		// Form sessions
		forms := api.Group("/forms")
		if env.AuthRequired {
			forms.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		}
		forms.POST("", h.CreateForm)
		forms.GET("/:id", h.GetForm)
		forms.PATCH("/:id", h.PatchForm)
		forms.POST("/:id/reset", h.ResetForm)
		forms.DELETE("/:id", h.DeleteForm)
		forms.PUT("/:id/licenses", h.SetLicenses)

		// Cost ledger
		forms.POST("/:id/entries", h.AddEntry)
		forms.PATCH("/:id/entries/:index", h.PatchEntry)
		forms.DELETE("/:id/entries/:index", h.DeleteEntry)
		forms.DELETE("/:id/entries", h.ClearEntries)
		forms.GET("/:id/totals", h.GetTotals)

		// Attachments
		forms.POST("/:id/attachments", h.UploadAttachments)
		forms.DELETE("/:id/attachments/:index", h.DeleteAttachment)
		forms.DELETE("/:id/attachments", h.ClearAttachments)

		// Document pipeline
		forms.GET("/:id/document", h.GetDocument)
		forms.GET("/:id/document/pdf", h.GetDocumentPDF)
		forms.POST("/:id/document/send", h.SendDocument)

		// Drafts
		forms.PUT("/:id/draft", h.SaveDraft)
		forms.GET("/:id/draft", h.LoadDraft)
		forms.DELETE("/:id/draft", h.DeleteDraft)
	}

	h.SetRouter(r)
	return r
}
