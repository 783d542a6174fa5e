package handlers

import (
	"bluebook/internal/document"
	"bluebook/internal/domain"
	"bluebook/internal/form"
	"bluebook/internal/http/middleware"
	"bluebook/internal/mailer"
	"bluebook/internal/registry"
	"bluebook/internal/repositories"
	"bluebook/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps is the wiring every handler reads from. It is set once at router
// construction; the registries are loaded there (load-time fetch, fail-soft)
// and treated as static for the process lifetime.
type Deps struct {
	Store     *form.Store
	Registry  registry.Registry
	Company   document.Company
	Relay     mailer.Relay
	Drafts    repositories.DraftRepository
	JWTSecret []byte
}

var deps Deps

// Init installs the handler dependencies.
func Init(d Deps) {
	if d.Store == nil {
		d.Store = form.NewStore()
	}
	deps = d
}

// documentService builds the per-request pipeline with a snapshot loader
// backed by the session store.
func documentService(c *gin.Context) services.DocumentService {
	return services.DocumentService{
		Company:   deps.Company,
		Relay:     deps.Relay,
		RequestID: middleware.GetRequestID(c),
		Loader:    loadSnapshot,
	}
}

func loadSnapshot(formID string) (services.FormSnapshot, error) {
	var snap services.FormSnapshot
	err := deps.Store.Do(formID, func(s *form.State) error {
		snap = services.FormSnapshot{
			Meta:        s.Meta.Clone(),
			Licenses:    s.ActiveLicenses(),
			Entries:     append([]domain.CostEntry(nil), s.Entries...),
			Attachments: append([]domain.Attachment(nil), s.Attachments...),
			Ready:       s.Ready(),
		}
		return nil
	})
	return snap, err
}
