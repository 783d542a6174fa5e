package handlers

import (
	"net/http"
	"time"

	"bluebook/internal/document"
	"bluebook/internal/domain"
	"bluebook/internal/form"
	"bluebook/internal/utils"

	"github.com/gin-gonic/gin"
)

// formView is the snapshot every read returns: the aggregate plus the
// derived values (active licenses, totals, ready gate, export filename),
// recomputed on each request.
type formView struct {
	ID             string                  `json:"id"`
	Meta           domain.TripMeta         `json:"meta"`
	Licenses       []domain.LicenseBinding `json:"licenses"`
	ActiveLicenses []domain.LicenseBinding `json:"activeLicenses"`
	Entries        []domain.CostEntry      `json:"entries"`
	Attachments    []domain.Attachment     `json:"attachments"`
	Totals         domain.TotalsSummary    `json:"totals"`
	Ready          bool                    `json:"ready"`
	Filename       string                  `json:"filename"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// viewOf snapshots the session. The copies matter: the view is serialized
// after the store lock is released, so it must not alias the live slices.
func viewOf(s *form.State) formView {
	active := s.ActiveLicenses()
	return formView{
		ID:             s.ID,
		Meta:           s.Meta.Clone(),
		Licenses:       append([]domain.LicenseBinding(nil), s.Licenses...),
		ActiveLicenses: active,
		Entries:        append([]domain.CostEntry(nil), s.Entries...),
		Attachments:    append([]domain.Attachment(nil), s.Attachments...),
		Totals:         s.Totals(),
		Ready:          s.Ready(),
		Filename:       document.MakeFilename(s.Meta, active),
		UpdatedAt:      s.UpdatedAt,
	}
}

// POST /api/forms
func CreateForm(c *gin.Context) {
	s := deps.Store.Create()
	c.JSON(http.StatusCreated, viewOf(s))
}

// GET /api/forms/:id
func GetForm(c *gin.Context) {
	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PATCH /api/forms/:id
// Shallow-merges trip metadata. An exact route-number match against the
// route registry fills in the customer; a customer match (exact, or unique
// partial) fills in the route number.
func PatchForm(c *gin.Context) {
	var patch form.MetaPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	if patch.RouteNumber != nil && patch.Customer == nil {
		if route, ok := deps.Registry.FindRoute(*patch.RouteNumber); ok {
			patch.Customer = &route.Customer
		}
	} else if patch.Customer != nil && patch.RouteNumber == nil {
		if route, ok := deps.Registry.MatchCustomer(*patch.Customer); ok {
			patch.Customer = &route.Customer
			patch.RouteNumber = &route.RouteNumber
		}
	}

	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		s.PatchMeta(patch)
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// POST /api/forms/:id/reset
func ResetForm(c *gin.Context) {
	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		s.Reset()
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/forms/:id
func DeleteForm(c *gin.Context) {
	deps.Store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type setLicensesRequest struct {
	Licenses []domain.LicenseBinding `json:"licenses"`
}

// PUT /api/forms/:id/licenses
// Replaces the binding set. Driver fields resolve against the driver
// registry: a known id fills in the name, a known name fills in the id, and
// free-text names are title-cased.
func SetLicenses(c *gin.Context) {
	var req setLicensesRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	for i := range req.Licenses {
		b := &req.Licenses[i]
		b.DriverName = utils.TitleCaseName(b.DriverName)
		if d, ok := deps.Registry.FindDriver(b.DriverID); ok {
			b.DriverName = d.Name
		} else if d, ok := deps.Registry.FindDriverByName(b.DriverName); ok {
			b.DriverID = d.ID
			b.DriverName = d.Name
		}
	}

	var view formView
	err := deps.Store.Do(c.Param("id"), func(s *form.State) error {
		s.SetLicenses(req.Licenses)
		view = viewOf(s)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
