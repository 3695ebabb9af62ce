package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/form"
	"estateadmin/console/internal/guard"
	"estateadmin/console/internal/middleware"
	"estateadmin/console/internal/models"
	"estateadmin/console/internal/screen"
	"estateadmin/console/internal/service"
	"estateadmin/console/internal/session"
)

const propertiesLocalView = guard.PathProperties + "?view=local"

type propertyFormView struct {
	Action         string
	Submit         string
	CSRF           string
	Draft          form.PropertyDraft
	Builders       []models.Builder
	BHKOptions     []int
	Furnishing     []models.FurnishingStatus
	Ownerships     []models.Ownership
	Completion     []models.CompletionStatus
	Existing       []models.PropertyImage
	Previews       []service.Preview
	ImagesRequired bool
	NotFound       bool
}

type propertiesView struct {
	State screen.State
	Items []models.Property
}

// Failed reports a read that ended in error; the page offers a reload.
func (v propertiesView) Failed() bool { return v.State == screen.Failed }

func (h HandlerSet) propertyForm(c *gin.Context, action, submit string, draft form.PropertyDraft, builders []models.Builder) propertyFormView {
	return propertyFormView{
		Action:     action,
		Submit:     submit,
		CSRF:       middleware.CSRFToken(c),
		Draft:      draft,
		Builders:   builders,
		BHKOptions: models.BHKOptions,
		Furnishing: models.FurnishingStatuses,
		Ownerships: models.Ownerships,
		Completion: models.CompletionStatuses,
		Previews:   h.uploads.Previews(c.Request.Context(), session.FromContext(c).ID(), draft.Staged),
	}
}

func addPropertyPage(view propertyFormView) page {
	view.ImagesRequired = true
	return page{Title: "Add Property", Active: "add-property", Data: view}
}

func editPropertyPage(view propertyFormView) page {
	return page{Title: "Edit Property", Active: "properties", Data: view}
}

// loadBuilders feeds the builder select. A failed read leaves it empty.
func (h HandlerSet) loadBuilders(c *gin.Context) []models.Builder {
	builders, err := h.api.ListBuilders(c.Request.Context())
	if err != nil {
		h.logger(c).Warn().Err(err).Msg("load builders failed")
		return nil
	}
	return builders
}

func (h HandlerSet) AddPropertyPage(c *gin.Context) {
	view := h.propertyForm(c, guard.PathAddProperty, "Add Property", form.NewPropertyDraft(), h.loadBuilders(c))
	h.render(c, http.StatusOK, "add_property.html", addPropertyPage(view))
}

func (h HandlerSet) CreateProperty(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := session.FromContext(c).ID()

	var draft form.PropertyDraft
	bindErr := c.ShouldBind(&draft)

	fail := func(status int, message string) {
		view := h.propertyForm(c, guard.PathAddProperty, "Add Property", draft, h.loadBuilders(c))
		h.render(c, status, "add_property.html", addPropertyPage(view).notice(session.FlashError, message))
	}

	batch, err := h.uploads.Accept(ctx, sessionID, formFiles(c, "images"), draft.Staged)
	if err != nil {
		h.logger(c).Warn().Err(err).Msg("accept images failed")
		fail(uploadFailureStatus(err), uploadMessage(err))
		return
	}
	draft = draft.WithStaged(batch.Staged)

	if bindErr != nil {
		fail(http.StatusUnprocessableEntity, "Fill in all required fields")
		return
	}
	if len(batch.Files) == 0 {
		fail(http.StatusUnprocessableEntity, "Select at least one image")
		return
	}

	if err := h.api.CreateProperty(ctx, draft.Input(batch.Files)); err != nil {
		h.logger(c).Warn().Err(err).Str("title", draft.Title).Msg("create property failed")
		fail(failureStatus(err), apiclient.UserMessage(err, "Failed to create property"))
		return
	}

	h.uploads.Release(ctx, sessionID, batch.Staged)
	h.activity.Record(ctx, admin(c), models.ActivityPropertyCreated, "", "created property "+draft.Title)

	h.flash(c, session.FlashSuccess, "Property created successfully!")
	h.redirect(c, guard.PathDashboard)
}

type editData struct {
	property    models.Property
	builders    []models.Builder
	buildersErr error
}

// loadEdit reads the record and the builder list concurrently. Only a failed
// record read is an error; the builder list degrades to empty.
func (h HandlerSet) loadEdit(c *gin.Context, id string) (editData, error) {
	ctx := c.Request.Context()

	var (
		data editData
		g    errgroup.Group
	)
	g.Go(func() error {
		property, err := h.api.GetProperty(ctx, id)
		if err != nil {
			return err
		}
		data.property = property
		return nil
	})
	g.Go(func() error {
		data.builders, data.buildersErr = h.api.ListBuilders(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return data, err
	}
	if data.buildersErr != nil {
		h.logger(c).Warn().Err(data.buildersErr).Msg("load builders failed")
	}
	return data, nil
}

func (h HandlerSet) renderEditLoadFailure(c *gin.Context, id string, err error) {
	p := editPropertyPage(propertyFormView{NotFound: true})
	status := http.StatusNotFound
	if !apiclient.IsNotFound(err) {
		h.logger(c).Warn().Err(err).Str("property_id", id).Msg("load property failed")
		status = http.StatusBadGateway
		p = p.notice(session.FlashError, apiclient.UserMessage(err, "Failed to fetch property"))
	}
	h.render(c, status, "edit_property.html", p)
}

func (h HandlerSet) EditPropertyPage(c *gin.Context) {
	id := c.Param("id")
	data, err := h.loadEdit(c, id)
	if err != nil {
		h.renderEditLoadFailure(c, id, err)
		return
	}

	view := h.propertyForm(c, guard.PathEditProperty+id, "Update Property", form.DraftFromProperty(data.property), data.builders)
	view.Existing = data.property.Images
	p := editPropertyPage(view)
	if data.buildersErr != nil {
		p = p.notice(session.FlashError, apiclient.UserMessage(data.buildersErr, "Failed to fetch builders"))
	}
	h.render(c, http.StatusOK, "edit_property.html", p)
}

func (h HandlerSet) UpdateProperty(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	sessionID := session.FromContext(c).ID()

	var draft form.PropertyDraft
	bindErr := c.ShouldBind(&draft)

	fail := func(status int, message string) {
		data, err := h.loadEdit(c, id)
		if err != nil {
			h.renderEditLoadFailure(c, id, err)
			return
		}
		view := h.propertyForm(c, guard.PathEditProperty+id, "Update Property", draft, data.builders)
		view.Existing = data.property.Images
		h.render(c, status, "edit_property.html", editPropertyPage(view).notice(session.FlashError, message))
	}

	batch, err := h.uploads.Accept(ctx, sessionID, formFiles(c, "images"), draft.Staged)
	if err != nil {
		h.logger(c).Warn().Err(err).Msg("accept images failed")
		fail(uploadFailureStatus(err), uploadMessage(err))
		return
	}
	draft = draft.WithStaged(batch.Staged)

	if bindErr != nil {
		fail(http.StatusUnprocessableEntity, "Fill in all required fields")
		return
	}

	if err := h.api.UpdateProperty(ctx, id, draft.Input(batch.Files)); err != nil {
		h.logger(c).Warn().Err(err).Str("property_id", id).Msg("update property failed")
		fail(failureStatus(err), apiclient.UserMessage(err, "Failed to update property"))
		return
	}

	h.uploads.Release(ctx, sessionID, batch.Staged)
	h.activity.Record(ctx, admin(c), models.ActivityPropertyUpdated, id, "updated property "+draft.Title)

	h.flash(c, session.FlashSuccess, "Property updated successfully!")
	h.redirect(c, guard.PathProperties)
}

// Properties mounts the list screen: a plain GET reads the collection again,
// ?view=local renders the session's snapshot as left by the last delete.
func (h HandlerSet) Properties(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := session.FromContext(c).ID()

	var list *screen.List[models.Property]
	if c.Query("view") == "local" {
		snapshot, err := h.properties.Load(ctx, sessionID)
		switch {
		case err == nil:
			list = snapshot
		case !errors.Is(err, screen.ErrNoSnapshot):
			h.logger(c).Warn().Err(err).Msg("load property snapshot failed")
		}
	}

	p := page{Title: "Properties", Active: "properties"}
	if list == nil {
		list = screen.NewList[models.Property]()
		if err := list.Load(func() ([]models.Property, error) {
			return h.api.ListProperties(ctx)
		}); err != nil {
			h.logger(c).Warn().Err(err).Msg("load properties failed")
			p = p.notice(session.FlashError, "Failed to load properties")
		}
		if err := h.properties.Save(ctx, sessionID, list); err != nil {
			h.logger(c).Warn().Err(err).Msg("save property snapshot failed")
		}
	}

	p.Data = propertiesView{State: list.State(), Items: list.Items()}
	h.render(c, http.StatusOK, "properties.html", p)
}

// PropertyAction handles the list's delete buttons. Confirmation happens in
// the browser before the form is sent.
func (h HandlerSet) PropertyAction(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := session.FromContext(c).ID()

	id := c.PostForm("id")
	if c.PostForm("action") != "delete" || id == "" {
		h.flash(c, session.FlashError, "Unknown action")
		h.redirect(c, propertiesLocalView)
		return
	}

	if err := h.api.DeleteProperty(ctx, id); err != nil {
		h.logger(c).Warn().Err(err).Str("property_id", id).Msg("delete property failed")
		h.flash(c, session.FlashError, apiclient.UserMessage(err, "Failed to delete property"))
		h.redirect(c, propertiesLocalView)
		return
	}

	list, err := h.properties.Load(ctx, sessionID)
	switch {
	case err == nil:
		if _, err := list.Remove(id); err != nil {
			h.logger(c).Warn().Err(err).Msg("remove from property snapshot failed")
		} else if err := h.properties.Save(ctx, sessionID, list); err != nil {
			h.logger(c).Warn().Err(err).Msg("save property snapshot failed")
		}
	case errors.Is(err, screen.ErrNoSnapshot):
		// the list page reads the collection again
	default:
		h.logger(c).Warn().Err(err).Msg("load property snapshot failed")
	}

	h.activity.Record(ctx, admin(c), models.ActivityPropertyDeleted, id, "deleted property "+id)

	h.flash(c, session.FlashSuccess, "Property deleted successfully")
	h.redirect(c, propertiesLocalView)
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return nil
	}
	return mf.File[field]
}

func uploadFailureStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrTooManyImages),
		errors.Is(err, service.ErrImageTooLarge),
		errors.Is(err, service.ErrNotAnImage):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func uploadMessage(err error) string {
	if uploadFailureStatus(err) == http.StatusUnprocessableEntity {
		return "Images rejected: " + err.Error()
	}
	return "Failed to keep the selected images"
}
