package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/form"
	"estateadmin/console/internal/guard"
	"estateadmin/console/internal/models"
	"estateadmin/console/internal/session"
)

type builderView struct {
	Draft form.BuilderDraft
}

func (h HandlerSet) BuilderPage(c *gin.Context) {
	h.render(c, http.StatusOK, "builder.html", builderPage(form.BuilderDraft{}))
}

func (h HandlerSet) CreateBuilder(c *gin.Context) {
	var draft form.BuilderDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "builder.html",
			builderPage(draft).notice(session.FlashError, "All fields are required"))
		return
	}

	if err := h.api.CreateBuilder(c.Request.Context(), draft.Input()); err != nil {
		h.logger(c).Warn().Err(err).Str("builder", draft.Name).Msg("create builder failed")
		h.render(c, failureStatus(err), "builder.html",
			builderPage(draft).notice(session.FlashError, apiclient.UserMessage(err, "Failed to create builder")))
		return
	}

	h.activity.Record(c.Request.Context(), admin(c), models.ActivityBuilderCreated, "", "created builder "+draft.Name)

	// the redirect renders an empty draft
	h.flash(c, session.FlashSuccess, "Builder created successfully!")
	h.redirect(c, guard.PathBuilder)
}

func builderPage(draft form.BuilderDraft) page {
	return page{
		Title:  "Add Builder",
		Active: "builder",
		Data:   builderView{Draft: draft},
	}
}
