package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateadmin/console/internal/models"
)

const recentActivityLimit = 10

type dashboardView struct {
	ActivityEnabled bool
	Activity        []models.Activity
}

func (h HandlerSet) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "dashboard.html", page{
		Title:  "Dashboard",
		Active: "dashboard",
		Data: dashboardView{
			ActivityEnabled: h.activity.Enabled(),
			Activity:        h.activity.Recent(c.Request.Context(), recentActivityLimit),
		},
	})
}
