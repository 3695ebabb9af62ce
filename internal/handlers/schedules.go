package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/models"
	"estateadmin/console/internal/screen"
	"estateadmin/console/internal/session"
)

type scheduleView struct {
	State screen.State
	Items []models.Schedule
}

func (v scheduleView) Failed() bool { return v.State == screen.Failed }

// Schedules is read-only: every visit is one table row.
func (h HandlerSet) Schedules(c *gin.Context) {
	list := screen.NewList[models.Schedule]()
	err := list.Load(func() ([]models.Schedule, error) {
		return h.api.ListSchedules(c.Request.Context())
	})

	p := page{
		Title:  "Schedule",
		Active: "schedule",
		Data:   scheduleView{State: list.State(), Items: list.Items()},
	}
	if err != nil {
		h.logger(c).Warn().Err(err).Msg("load schedules failed")
		p = p.notice(session.FlashError, apiclient.UserMessage(err, "Failed to load schedules"))
	}
	h.render(c, http.StatusOK, "schedule.html", p)
}
