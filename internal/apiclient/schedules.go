package apiclient

import (
	"context"
	"errors"
	"net/http"

	"estateadmin/console/internal/models"
)

var ErrUnsuccessful = errors.New("api reported an unsuccessful result")

type schedulesResponse struct {
	Success   bool              `json:"success"`
	Schedules []models.Schedule `json:"schedules"`
}

// ListSchedules reads every booked site visit. The path spelling matches the
// deployed API.
func (c *Client) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	req, _ := jsonRequest("list_schedules", http.MethodGet, "/api/schedlue/allSchedule", nil)

	var out schedulesResponse
	if _, err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, ErrUnsuccessful
	}
	return out.Schedules, nil
}
