package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"estateadmin/console/internal/ids"
	"estateadmin/console/internal/models"
)

// ActivityLog is where admin actions are kept.
type ActivityLog interface {
	Record(ctx context.Context, activity models.Activity) error
	Recent(ctx context.Context, limit int) ([]models.Activity, error)
}

// ActivityService feeds the dashboard's recent activity panel. A nil log
// disables it.
type ActivityService struct {
	store ActivityLog
	log   zerolog.Logger
	now   func() time.Time
}

func NewActivityService(store ActivityLog, log zerolog.Logger) *ActivityService {
	return &ActivityService{store: store, log: log, now: time.Now}
}

func (s *ActivityService) Enabled() bool {
	return s != nil && s.store != nil
}

// Record writes one entry. Failures are logged and swallowed so a broken
// activity log never fails a screen.
func (s *ActivityService) Record(ctx context.Context, admin models.Admin, action models.ActivityAction, targetID, summary string) {
	if !s.Enabled() {
		return
	}
	err := s.store.Record(ctx, models.Activity{
		ID:        ids.New(),
		AdminID:   admin.ID,
		AdminName: admin.DisplayName(),
		Action:    action,
		TargetID:  targetID,
		Summary:   summary,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", string(action)).Msg("record activity failed")
	}
}

func (s *ActivityService) Recent(ctx context.Context, limit int) []models.Activity {
	if !s.Enabled() {
		return nil
	}
	items, err := s.store.Recent(ctx, limit)
	if err != nil {
		s.log.Warn().Err(err).Msg("load recent activity failed")
		return nil
	}
	return items
}
