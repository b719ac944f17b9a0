package service

import (
	"context"
	"errors"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

type activityService struct {
	tx         repository.Tx
	activities repository.ActivityRepository
	now        func() time.Time
}

func NewActivityService(tx repository.Tx, activities repository.ActivityRepository) ActivityService {
	return &activityService{tx: tx, activities: activities, now: time.Now}
}

func (s *activityService) LogActivity(ctx context.Context, icon, message string) error {
	if message == "" {
		return errors.New("activity message is required")
	}
	return s.tx.Atomic(func() error {
		return s.activities.Append(ctx, domain.Activity{
			Icon:    icon,
			Message: message,
			Time:    s.now(),
		})
	})
}

func (s *activityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	var out []domain.Activity
	var err error
	s.tx.View(func() {
		out, err = s.activities.List(ctx)
	})
	return out, err
}
