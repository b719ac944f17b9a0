package memory

import (
	"context"
	"slices"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
)

type activityRepository struct {
	d *data
}

func (r *activityRepository) Append(_ context.Context, a domain.Activity) error {
	acts := append([]domain.Activity{a}, r.d.snap.Activities...)
	if len(acts) > domain.ActivityLogLimit {
		acts = acts[:domain.ActivityLogLimit]
	}
	r.d.snap.Activities = acts
	return nil
}

func (r *activityRepository) List(_ context.Context) ([]domain.Activity, error) {
	return slices.Clone(r.d.snap.Activities), nil
}
