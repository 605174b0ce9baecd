package usecase

import (
	"context"

	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/internal/resource/repository"
)

// List returns one page of records for the given filter state. Read paths
// return typed errors: the delivery layer owns the error-panel branch.
func (a *Action[T]) List(ctx context.Context, filters *resource.Filters) (resource.Envelope[T], error) {
	env, err := a.repo.List(ctx, repository.ListOptions{
		Filters: filters.Encode(),
		Page:    filters.Page(),
		Limit:   filters.Limit(),
	})
	if err != nil {
		a.l.Errorf(ctx, "action %s: list: %v", a.name, err)
		return resource.Envelope[T]{}, err
	}
	return env, nil
}

// Detail returns one record by ID, used for edit-form pre-population.
func (a *Action[T]) Detail(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, resource.ErrEmptyID
	}

	record, err := a.repo.Get(ctx, id)
	if err != nil {
		a.l.Errorf(ctx, "action %s: detail %s: %v", a.name, id, err)
		return zero, err
	}
	return record, nil
}

// Stats returns the aggregate counters for the resource dashboard.
func (a *Action[T]) Stats(ctx context.Context) (model.Stats, error) {
	stats, err := a.repo.Stats(ctx)
	if err != nil {
		a.l.Errorf(ctx, "action %s: stats: %v", a.name, err)
		return model.Stats{}, err
	}
	return stats, nil
}
