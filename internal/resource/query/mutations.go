package query

import (
	"context"

	"consulate-console/internal/resource"
)

// Create runs the create action and, on success, invalidates the
// resource's list and stats entries so the next read refetches. Failures
// surface the action's message; mutations are never retried.
func (q *Queries[T]) Create(ctx context.Context, payload any) resource.Result[T] {
	res := q.action.Create(ctx, payload)
	if res.Success {
		q.invalidateAfterMutation("")
	}
	return res
}

// Update runs the update action and additionally invalidates the record's
// detail entry.
func (q *Queries[T]) Update(ctx context.Context, id string, payload any) resource.Result[T] {
	res := q.action.Update(ctx, id, payload)
	if res.Success {
		q.invalidateAfterMutation(id)
	}
	return res
}

// Delete runs the delete action; invalidation mirrors Update.
func (q *Queries[T]) Delete(ctx context.Context, id string) resource.Result[T] {
	res := q.action.Delete(ctx, id)
	if res.Success {
		q.invalidateAfterMutation(id)
	}
	return res
}

// invalidateAfterMutation applies the invalidation rules: list + stats
// always, the detail entry when the mutation targeted one record.
// Validation strictly precedes the network call inside the action, and
// invalidation strictly follows a successful response here.
func (q *Queries[T]) invalidateAfterMutation(id string) {
	q.store.InvalidateList(q.name)
	q.store.InvalidateStats(q.name)
	if id != "" {
		q.store.InvalidateDetail(q.name, id)
	}
	q.store.notifyInvalidated(q.name)
}
