package usecase

import (
	"context"
	"errors"

	"consulate-console/internal/resource"
	"consulate-console/pkg/response"
	"consulate-console/pkg/restclient"
)

// Create validates the payload, then asks the upstream backend to create
// the record. Validation failure returns before any network call.
func (a *Action[T]) Create(ctx context.Context, payload any) resource.Result[T] {
	if msg, ok := a.invalid(payload); ok {
		return resource.Fail[T](msg)
	}

	record, err := a.repo.Create(ctx, payload)
	if err != nil {
		a.l.Errorf(ctx, "action %s: create: %v", a.name, err)
		return resource.Fail[T](a.failureMessage(err))
	}
	return resource.Ok(a.messages.Created, &record)
}

// Update validates, then updates the record by ID.
func (a *Action[T]) Update(ctx context.Context, id string, payload any) resource.Result[T] {
	if id == "" {
		return resource.Fail[T]("identifiant manquant")
	}
	if msg, ok := a.invalid(payload); ok {
		return resource.Fail[T](msg)
	}

	record, err := a.repo.Update(ctx, id, payload)
	if err != nil {
		a.l.Errorf(ctx, "action %s: update %s: %v", a.name, id, err)
		return resource.Fail[T](a.failureMessage(err))
	}
	return resource.Ok(a.messages.Updated, &record)
}

// Delete removes the record by ID. Deleting an already-deleted record is a
// structured failure, never a panic or a raw error.
func (a *Action[T]) Delete(ctx context.Context, id string) resource.Result[T] {
	if id == "" {
		return resource.Fail[T]("identifiant manquant")
	}

	if err := a.repo.Delete(ctx, id); err != nil {
		a.l.Errorf(ctx, "action %s: delete %s: %v", a.name, id, err)
		return resource.Fail[T](a.failureMessage(err))
	}
	return resource.Result[T]{Success: true, Message: a.messages.Deleted}
}

// invalid runs struct-tag validation plus payload-specific checks, and
// returns the joined human message when the payload is rejected.
func (a *Action[T]) invalid(payload any) (string, bool) {
	if err := a.validator.Validate(payload); err != nil {
		return err.Error(), true
	}
	if checker, ok := payload.(Checker); ok {
		if err := checker.Check(); err != nil {
			return err.Error(), true
		}
	}
	return "", false
}

// failureMessage maps repository errors to the best user-facing message.
func (a *Action[T]) failureMessage(err error) string {
	if errors.Is(err, resource.ErrNotFound) {
		return a.messages.NotFound
	}
	if apiErr, ok := restclient.AsAPIError(err); ok && apiErr.Status != 0 && apiErr.Message != "" {
		return apiErr.Message
	}
	return response.DefaultErrorMessage
}
