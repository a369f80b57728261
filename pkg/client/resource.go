package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strconv"
)

// Resource calls the CRUD routes of one entity. C is the create and replace
// payload, U the partial update payload.
type Resource[T any, C any, U any] struct {
	client *Client
	path   string
	label  string
}

func newResource[T any, C any, U any](client *Client, path, label string) *Resource[T, C, U] {
	return &Resource[T, C, U]{client: client, path: path, label: label}
}

// CacheKey returns the query cache key for the collection, or for one record
// when an id is given.
func (r *Resource[T, C, U]) CacheKey(id ...uint) string {
	if len(id) == 0 {
		return r.path
	}
	return r.path + ":" + strconv.FormatUint(uint64(id[0]), 10)
}

func (r *Resource[T, C, U]) itemPath(id uint) string {
	return "/" + r.path + "/" + strconv.FormatUint(uint64(id), 10)
}

// List fetches the collection. Failures are logged and reported through the
// result instead of an error so list views keep rendering.
func (r *Resource[T, C, U]) List(ctx context.Context, filters ...Filter) Result[T] {
	query := url.Values{}
	for _, filter := range filters {
		filter(query)
	}

	key := r.CacheKey()
	if encoded := query.Encode(); encoded != "" {
		key += "?" + encoded
	}

	items, err := Fetch(ctx, r.client.cache, key, func(ctx context.Context) ([]T, error) {
		var items []T
		if err := r.client.do(ctx, http.MethodGet, "/"+r.path, query, nil, &items); err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		r.client.logger.Error().Err(err).Str("resource", r.path).Msg("failed to list records")
		return errorResult[T](err)
	}
	return successResult(slices.Clone(items))
}

// Get fetches one record.
func (r *Resource[T, C, U]) Get(ctx context.Context, id uint) (T, error) {
	item, err := Fetch(ctx, r.client.cache, r.CacheKey(id), func(ctx context.Context) (T, error) {
		var item T
		err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &item)
		return item, err
	})
	if err != nil {
		r.client.logger.Error().Err(err).Str("resource", r.path).Uint("id", id).Msg("failed to load record")
		return item, err
	}
	return item, nil
}

// Create posts a new record.
func (r *Resource[T, C, U]) Create(ctx context.Context, payload C) (T, error) {
	var item T
	err := r.client.do(ctx, http.MethodPost, "/"+r.path, nil, payload, &item)
	r.settle(err, "create", r.label+" created")
	return item, err
}

// Replace overwrites a record with the full payload.
func (r *Resource[T, C, U]) Replace(ctx context.Context, id uint, payload C) (T, error) {
	var item T
	err := r.client.do(ctx, http.MethodPut, r.itemPath(id), nil, payload, &item)
	r.settle(err, "replace", r.label+" updated")
	return item, err
}

// Update sends only the fields set in payload.
func (r *Resource[T, C, U]) Update(ctx context.Context, id uint, payload U) (T, error) {
	var item T
	err := r.client.do(ctx, http.MethodPatch, r.itemPath(id), nil, payload, &item)
	r.settle(err, "update", r.label+" updated")
	return item, err
}

// Delete removes a record.
func (r *Resource[T, C, U]) Delete(ctx context.Context, id uint) error {
	err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
	r.settle(err, "delete", r.label+" deleted")
	return err
}

// settle logs and notifies the outcome of a mutation and drops the cached
// reads of the resource on success.
func (r *Resource[T, C, U]) settle(err error, action, successMessage string) {
	if err != nil {
		r.client.logger.Error().Err(err).Str("resource", r.path).Str("action", action).Msg("mutation failed")
		r.client.notifier.Error("Failed to " + action + " " + r.label + ": " + errorText(err))
		return
	}
	r.client.cache.Invalidate(r.path)
	r.client.notifier.Success(successMessage)
}

func errorText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Filter narrows a list read with a query parameter.
type Filter func(url.Values)

// Where adds an equality filter such as Where("student_id", 3).
func Where(key string, value uint) Filter {
	return func(query url.Values) {
		query.Set(key, strconv.FormatUint(uint64(value), 10))
	}
}
