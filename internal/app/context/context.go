// Package appctx provides request-scoped context for orchestration services.
//
// RequestContext wraps a context.Context with memoized backend reads and a
// queue of staged writes that commit in order, rolling back on failure:
//
//	rc := appctx.New(ctx)
//
//	existing, err := appctx.GetOrFetch(rc, "timesheet:e-1:2025-08-11", fetch)
//
//	rc.Stage("timesheet:e-1:2025-08-11", updated, &updateTimesheet{...})
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/payroo-gateway/internal/domain"
)

// Compile-time check that RequestContext implements domain.WriteStager.
var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned when staging or committing on a
	// RequestContext that has already been committed.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil Action is staged.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when the same key was cached
	// with a different type.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext is a request-scoped context wrapper. Create one per HTTP
// request; never share it between requests.
type RequestContext struct {
	context.Context

	cacheMu sync.Mutex
	cache   map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// cacheEntry holds a fetch result. Errors are cached too so a failing read
// is not repeated within the request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type contextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(contextKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. The same key must always be used with the same type T.
//
// The cache lock is not held while fetchFn runs, so two concurrent misses
// for one key may both fetch; the later result wins.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	rc.cacheMu.Lock()
	entry, ok := rc.cache[key]
	rc.cacheMu.Unlock()

	if ok {
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)

	rc.cacheMu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.cacheMu.Unlock()

	return val, err
}

// Stage records entity under key for read-your-writes and queues action for
// Commit.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.cacheMu.Lock()
	rc.cache[key] = cacheEntry{value: entity}
	rc.cacheMu.Unlock()
	return nil
}

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Execute runs action immediately. It is not queued and is never rolled back.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}
