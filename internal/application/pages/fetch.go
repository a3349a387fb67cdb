package pages

import (
	"context"

	"go.uber.org/zap"

	"github.com/dummyhub/backend/internal/domain/shared"
)

// fetchSlice runs one upstream list fetch and absorbs its failure: on error
// the page degrades to partial with an empty collection instead of failing.
// Errors never propagate past this point.
func fetchSlice[T any](ctx context.Context, logger *zap.Logger, resource string, fn func(context.Context) ([]T, error)) ([]T, shared.PageState) {
	items, err := fn(ctx)
	if err != nil {
		logger.Error("upstream fetch failed",
			zap.String("resource", resource),
			zap.Error(err),
		)
		return []T{}, shared.StatePartial
	}
	if items == nil {
		items = []T{}
	}
	return items, shared.StateReady
}

// fetchOne is fetchSlice for single-value endpoints. The zero value stands in
// for the failed fetch.
func fetchOne[T any](ctx context.Context, logger *zap.Logger, resource string, fn func(context.Context) (T, error)) (T, shared.PageState) {
	value, err := fn(ctx)
	if err != nil {
		logger.Error("upstream fetch failed",
			zap.String("resource", resource),
			zap.Error(err),
		)
		var zero T
		return zero, shared.StatePartial
	}
	return value, shared.StateReady
}
