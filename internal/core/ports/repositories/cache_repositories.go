package repositories

import "context"

// ReportCache stores computed reports under keys versioned per workplace.
// Bumping a workplace's version invalidates every key built from it.
type ReportCache interface {
	// Version returns the current cache version of a workplace.
	Version(ctx context.Context, workplaceID string) (int64, error)

	// FetchJSON decodes the cached value at key into dest, or runs loader and caches its result.
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error

	// Bump invalidates everything cached for a workplace.
	Bump(ctx context.Context, workplaceID string) error
}
