package flint

import (
	"context"
)

type localPropertiesKey struct{}

// WithLocalProperty attaches a key/value annotation to a context. Properties
// are forwarded to the engine with every job dispatched under that context,
// tagging the job for diagnostics or scheduling hints. Attaching to the
// call's context rather than to the Context value scopes properties to the
// submitting goroutine, so concurrent submitters cannot observe each other's
// annotations.
func WithLocalProperty(ctx context.Context, key string, value string) context.Context {
	props := make(map[string]string)
	for k, v := range LocalProperties(ctx) {
		props[k] = v
	}
	props[key] = value
	return context.WithValue(ctx, localPropertiesKey{}, props)
}

// LocalProperties returns the annotations attached to a context. The map
// must not be mutated.
func LocalProperties(ctx context.Context) map[string]string {
	props, _ := ctx.Value(localPropertiesKey{}).(map[string]string)
	return props
}

// LocalProperty returns one annotation attached to a context
func LocalProperty(ctx context.Context, key string) string {
	return LocalProperties(ctx)[key]
}
