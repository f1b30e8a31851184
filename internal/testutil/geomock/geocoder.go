package geomock

import (
	"context"
	"sync/atomic"
)

// Geocoder is a function-backed mock of the geocode.Geocoder capability.
// Safe for concurrent use, matching the real client.
type Geocoder struct {
	LookupFn func(ctx context.Context, name string) (float64, float64, error)
	calls    int64
}

func (m *Geocoder) Lookup(ctx context.Context, name string) (float64, float64, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.LookupFn != nil {
		return m.LookupFn(ctx, name)
	}
	return 0, 0, nil
}

func (m *Geocoder) Calls() int64 { return atomic.LoadInt64(&m.calls) }
