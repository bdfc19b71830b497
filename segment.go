package keyspan

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Segment is a half-open slice [Start, End) of a key range. Adjacent
// segments produced by Segments share their boundaries, so together they
// tile the original range with no key lost or duplicated.
type Segment[K Key[K]] struct {
	Start K
	End   K
}

// Segments splits [lo, hi) into count+1 contiguous segments using count
// interior checkpoints.
func Segments[K Key[K]](lo, hi K, count int) ([]Segment[K], error) {
	checkpoints, err := lo.Range(hi, count)
	if err != nil {
		return nil, err
	}
	segs := make([]Segment[K], 0, len(checkpoints)+1)
	cur := lo
	for _, cp := range checkpoints {
		segs = append(segs, Segment[K]{Start: cur, End: cp})
		cur = cp
	}
	segs = append(segs, Segment[K]{Start: cur, End: hi})
	return segs, nil
}

// WalkSegments runs fn over each segment with at most parallelism calls in
// flight. The first error cancels the remaining work and is returned.
//
// fn must be safe to call concurrently; the segments themselves are
// immutable values. What fn does with a segment, and how many segments to
// create in the first place, stays with the caller.
func WalkSegments[K Key[K]](ctx context.Context, segs []Segment[K], parallelism int, fn func(context.Context, Segment[K]) error) error {
	if parallelism < 1 {
		return fmt.Errorf("keyspan: parallelism must be at least 1, got %d", parallelism)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, seg := range segs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, seg)
		})
	}
	return g.Wait()
}
