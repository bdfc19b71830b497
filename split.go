package keyspan

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// SplitSpace returns count evenly spaced integers strictly between start and
// end, in increasing order.
//
// The step is (end-start+1)/(count+1) under truncating integer division; the
// remainder is absorbed by a possibly larger final segment rather than being
// redistributed. The computation is fully deterministic, so repeated calls
// with the same bounds always produce the same checkpoints and sub-ranges
// built from them tile the original range without gaps or overlaps.
//
// start < end is required, and count must not exceed end-start. When count
// equals end-start exactly, only end-start-1 interior integers exist and the
// sequence is truncated accordingly.
func SplitSpace(start, end *big.Int, count int) ([]*big.Int, error) {
	if start.Cmp(end) >= 0 {
		return nil, fmt.Errorf("keyspan: split [%s, %s): %w", start, end, ErrInvalidRange)
	}
	if count < 0 {
		return nil, fmt.Errorf("keyspan: checkpoint count must be non-negative, got %d", count)
	}
	size := new(big.Int).Sub(end, start)
	if big.NewInt(int64(count)).Cmp(size) > 0 {
		return nil, fmt.Errorf("keyspan: %d checkpoints in a space of %s: %w", count, size, ErrTooManyCheckpoints)
	}

	step := new(big.Int).Add(size, one)
	step.Quo(step, big.NewInt(int64(count+1)))

	checkpoints := make([]*big.Int, 0, count)
	cur := new(big.Int).Set(start)
	for i := 0; i < count; i++ {
		cur.Add(cur, step)
		if cur.Cmp(end) >= 0 {
			break
		}
		checkpoints = append(checkpoints, new(big.Int).Set(cur))
	}
	return checkpoints, nil
}

// SplitSpaceInt64 is SplitSpace over native integer bounds.
func SplitSpaceInt64(start, end int64, count int) ([]int64, error) {
	checkpoints, err := SplitSpace(big.NewInt(start), big.NewInt(end), count)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(checkpoints))
	for i, cp := range checkpoints {
		out[i] = cp.Int64()
	}
	return out, nil
}
