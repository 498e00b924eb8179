package interfaces

import "context"

// ICodeSequence hands out per-key sequence numbers.
//
// Advance atomically sets the counter to max(current, floor)+1 and returns the new
// value, so two concurrent callers never receive the same number.
type ICodeSequence interface {
	Advance(ctx context.Context, key string, floor int) (int, error)
}
