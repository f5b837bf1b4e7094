package copyctl

import (
	"context"
	"errors"
	"fmt"
)

// Strategy writes text to a clipboard. Implementations report failure
// with an error; the controller never surfaces it.
type Strategy interface {
	Copy(ctx context.Context, text string) error
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(ctx context.Context, text string) error

// Copy calls f(ctx, text).
func (f StrategyFunc) Copy(ctx context.Context, text string) error {
	return f(ctx, text)
}

// ErrNoStrategy is returned by an empty Chain.
var ErrNoStrategy = errors.New("copyctl: no copy strategy configured")

// Chain is an ordered list of strategies tried in sequence until one
// succeeds.
type Chain []Strategy

// Copy tries each strategy in order. It returns the index of the first
// strategy that succeeded, or -1 and every failure joined.
func (c Chain) Copy(ctx context.Context, text string) (int, error) {
	if len(c) == 0 {
		return -1, ErrNoStrategy
	}
	var errs []error
	for i, s := range c {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		err := s.Copy(ctx, text)
		if err == nil {
			return i, nil
		}
		errs = append(errs, fmt.Errorf("strategy %d: %w", i, err))
	}
	return -1, errors.Join(errs...)
}
