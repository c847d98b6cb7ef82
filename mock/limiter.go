package mock

import (
	"context"

	"github.com/fwojciec/spy"
)

var _ spy.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of spy.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
