package mock

import (
	"context"

	"github.com/readingassistant/digest"
)

var _ digest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of digest.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
