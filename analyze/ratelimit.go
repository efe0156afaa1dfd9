package analyze

import (
	"context"
	"strings"
	"sync"

	"github.com/readingassistant/digest"
	"golang.org/x/time/rate"
)

// DefaultDomainBurst is the number of back-to-back requests a site may
// receive before pacing starts.
const DefaultDomainBurst = 1

var _ digest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces a batch per site. Hosts that differ only in case, a
// "www." prefix or a trailing dot share one bucket, so a reading list that
// mixes example.com and www.example.com still hits that site at most rps
// times per second.
type DomainLimiter struct {
	rps   rate.Limit
	burst int

	mu    sync.Mutex
	sites map[string]*rate.Limiter
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each site after an initial burst. A burst below 1 is raised to 1.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	return &DomainLimiter{
		rps:   rate.Limit(rps),
		burst: max(burst, DefaultDomainBurst),
		sites: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.site(host).Wait(ctx)
}

func (d *DomainLimiter) site(host string) *rate.Limiter {
	key := SiteKey(host)

	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.sites[key]
	if !ok {
		l = rate.NewLimiter(d.rps, d.burst)
		d.sites[key] = l
	}
	return l
}

// SiteKey reduces a host name to the key its rate limit is tracked under.
func SiteKey(host string) string {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	return strings.TrimPrefix(host, "www.")
}
