package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// restarted.
const DefaultMaxPages = 75

// instance is one launched Chrome process and the pages open on it.
type instance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	active   int
	retired  bool
}

func (in *instance) shutdown() error {
	err := in.browser.Close()
	in.launcher.Kill()
	return err
}

// browserPool owns one live headless Chrome and replaces it every maxPages
// pages. A replaced browser is shut down once its last page is released.
// Chrome is launched and shut down without holding mu.
type browserPool struct {
	mu        sync.Mutex
	current   *instance
	pages     int
	maxPages  int
	recycling bool
	closed    bool
}

func newBrowserPool(maxPages int) (*browserPool, error) {
	in, err := launch()
	if err != nil {
		return nil, err
	}
	return &browserPool{current: in, maxPages: maxPages}, nil
}

// acquire returns the live browser and a func that must be called when the
// page is done. It returns a nil browser once the pool is closed.
func (p *browserPool) acquire() (*rod.Browser, func()) {
	p.recycleIfDue()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, func() {}
	}
	p.pages++

	in := p.current
	in.active++
	var once sync.Once
	return in.browser, func() {
		once.Do(func() { p.release(in) })
	}
}

func (p *browserPool) release(in *instance) {
	p.mu.Lock()
	in.active--
	done := in.retired && in.active == 0
	p.mu.Unlock()

	if done {
		_ = in.shutdown()
	}
}

func (p *browserPool) close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	in := p.current
	p.mu.Unlock()

	return in.shutdown()
}

func (p *browserPool) pid() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0
	}
	return p.current.launcher.PID()
}

// recycleIfDue swaps in a fresh browser once maxPages pages have been
// served. Only one caller launches at a time; the others keep using the
// current browser meanwhile. If the launch fails the old browser stays in
// service for another maxPages pages.
func (p *browserPool) recycleIfDue() {
	p.mu.Lock()
	due := !p.closed && !p.recycling && p.maxPages > 0 && p.pages >= p.maxPages
	if due {
		p.recycling = true
	}
	p.mu.Unlock()
	if !due {
		return
	}

	in, err := launch()

	p.mu.Lock()
	p.recycling = false
	if err != nil {
		p.pages = 0
		p.mu.Unlock()
		return
	}
	if p.closed {
		p.mu.Unlock()
		_ = in.shutdown()
		return
	}
	old := p.current
	p.current = in
	p.pages = 0
	old.retired = true
	idle := old.active == 0
	p.mu.Unlock()

	if idle {
		_ = old.shutdown()
	}
}

func launch() (*instance, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &instance{browser: browser, launcher: l}, nil
}
