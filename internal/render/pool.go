package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererPool reuses renderers per option set.
// A glamour.TermRenderer must not render concurrently, so renderers are
// checked out of a sync.Pool rather than shared.
type rendererPool struct {
	mu    sync.Mutex
	pools map[Options]*sync.Pool
}

var globalPool = &rendererPool{pools: make(map[Options]*sync.Pool)}

func (p *rendererPool) pool(opts Options) *sync.Pool {
	key := opts.key()

	p.mu.Lock()
	defer p.mu.Unlock()

	pool, ok := p.pools[key]
	if !ok {
		pool = &sync.Pool{}
		p.pools[key] = pool
	}
	return pool
}

func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	if r, ok := p.pool(opts).Get().(*glamour.TermRenderer); ok {
		return r, nil
	}
	return newRenderer(opts)
}

func (p *rendererPool) put(opts Options, r *glamour.TermRenderer) {
	if r != nil {
		p.pool(opts).Put(r)
	}
}

func (p *rendererPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pools)
}

func (p *rendererPool) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pools = make(map[Options]*sync.Pool)
}

func newRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(resolveStyle(opts.Style)),
		glamour.WithWordWrap(opts.Width),
		glamour.WithTableWrap(opts.TableWrap),
		glamour.WithInlineTableLinks(opts.InlineTableLinks),
	}
	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(rendererOpts...)
}
