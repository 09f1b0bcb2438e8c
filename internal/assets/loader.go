package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/villagewalk/internal/logger"
)

// LoadFunc receives a finished load on the thread that calls Poll.
type LoadFunc func(m *Model, err error)

type result struct {
	path  string
	model *Model
	err   error
}

// Loader parses models on a worker pool and hands them back through Poll,
// so callers only touch scene and physics state from one goroutine.
type Loader struct {
	dir     string
	pool    *ants.Pool
	results chan result
	closed  chan struct{}
	once    sync.Once
	cache   *Cache
	log     *zap.Logger

	waiting map[string][]LoadFunc
	ready   []func()
	total   int
	done    int
}

// NewLoader creates a loader resolving paths against dir.
func NewLoader(dir string, workers int) (*Loader, error) {
	if workers < 1 {
		workers = 1
	}
	l := &Loader{
		dir:     dir,
		results: make(chan result, 16),
		closed:  make(chan struct{}),
		cache:   NewCache(),
		log:     logger.Named("assets"),
		waiting: make(map[string][]LoadFunc),
	}

	pool, err := ants.NewPool(workers,
		ants.WithPanicHandler(func(p interface{}) {
			l.log.Error("asset worker panicked", zap.Any("panic", p))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating asset pool: %w", err)
	}
	l.pool = pool
	return l, nil
}

// Load starts loading path. fn runs from a later Poll. Concurrent loads of
// the same path share one parse; finished loads are served from cache.
// Load and Poll must be called from the same goroutine.
func (l *Loader) Load(path string, fn LoadFunc) {
	l.total++
	if m, ok := l.cache.Get(path); ok {
		l.ready = append(l.ready, func() { l.complete(m, nil, fn) })
		return
	}

	if _, inFlight := l.waiting[path]; inFlight {
		l.waiting[path] = append(l.waiting[path], fn)
		return
	}
	l.waiting[path] = []LoadFunc{fn}

	full := filepath.Join(l.dir, path)
	err := l.pool.Submit(func() {
		m, err := ParseModel(full)
		select {
		case l.results <- result{path: path, model: m, err: err}:
		case <-l.closed:
		}
	})
	if err != nil {
		r := result{path: path, err: fmt.Errorf("scheduling load: %w", err)}
		l.ready = append(l.ready, func() { l.finish(r) })
	}
}

// Poll runs callbacks for every load finished since the last call and
// returns how many there were. It never blocks.
func (l *Loader) Poll() int {
	n := len(l.ready)
	ready := l.ready
	l.ready = nil
	for _, fn := range ready {
		fn()
	}

	for {
		select {
		case r := <-l.results:
			l.finish(r)
			n++
		default:
			return n
		}
	}
}

func (l *Loader) finish(r result) {
	fns := l.waiting[r.path]
	delete(l.waiting, r.path)

	if r.err != nil {
		l.log.Warn("error loading asset", zap.String("path", r.path), zap.Error(r.err))
	} else {
		l.cache.Set(r.path, r.model)
		l.log.Debug("asset loaded",
			zap.String("path", r.path),
			zap.Int("clips", len(r.model.Clips)),
			zap.Int("nodes", r.model.Nodes))
	}

	for _, fn := range fns {
		l.complete(r.model, r.err, fn)
	}
}

func (l *Loader) complete(m *Model, err error, fn LoadFunc) {
	l.done++
	l.log.Info(fmt.Sprintf("%d%% loaded", l.Progress()))
	fn(m, err)
}

// Progress returns finished loads as a percentage of requested ones.
func (l *Loader) Progress() int {
	if l.total == 0 {
		return 100
	}
	return l.done * 100 / l.total
}

// Pending returns the number of loads not yet delivered.
func (l *Loader) Pending() int {
	return l.total - l.done
}

// Cache returns the parsed model cache.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Close stops the workers. Undelivered loads are dropped.
func (l *Loader) Close() {
	l.once.Do(func() {
		close(l.closed)
		l.pool.Release()
	})
}
