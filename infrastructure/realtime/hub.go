package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// Hub is the in-process sync channel: it fans page snapshots out to
// slug subscribers. Each subscriber runs its own delivery goroutine
// behind a one-slot buffer, so a slow observer never blocks writers or
// other subscribers; it just skips intermediate snapshots and receives
// the latest one.
type Hub struct {
	pageRepo ports.PageRepository
	logger   *zap.Logger

	mu     sync.RWMutex
	subs   map[string]map[uint64]*subscriber
	fanout map[string]*sync.Mutex
	nextID uint64
	closed bool
}

type subscriber struct {
	observer ports.PageObserver
	updates  chan *entities.Page
	done     chan struct{}
}

// NewHub creates a hub reading snapshots from the given repository
func NewHub(pageRepo ports.PageRepository, logger *zap.Logger) *Hub {
	return &Hub{
		pageRepo: pageRepo,
		logger:   logger,
		subs:     make(map[string]map[uint64]*subscriber),
		fanout:   make(map[string]*sync.Mutex),
	}
}

// slugLock returns the lock that orders snapshot reads against their
// deliveries for one slug. Without it a subscription's initial snapshot
// could be read before a concurrent write, yet pushed after that
// write's fan-out, leaving the observer on the stale state for good.
func (h *Hub) slugLock(slug string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, ok := h.fanout[slug]
	if !ok {
		l = &sync.Mutex{}
		h.fanout[slug] = l
	}
	return l
}

// Subscribe registers an observer for a slug. The observer receives the
// current snapshot immediately, then a fresh one after every committed
// change, including changes the subscriber itself wrote. A nil snapshot
// means no published page matches the slug or the read failed.
func (h *Hub) Subscribe(slug string, observer ports.PageObserver) (ports.Unsubscribe, error) {
	if slug == "" {
		return nil, pkgerrors.NewValidationError("slug cannot be empty")
	}
	if observer == nil {
		return nil, pkgerrors.NewValidationError("observer cannot be nil")
	}

	sub := &subscriber{
		observer: observer,
		updates:  make(chan *entities.Page, 1),
		done:     make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, pkgerrors.NewInternalError("hub is closed")
	}
	id := h.nextID
	h.nextID++
	if h.subs[slug] == nil {
		h.subs[slug] = make(map[uint64]*subscriber)
	}
	h.subs[slug][id] = sub
	h.mu.Unlock()

	go sub.run()

	// The initial snapshot's read and push happen under the slug's
	// fan-out lock so a concurrent change notification cannot land
	// between them and then be replaced by this older snapshot.
	l := h.slugLock(slug)
	l.Lock()
	sub.push(h.snapshot(context.Background(), slug))
	l.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			if slugSubs, ok := h.subs[slug]; ok {
				delete(slugSubs, id)
				if len(slugSubs) == 0 {
					delete(h.subs, slug)
					delete(h.fanout, slug)
				}
			}
			h.mu.Unlock()
			close(sub.done)
		})
	}
	return unsubscribe, nil
}

// PageChanged rereads the slug once and fans the snapshot out to every
// subscriber. Implements ports.ChangeNotifier.
func (h *Hub) PageChanged(ctx context.Context, slug string) {
	h.mu.RLock()
	slugSubs := h.subs[slug]
	targets := make([]*subscriber, 0, len(slugSubs))
	for _, sub := range slugSubs {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	l := h.slugLock(slug)
	l.Lock()
	page := h.snapshot(ctx, slug)
	for _, sub := range targets {
		sub.push(page)
	}
	l.Unlock()
}

// Close tears down every subscription. Pending deliveries are dropped.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for slug, slugSubs := range h.subs {
		for id, sub := range slugSubs {
			close(sub.done)
			delete(slugSubs, id)
		}
		delete(h.subs, slug)
		delete(h.fanout, slug)
	}
}

// snapshot loads the current published page, mapping both not-found and
// read failures to nil so observers see one consistent signal.
func (h *Hub) snapshot(ctx context.Context, slug string) *entities.Page {
	page, err := h.pageRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		if !pkgerrors.IsNotFound(err) {
			h.logger.Warn("failed to load page snapshot",
				zap.String("slug", slug),
				zap.Error(err))
		}
		return nil
	}
	return page
}

func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		case page := <-s.updates:
			s.observer(page)
		}
	}
}

// push hands a snapshot to the delivery goroutine without blocking.
// When the slot is full the stale snapshot is replaced, so the observer
// always converges on the latest state.
func (s *subscriber) push(page *entities.Page) {
	for {
		select {
		case s.updates <- page:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}

var (
	_ ports.SyncChannel    = (*Hub)(nil)
	_ ports.ChangeNotifier = (*Hub)(nil)
)
