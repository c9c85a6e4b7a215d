package service

import (
	"sync"

	"github.com/bimcat/catalog-api/internal/models"
)

// CatalogHub fans catalog snapshots out to any number of subscribers. It
// replaces the old page-level singleton cache: constructed once at startup,
// injected where needed, and notified after every successful mutation.
type CatalogHub struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]chan []models.Curso
}

// NewCatalogHub builds an empty hub.
func NewCatalogHub() *CatalogHub {
	return &CatalogHub{listeners: make(map[int]chan []models.Curso)}
}

// Subscribe registers a listener and returns its channel plus an unsubscribe
// function. The caller is expected to push the current snapshot immediately
// after subscribing (the service does this) so new listeners never start
// blind. The channel is buffered; a listener that falls behind loses
// intermediate snapshots, never the stream.
func (h *CatalogHub) Subscribe() (<-chan []models.Curso, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan []models.Curso, 4)
	h.listeners[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if existing, ok := h.listeners[id]; ok {
			delete(h.listeners, id)
			close(existing)
		}
	}
	return ch, unsubscribe
}

// Broadcast delivers the snapshot to every listener without blocking on slow
// consumers.
func (h *CatalogHub) Broadcast(cursos []models.Curso) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.listeners {
		select {
		case ch <- cursos:
		default:
		}
	}
}

// Deliver pushes a snapshot to a single channel without blocking. Used to
// seed a fresh subscriber with the current state.
func (h *CatalogHub) Deliver(ch <-chan []models.Curso, cursos []models.Curso) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, candidate := range h.listeners {
		if candidate == ch {
			select {
			case candidate <- cursos:
			default:
			}
			return
		}
	}
}

// Len reports the current subscriber count.
func (h *CatalogHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
