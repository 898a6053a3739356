package player

import "sync"

// Request is one queued playback instruction: either a source path or the
// return-to-idle sentinel. A request is consumed exactly once, in FIFO
// order.
type Request struct {
	Path   string
	ToIdle bool
}

// ReturnToIdle returns the sentinel request that sends the engine back to
// the idle loop.
func ReturnToIdle() Request {
	return Request{ToIdle: true}
}

// requestQueue is an unbounded multi-producer/single-consumer FIFO.
// External callers push; only the render loop pops.
type requestQueue struct {
	mu    sync.Mutex
	items []Request
}

func (q *requestQueue) push(r Request) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, r)
}

// tryPop removes and returns the oldest request without blocking.
func (q *requestQueue) tryPop() (Request, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return Request{}, false
	}

	r := q.items[0]
	q.items = q.items[1:]

	return r, true
}

func (q *requestQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
