package library

// WaitQueue holds unsatisfied borrow requests in arrival order.
type WaitQueue struct {
	entries []WaitlistEntry
	head    int
}

// NewWaitQueue returns an empty queue.
func NewWaitQueue() *WaitQueue { return &WaitQueue{} }

// Enqueue appends a request at the tail.
func (q *WaitQueue) Enqueue(userID, bookID int64) {
	q.entries = append(q.entries, WaitlistEntry{UserID: userID, BookID: bookID})
}

// Dequeue removes and returns the oldest request. ok is false when the
// queue is empty.
func (q *WaitQueue) Dequeue() (e WaitlistEntry, ok bool) {
	if q.IsEmpty() {
		return WaitlistEntry{}, false
	}
	e = q.entries[q.head]
	q.entries[q.head] = WaitlistEntry{}
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head == len(q.entries) {
		q.entries = q.entries[:0]
		q.head = 0
	} else if q.head > 32 && q.head*2 >= len(q.entries) {
		n := copy(q.entries, q.entries[q.head:])
		q.entries = q.entries[:n]
		q.head = 0
	}
	return e, true
}

// IsEmpty reports whether no requests are pending.
func (q *WaitQueue) IsEmpty() bool { return q.head == len(q.entries) }

// Len returns the number of pending requests.
func (q *WaitQueue) Len() int { return len(q.entries) - q.head }

// Snapshot returns a copy of the pending requests, oldest first.
func (q *WaitQueue) Snapshot() []WaitlistEntry {
	out := make([]WaitlistEntry, q.Len())
	copy(out, q.entries[q.head:])
	return out
}
