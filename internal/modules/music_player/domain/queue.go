package domain

// Queue is an ordered list of upcoming tracks.
// It is FIFO, with front insertion for re-queueing tracks when going back.
type Queue struct {
	tracks []*Track
}

// NewQueue creates a new empty Queue.
func NewQueue() Queue {
	return Queue{tracks: make([]*Track, 0)}
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of queued tracks.
func (q *Queue) Len() int {
	return len(q.tracks)
}

// PushBack appends a track to the tail.
func (q *Queue) PushBack(track *Track) {
	q.tracks = append(q.tracks, track)
}

// PushFront inserts a track at the head.
func (q *Queue) PushFront(track *Track) {
	q.tracks = append([]*Track{track}, q.tracks...)
}

// PopFront removes and returns the head, or nil if the queue is empty.
func (q *Queue) PopFront() *Track {
	if q.IsEmpty() {
		return nil
	}
	head := q.tracks[0]
	q.tracks[0] = nil
	q.tracks = q.tracks[1:]
	return head
}

// Peek returns the head without removing it, or nil if the queue is empty.
func (q *Queue) Peek() *Track {
	if q.IsEmpty() {
		return nil
	}
	return q.tracks[0]
}

// List returns a copy of the queued tracks in order.
func (q *Queue) List() []*Track {
	result := make([]*Track, len(q.tracks))
	copy(result, q.tracks)
	return result
}

// Clear removes all tracks.
func (q *Queue) Clear() {
	q.tracks = make([]*Track, 0)
}
