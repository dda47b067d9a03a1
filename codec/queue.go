package codec

// Queue is a front-consuming sequence of words. The zero value is an empty
// queue ready for PushBack.
type Queue struct {
	words []uint64
	head  int
}

// NewQueue returns a queue over words. The queue reads words in place; the
// caller must not modify them while the queue is in use.
func NewQueue(words []uint64) *Queue {
	return &Queue{words: words}
}

// Len returns the number of unconsumed words.
func (q *Queue) Len() int {
	return len(q.words) - q.head
}

// PopFront removes and returns the first word. ok is false if q is empty.
func (q *Queue) PopFront() (w uint64, ok bool) {
	if q.head >= len(q.words) {
		return 0, false
	}
	w = q.words[q.head]
	q.head++
	return w, true
}

// PushBack appends words to the end of the queue.
func (q *Queue) PushBack(words ...uint64) {
	q.words = append(q.words, words...)
}

// Words returns the unconsumed words without consuming them.
func (q *Queue) Words() []uint64 {
	return q.words[q.head:]
}

// Consumed returns the number of words popped so far.
func (q *Queue) Consumed() int {
	return q.head
}
