package queue

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"bayshore/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// LeadQueue fans captured leads out to subscribers (notifiers, back-office
// hooks). Pushes never block the request path: a full queue drops the event
// with an error rather than stalling the API response.
type LeadQueue struct {
	items    chan models.Lead
	done     chan struct{}
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func(models.Lead) error
}

// NewLeadQueue creates a new lead queue with the specified buffer size
func NewLeadQueue(bufferSize int, logger *logrus.Logger) *LeadQueue {
	return &LeadQueue{
		items:    make(chan models.Lead, bufferSize),
		done:     make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]func(models.Lead) error, 0),
	}
}

// Push adds a lead to the queue
func (q *LeadQueue) Push(lead models.Lead) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	// Non-blocking send to prevent deadlocks
	select {
	case q.items <- lead:
		q.logger.WithField("lead_id", lead.ID).Debug("Pushed lead to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each lead
func (q *LeadQueue) Subscribe(handler func(models.Lead) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing leads in the queue
func (q *LeadQueue) Start() {
	go q.process()
}

// process handles the queue processing loop
func (q *LeadQueue) process() {
	for {
		select {
		case <-q.done:
			return
		case lead := <-q.items:
			q.dispatch(lead)
		}
	}
}

// dispatch sends the lead to all subscribed handlers
func (q *LeadQueue) dispatch(lead models.Lead) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(lead); err != nil {
			q.logger.WithError(err).WithField("lead_id", lead.ID).Error("Handler failed to process lead")
		}
	}
}

// Close stops the queue and prevents new leads from being added
func (q *LeadQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	close(q.items)
	return nil
}

// Len returns the current number of leads in the queue
func (q *LeadQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed
func (q *LeadQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
