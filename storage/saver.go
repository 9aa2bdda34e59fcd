package storage

import "sync"

// Saver serializes writes to a Storage on a background goroutine.
//
// Save never blocks and never fails from the caller's point of view: a write
// error is logged and the stale value is simply replaced by the next save of
// the same key, so persistence lags behind memory instead of blocking it.
// Saves to the same key coalesce; only the latest value lands.
type Saver struct {
	st     Storage
	logger Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending map[string][]byte
	order   []string
	writing bool
	closed  bool
	done    chan struct{}
}

// NewSaver starts the background writer.
func NewSaver(st Storage, logger Logger) *Saver {
	if logger == nil {
		logger = NopLogger{}
	}
	s := &Saver{
		st:      st,
		logger:  logger,
		pending: make(map[string][]byte),
		done:    make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

// Save enqueues a write of value under key. Calling Save after Close is a
// no-op.
func (s *Saver) Save(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, queued := s.pending[key]; !queued {
		s.order = append(s.order, key)
	}
	s.pending[key] = value
	s.cond.Broadcast()
}

func (s *Saver) run() {
	defer close(s.done)

	s.mu.Lock()
	for {
		for len(s.order) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.order) == 0 && s.closed {
			s.mu.Unlock()
			return
		}

		key := s.order[0]
		s.order = s.order[1:]
		value := s.pending[key]
		delete(s.pending, key)
		s.writing = true
		s.mu.Unlock()

		err := s.st.Set(key, value)

		s.mu.Lock()
		s.writing = false
		if err != nil {
			s.logger.Logf("save %s: %v (will retry on next save)", key, err)
		}
		s.cond.Broadcast()
	}
}

// Flush blocks until every enqueued write has been attempted.
func (s *Saver) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.order) > 0 || s.writing {
		s.cond.Wait()
	}
}

// Close drains the queue and stops the background writer.
func (s *Saver) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
	<-s.done
}
