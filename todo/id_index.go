package todo

import (
	"errors"
	"fmt"

	"github.com/mytodo/mytodo/internal/ids"
)

// ErrAmbiguousTaskIDPrefix is returned when an ID prefix matches multiple
// tasks.
var ErrAmbiguousTaskIDPrefix = errors.New("ambiguous task ID prefix")

// ResolveTaskID returns the full task ID for a (possibly abbreviated)
// prefix.
func (s *Store) ResolveTaskID(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTaskNotFound
	}

	s.mu.Lock()
	taskIDs := make([]string, 0, len(s.tasks))
	for _, task := range s.tasks {
		taskIDs = append(taskIDs, task.ID)
	}
	s.mu.Unlock()

	match, found, ambiguous := ids.MatchPrefix(taskIDs, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTaskIDPrefix, prefix)
	}
	return match, nil
}
