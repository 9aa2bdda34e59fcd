package todo

// Snapshot is the serialized bundle used for export, import, and remote
// sync.
//
// Export deliberately omits settings while the sync payload includes them;
// both shapes match the original file formats and must stay readable by it.
type Snapshot struct {
	Todos      []Task     `json:"todos"`
	Categories []Category `json:"categories,omitempty"`
	Settings   *Settings  `json:"settings,omitempty"`
}

// Snapshot returns a copy of the current state. Settings are included only
// when includeSettings is set (the sync payload carries them, the export
// format does not).
func (s *Store) Snapshot(includeSettings bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Todos:      append([]Task(nil), s.tasks...),
		Categories: append([]Category(nil), s.categories...),
	}
	if includeSettings {
		settings := s.settings
		snap.Settings = &settings
	}
	return snap
}

// Import replaces the task collection with the snapshot's. When the snapshot
// carries no categories the current categories are kept; when it carries no
// tasks the import is rejected and nothing changes. Imported data is
// normalized the same way loaded data is. Pulled settings, if present, are
// ignored.
func (s *Store) Import(snap Snapshot) error {
	if snap.Todos == nil {
		return ErrEmptySnapshot
	}

	tasks := append([]Task(nil), snap.Todos...)
	normalizeTasks(tasks)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = tasks
	if snap.Categories != nil {
		s.categories = append([]Category(nil), snap.Categories...)
	}
	s.saveDataLocked()
	return nil
}
