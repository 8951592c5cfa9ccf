// Package task holds the task records, their persistence, and the derived
// display computations (priority badges, countdowns, month stats).
package task

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Task is one entry of the planner, bound to a single calendar day by its
// canonical YYYY-MM-DD date key. The ID is unique and never changes.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Filter restricts the selected day's tasks by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Apply returns the tasks kept by the filter, preserving order.
func (f Filter) Apply(tasks []Task) []Task {
	if f == FilterAll || f == "" {
		return tasks
	}
	kept := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if (f == FilterCompleted) == t.Completed {
			kept = append(kept, t)
		}
	}
	return kept
}

// Next cycles all -> pending -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterPending:
		return FilterCompleted
	case FilterCompleted:
		return FilterAll
	default:
		return FilterPending
	}
}

// KV is the persistence boundary: an opaque byte store keyed by string.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// SchemaVersion tags the persisted blob layout.
const SchemaVersion = 1

const storageKey = "tasks"

type taskFile struct {
	SchemaVersion int    `json:"schema_version"`
	Tasks         []Task `json:"tasks"`
}

// Store is the single source of truth for task records. It keeps tasks in
// insertion order; edits replace in place and deletions remove by id. Every
// mutation is persisted before the caller renders, so a mutation's error
// means the in-memory state is ahead of the stored state.
type Store struct {
	kv     KV
	tasks  []Task
	lastID int64
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted blob. A missing key, unreadable store, malformed
// JSON, or schema-invalid content all yield an empty task list; startup never
// fails on bad stored data.
func (s *Store) Load() {
	s.tasks = nil
	data, ok, err := s.kv.Get(storageKey)
	if err != nil || !ok {
		return
	}
	s.tasks = decode(data)
}

// Save persists the current task list. The in-memory list is left intact on
// failure so the caller can warn without losing local state.
func (s *Store) Save() error {
	data, err := json.Marshal(taskFile{SchemaVersion: SchemaVersion, Tasks: s.tasks})
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := s.kv.Set(storageKey, data); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// decode accepts the versioned blob, upgrading the legacy bare-array form,
// and returns nil for anything that fails schema validation.
func decode(data []byte) []Task {
	var f taskFile
	if err := json.Unmarshal(data, &f); err != nil || f.SchemaVersion != SchemaVersion {
		var legacy []Task
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil
		}
		f = taskFile{SchemaVersion: SchemaVersion, Tasks: legacy}
	}
	if f.Tasks == nil {
		f.Tasks = []Task{}
	}
	if !validate(f) {
		return nil
	}
	return f.Tasks
}

// Tasks returns the full ordered task list.
func (s *Store) Tasks() []Task {
	return s.tasks
}

// ByDate returns the tasks whose date equals the given canonical key,
// in store order.
func (s *Store) ByDate(dateKey string) []Task {
	var day []Task
	for _, t := range s.tasks {
		if t.Date == dateKey {
			day = append(day, t)
		}
	}
	return day
}

// Create appends a new incomplete task for the given date key and persists.
func (s *Store) Create(text, dateKey string) (Task, error) {
	t := Task{
		ID:   s.newID(),
		Text: text,
		Date: dateKey,
	}
	s.tasks = append(s.tasks, t)
	return t, s.Save()
}

// Update replaces the text of the matching task, leaving every other field
// untouched. Unknown ids are a no-op; the task may have been deleted since
// the edit began.
func (s *Store) Update(id, text string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Text = text
			return s.Save()
		}
	}
	return nil
}

// ToggleComplete flips the completion flag of the matching task.
func (s *Store) ToggleComplete(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.Save()
		}
	}
	return nil
}

// Delete removes the task with the given id.
func (s *Store) Delete(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.Save()
		}
	}
	return nil
}

// newID derives an id from the creation time in milliseconds, bumped past
// the previous id when two creations land in the same millisecond.
func (s *Store) newID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
