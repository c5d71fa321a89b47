// Package history keeps a linear undo/redo log of plan snapshots. A snapshot
// covers walls and doors atomically, so undoing past a door commit removes the
// door together with any wall state it depended on.
package history

import "github.com/milk9111/floorplan/model"

// DefaultLimit caps the number of retained snapshots.
const DefaultLimit = 100

// Log is a linear snapshot history with a cursor. Recording while the cursor
// is not at the end truncates the redo branch first.
type Log struct {
	snapshots []model.Plan
	cursor    int
	limit     int
}

// NewLog seeds the history with the given base plan so the first undo can
// return to it.
func NewLog(base model.Plan, limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		snapshots: []model.Plan{base.Clone()},
		cursor:    0,
		limit:     limit,
	}
}

// Reset discards the whole log and starts over from a new base, used when an
// externally supplied plan replaces the current one.
func (l *Log) Reset(base model.Plan) {
	l.snapshots = []model.Plan{base.Clone()}
	l.cursor = 0
}

// Record appends a snapshot after a committed user mutation.
func (l *Log) Record(p model.Plan) {
	l.snapshots = append(l.snapshots[:l.cursor+1], p.Clone())
	if len(l.snapshots) > l.limit {
		l.snapshots = l.snapshots[1:]
	}
	l.cursor = len(l.snapshots) - 1
}

func (l *Log) CanUndo() bool { return l.cursor > 0 }

func (l *Log) CanRedo() bool { return l.cursor < len(l.snapshots)-1 }

// Undo steps the cursor back and returns a copy of that snapshot. The second
// return is false when already at the oldest snapshot.
func (l *Log) Undo() (model.Plan, bool) {
	if !l.CanUndo() {
		return model.Plan{}, false
	}
	l.cursor--
	return l.snapshots[l.cursor].Clone(), true
}

// Redo steps the cursor forward and returns a copy of that snapshot.
func (l *Log) Redo() (model.Plan, bool) {
	if !l.CanRedo() {
		return model.Plan{}, false
	}
	l.cursor++
	return l.snapshots[l.cursor].Clone(), true
}
