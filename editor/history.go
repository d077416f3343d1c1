package editor

import "slices"

type (
	// Command is an undoable edit. TrackID names the track the edit belongs
	// to, so that the edits can be discarded when the track goes away.
	Command struct {
		Name    string
		TrackID string
		Undo    func()
		Redo    func()
	}

	// CommandStack records the edits made by the tracks.
	CommandStack interface {
		Push(c Command)
		Undo() bool
		Redo() bool
		CanUndo() bool
		CanRedo() bool
		// RemoveEvents discards all the commands of the given track.
		RemoveEvents(trackID string)
	}

	// History is the default CommandStack: an undo and a redo stack, both
	// bounded to maxUndo commands.
	History struct {
		undoStack []Command
		redoStack []Command
	}

	// HistoryModel groups the undo/redo Actions of the timeline.
	HistoryModel Timeline
)

const maxUndo = 256

func NewHistory() *History { return &History{} }

func (h *History) Push(c Command) {
	h.undoStack = pushBounded(h.undoStack, c)
	h.redoStack = h.redoStack[:0]
}

func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}
	c := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = pushBounded(h.redoStack, c)
	if c.Undo != nil {
		c.Undo()
	}
	return true
}

func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}
	c := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = pushBounded(h.undoStack, c)
	if c.Redo != nil {
		c.Redo()
	}
	return true
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

func (h *History) RemoveEvents(trackID string) {
	f := func(c Command) bool { return c.TrackID == trackID }
	h.undoStack = slices.DeleteFunc(h.undoStack, f)
	h.redoStack = slices.DeleteFunc(h.redoStack, f)
}

func pushBounded(s []Command, c Command) []Command {
	if len(s) >= maxUndo {
		copy(s, s[len(s)-maxUndo+1:])
		s = s[:maxUndo-1]
	}
	return append(s, c)
}

// History returns the History view of the timeline, containing the Actions
// to undo and redo edits.
func (t *Timeline) History() *HistoryModel { return (*HistoryModel)(t) }

// Undo returns an Action to undo the last edit.
func (m *HistoryModel) Undo() Action { return MakeAction((*historyUndo)(m)) }

type historyUndo HistoryModel

func (m *historyUndo) Enabled() bool { return m.stack.CanUndo() }
func (m *historyUndo) Do() {
	if m.stack.Undo() {
		(*Timeline)(m).Render()
	}
}

// Redo returns an Action to redo the last undone edit.
func (m *HistoryModel) Redo() Action { return MakeAction((*historyRedo)(m)) }

type historyRedo HistoryModel

func (m *historyRedo) Enabled() bool { return m.stack.CanRedo() }
func (m *historyRedo) Do() {
	if m.stack.Redo() {
		(*Timeline)(m).Render()
	}
}
