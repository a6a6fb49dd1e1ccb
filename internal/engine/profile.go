package engine

import (
	"strings"

	"github.com/mireldan/crystalquest/internal/models"
)

// ProfileEditor is a two-state editor over a profile: Viewing and Editing.
// Entering edit mode hands out a draft copy; Save commits a draft back and
// Cancel discards it, so the committed profile never sees partial edits.
type ProfileEditor struct {
	current models.Profile
	editing bool
}

// NewProfileEditor starts in the Viewing state with the given profile.
func NewProfileEditor(p models.Profile) *ProfileEditor {
	return &ProfileEditor{current: p}
}

// Current returns the last committed profile.
func (e *ProfileEditor) Current() models.Profile { return e.current }

// Editing reports whether the editor is in the Editing state.
func (e *ProfileEditor) Editing() bool { return e.editing }

// EnterEdit transitions Viewing -> Editing and returns a draft copy of the
// committed profile. Calling it while already editing returns a fresh draft.
func (e *ProfileEditor) EnterEdit() models.Profile {
	e.editing = true
	return e.current
}

// Cancel transitions back to Viewing, discarding whatever draft the caller held.
func (e *ProfileEditor) Cancel() {
	e.editing = false
}

// Save commits the draft and transitions back to Viewing. The join date is
// not editable and is preserved from the committed profile.
func (e *ProfileEditor) Save(draft models.Profile) error {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)
	if draft.Name == "" {
		return ErrEmptyName
	}
	draft.JoinDate = e.current.JoinDate
	e.current = draft
	e.editing = false
	return nil
}
