package editing

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// State is the lifecycle of one editable field
type State string

const (
	// StateViewing shows the committed value; no draft exists.
	StateViewing State = "viewing"
	// StateEditing holds a local draft that is not persisted yet.
	StateEditing State = "editing"
	// StateSaving is the window between submitting the draft and the
	// write outcome; input is rejected until the field settles.
	StateSaving State = "saving"
)

// SectionWriter is the single write path out of a field controller.
// *handlers.UpsertSectionHandler satisfies it.
type SectionWriter interface {
	Handle(ctx context.Context, cmd commands.UpsertSectionCommand) (*entities.Page, error)
}

// FieldController drives the edit lifecycle of one section field on
// one page. The committed value and the draft are kept apart: the draft
// only reaches storage through Save, and a failed save keeps the draft
// so nothing typed is lost.
type FieldController struct {
	pageID    string
	sectionID string
	role      auth.Role
	writer    SectionWriter
	logger    *zap.Logger

	mu      sync.Mutex
	state   State
	section valueobjects.Section
	draft   string
}

// NewFieldController starts in the viewing state over the given
// committed section value.
func NewFieldController(
	pageID, sectionID string,
	section valueobjects.Section,
	role auth.Role,
	writer SectionWriter,
	logger *zap.Logger,
) *FieldController {
	return &FieldController{
		pageID:    pageID,
		sectionID: sectionID,
		role:      role,
		writer:    writer,
		logger:    logger,
		state:     StateViewing,
		section:   section,
	}
}

// State returns the current lifecycle state
func (c *FieldController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Value returns what the field should render: the draft while editing
// or saving, the committed content otherwise.
func (c *FieldController) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateViewing {
		return c.section.Content
	}
	return c.draft
}

// Section returns the last committed section value
func (c *FieldController) Section() valueobjects.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.section.Clone()
}

// CanEdit reports whether this controller would accept Activate.
func (c *FieldController) CanEdit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role.CanEdit() && c.section.Editable
}

// Activate moves viewing to editing and seeds the draft with the
// committed content. Viewers and non-editable fields are rejected.
func (c *FieldController) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateViewing {
		return pkgerrors.NewConflictError("field is already being edited")
	}
	if !c.role.CanEdit() {
		return pkgerrors.NewForbiddenError("role cannot edit content")
	}
	if !c.section.Editable {
		return pkgerrors.NewForbiddenError("section is not editable")
	}

	c.draft = c.section.Content
	c.state = StateEditing
	return nil
}

// SetDraft replaces the draft text. Only valid while editing; input
// during a save is rejected rather than silently dropped.
func (c *FieldController) SetDraft(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditing {
		return pkgerrors.NewConflictError("field is not in editing state")
	}
	c.draft = text
	return nil
}

// Cancel discards the draft and returns to viewing. A save in flight
// cannot be cancelled.
func (c *FieldController) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditing {
		return pkgerrors.NewConflictError("field is not in editing state")
	}
	c.draft = ""
	c.state = StateViewing
	return nil
}

// Save submits the draft through exactly one upsert. Success commits
// the value and returns to viewing; failure returns to editing with the
// draft intact so the user can retry or copy their text out.
func (c *FieldController) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateEditing {
		c.mu.Unlock()
		return pkgerrors.NewConflictError("field is not in editing state")
	}
	draft := c.draft
	c.state = StateSaving
	c.mu.Unlock()

	page, err := c.writer.Handle(ctx, commands.UpsertSectionCommand{
		PageID:    c.pageID,
		SectionID: c.sectionID,
		Patch:     valueobjects.SectionPatch{Content: &draft},
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Warn("field save failed",
			zap.String("page_id", c.pageID),
			zap.String("section_id", c.sectionID),
			zap.Error(err))
		c.draft = draft
		c.state = StateEditing
		return err
	}

	if section, ok := page.Section(c.sectionID); ok {
		c.section = section
	} else {
		c.section.Content = draft
	}
	c.draft = ""
	c.state = StateViewing
	return nil
}

// Apply feeds a fresh page snapshot into the controller, typically from
// a sync channel. The committed value follows the snapshot; an active
// draft is never clobbered by remote changes.
func (c *FieldController) Apply(page *entities.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if page == nil {
		return
	}
	if section, ok := page.Section(c.sectionID); ok {
		c.section = section
	}
}
