package commands

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// UpsertSectionCommand mutates a single section's content or image
// without touching the rest of the page. Absent patch fields are
// preserved; an unknown section id appends a new section, seeded from
// its catalog default when one exists.
type UpsertSectionCommand struct {
	PageID    string                    `json:"page_id" validate:"required"`
	SectionID string                    `json:"section_id" validate:"required,min=1,max=100"`
	Patch     valueobjects.SectionPatch `json:"patch"`
}

// Validate implements bus.Command
func (c UpsertSectionCommand) Validate() error {
	return utils.ValidateStruct(c)
}
