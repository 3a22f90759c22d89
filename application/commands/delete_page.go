package commands

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// DeletePageCommand removes the page entirely; there is no soft-delete.
// Deleting the whole page is the only way a section ever disappears.
type DeletePageCommand struct {
	PageID string `json:"page_id" validate:"required"`
}

// Validate implements bus.Command
func (c DeletePageCommand) Validate() error {
	return utils.ValidateStruct(c)
}
