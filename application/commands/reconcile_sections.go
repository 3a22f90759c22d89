package commands

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// ReconcileSectionsCommand merges the default section catalog into a
// page, materializing any defaults the page is missing. Used by setup
// and maintenance flows; running it twice leaves the page unchanged on
// the second pass.
type ReconcileSectionsCommand struct {
	Slug string `json:"slug" validate:"required,min=1,max=100"`

	// CreateIfMissing makes the handler create an unpublished page for
	// the slug when no document exists yet.
	CreateIfMissing bool `json:"create_if_missing"`
}

// Validate implements bus.Command
func (c ReconcileSectionsCommand) Validate() error {
	return utils.ValidateStruct(c)
}
