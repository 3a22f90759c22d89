package queries

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// GetPageBySlugQuery fetches one page by its unique slug. Page-view
// consumers set PublishedOnly; editor tooling clears it to read
// unpublished drafts.
type GetPageBySlugQuery struct {
	Slug          string `validate:"required,min=1,max=100"`
	PublishedOnly bool
}

// Validate implements bus.Query
func (q GetPageBySlugQuery) Validate() error {
	return utils.ValidateStruct(q)
}
