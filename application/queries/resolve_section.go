package queries

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// ResolveSectionQuery returns the persisted section for (slug, id) or
// the catalog default when nothing is persisted yet. Resolution is a
// pure read: defaults are only materialized into storage by a
// subsequent upsert.
type ResolveSectionQuery struct {
	Slug          string `validate:"required,min=1,max=100"`
	SectionID     string `validate:"required,min=1,max=100"`
	PublishedOnly bool
}

// Validate implements bus.Query
func (q ResolveSectionQuery) Validate() error {
	return utils.ValidateStruct(q)
}
