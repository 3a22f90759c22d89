package queries

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// GetPageByIDQuery fetches one page by its store id
type GetPageByIDQuery struct {
	PageID string `validate:"required"`
}

// Validate implements bus.Query
func (q GetPageByIDQuery) Validate() error {
	return utils.ValidateStruct(q)
}
