package commands

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// SavePageCommand creates a page when PageID is empty, otherwise
// updates the existing document. Timestamps are stamped by the
// repository side, never taken from the client.
type SavePageCommand struct {
	PageID         string `json:"page_id"`
	Slug           string `json:"slug" validate:"required,min=1,max=100"`
	Title          string `json:"title" validate:"max=300"`
	SEOTitle       string `json:"seo_title" validate:"max=300"`
	SEODescription string `json:"seo_description" validate:"max=1000"`
	Published      *bool  `json:"published"`
}

// Validate implements bus.Command
func (c SavePageCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// IsCreate reports whether this save creates a new document
func (c SavePageCommand) IsCreate() bool {
	return c.PageID == ""
}
