package valueobjects

import (
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// SectionType informs rendering only; the store does not validate it
// beyond non-emptiness on creation.
type SectionType string

const (
	SectionHeading   SectionType = "heading"
	SectionParagraph SectionType = "paragraph"
	SectionImage     SectionType = "image"
	SectionButton    SectionType = "button"
	SectionCTA       SectionType = "cta"
)

// Section is one named, typed content fragment belonging to a page.
// The ID is chosen by the calling UI code and stable across deploys.
type Section struct {
	ID       string                 `json:"id"`
	Type     SectionType            `json:"type"`
	Content  string                 `json:"content"`
	Editable bool                   `json:"editable"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// SectionPatch carries a partial update for a section. Nil fields are
// left untouched by the merge; metadata keys are merged, not replaced.
type SectionPatch struct {
	Type     *SectionType           `json:"type,omitempty"`
	Content  *string                `json:"content,omitempty"`
	Editable *bool                  `json:"editable,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NewSection creates a section with validation
func NewSection(id string, sectionType SectionType, content string) (Section, error) {
	if id == "" {
		return Section{}, pkgerrors.NewValidationError("section id cannot be empty")
	}
	return Section{
		ID:       id,
		Type:     sectionType,
		Content:  content,
		Editable: true,
	}, nil
}

// SectionFromPatch builds a brand-new section from a patch, applying the
// defaults the store guarantees for appended sections (editable unless
// the patch says otherwise).
func SectionFromPatch(id string, patch SectionPatch) Section {
	section := Section{
		ID:       id,
		Editable: true,
	}
	return section.Merge(patch)
}

// SeedFrom fills the patch's unset fields from a default section, so
// that applying the result to a page that has never persisted the
// section yields the default merged with the author's first write.
// Fields the patch already sets always win; metadata keys from the
// patch override the default's keys.
func (p SectionPatch) SeedFrom(def Section) SectionPatch {
	seeded := p
	if seeded.Type == nil {
		t := def.Type
		seeded.Type = &t
	}
	if seeded.Content == nil {
		c := def.Content
		seeded.Content = &c
	}
	if seeded.Editable == nil {
		e := def.Editable
		seeded.Editable = &e
	}
	if len(def.Metadata) > 0 {
		merged := make(map[string]interface{}, len(def.Metadata)+len(p.Metadata))
		for k, v := range def.Metadata {
			merged[k] = v
		}
		for k, v := range p.Metadata {
			merged[k] = v
		}
		seeded.Metadata = merged
	}
	return seeded
}

// Merge shallow-merges a patch into the section and returns the result.
// Fields absent from the patch keep their current value; metadata is
// merged key by key so updating content never erases image alt text or
// other auxiliary entries.
func (s Section) Merge(patch SectionPatch) Section {
	merged := s.Clone()

	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.Content != nil {
		merged.Content = *patch.Content
	}
	if patch.Editable != nil {
		merged.Editable = *patch.Editable
	}
	if len(patch.Metadata) > 0 {
		if merged.Metadata == nil {
			merged.Metadata = make(map[string]interface{}, len(patch.Metadata))
		}
		for k, v := range patch.Metadata {
			merged.Metadata[k] = v
		}
	}

	return merged
}

// FillFrom copies fields from a default section into this one without
// discarding existing metadata. Used by bulk reconciliation when a
// persisted section exists but its content is empty.
func (s Section) FillFrom(def Section) Section {
	filled := s.Clone()
	filled.Type = def.Type
	filled.Content = def.Content
	filled.Editable = def.Editable
	for k, v := range def.Metadata {
		if filled.Metadata == nil {
			filled.Metadata = make(map[string]interface{})
		}
		if _, exists := filled.Metadata[k]; !exists {
			filled.Metadata[k] = v
		}
	}
	return filled
}

// Clone returns a deep copy of the section
func (s Section) Clone() Section {
	clone := s
	if s.Metadata != nil {
		clone.Metadata = make(map[string]interface{}, len(s.Metadata))
		for k, v := range s.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}

// IsEmpty reports whether the section carries no content
func (s Section) IsEmpty() bool {
	return s.Content == ""
}
