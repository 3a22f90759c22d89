package catalog

import (
	vo "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
)

// Default returns the site's built-in section catalog. Section ids are
// chosen by the rendering components and must stay stable across
// deploys; content here is only ever shown until an editor saves a
// replacement.
func Default() *Catalog {
	return NewCatalog(map[string][]vo.Section{
		"home": {
			{ID: "hero-title", Type: vo.SectionHeading, Content: "Welcome", Editable: true},
			{ID: "hero-subtitle", Type: vo.SectionParagraph, Content: "Software that moves your business forward.", Editable: true},
			{ID: "hero-image", Type: vo.SectionImage, Content: "/assets/hero.jpg", Editable: true,
				Metadata: map[string]interface{}{"imageAlt": "Team at work"}},
			{ID: "hero-cta", Type: vo.SectionCTA, Content: "Get started", Editable: true,
				Metadata: map[string]interface{}{"linkTarget": "/contact"}},
			{ID: "features-title", Type: vo.SectionHeading, Content: "What we do", Editable: true},
			{ID: "features-body", Type: vo.SectionParagraph, Content: "We design, build and operate digital products.", Editable: true},
		},
		"about": {
			{ID: "about-title", Type: vo.SectionHeading, Content: "About us", Editable: true},
			{ID: "about-body", Type: vo.SectionParagraph, Content: "We are a team of engineers and designers.", Editable: true},
			{ID: "about-image", Type: vo.SectionImage, Content: "/assets/office.jpg", Editable: true,
				Metadata: map[string]interface{}{"imageAlt": "Our office"}},
		},
		"contact": {
			{ID: "contact-title", Type: vo.SectionHeading, Content: "Contact", Editable: true},
			{ID: "contact-body", Type: vo.SectionParagraph, Content: "Tell us about your project.", Editable: true},
			{ID: "contact-button", Type: vo.SectionButton, Content: "Send message", Editable: false,
				Metadata: map[string]interface{}{"linkTarget": "mailto:hello@aitasol.com"}},
		},
	})
}
