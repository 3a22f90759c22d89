package config

// DomainConfig holds tunable business rules for the content domain
type DomainConfig struct {
	MaxSectionsPerPage int
	MaxContentLength   int
	MaxMetadataEntries int
	MinSlugLength      int
	MaxSlugLength      int
	MaxTitleLength     int
	AllowEmptyContent  bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxSectionsPerPage: 200,
		MaxContentLength:   100000,
		MaxMetadataEntries: 50,
		MinSlugLength:      1,
		MaxSlugLength:      100,
		MaxTitleLength:     300,
		AllowEmptyContent:  true,
	}
}
