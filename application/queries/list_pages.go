package queries

// ListPagesQuery returns every page for editor tooling. The dataset is
// bounded by the number of site pages, so there is no pagination.
type ListPagesQuery struct{}

// Validate implements bus.Query
func (q ListPagesQuery) Validate() error {
	return nil
}
