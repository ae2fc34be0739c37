package dto

type Filter struct {
	Limit  int    `query:"limit"`
	Page   int    `query:"page"`
	Q      string `query:"q"`
	Status string `query:"status"`
}

// Skip returns the number of documents to skip for the requested page.
func (f Filter) Skip() int64 {
	if f.Limit == 0 || f.Page == 0 {
		return 0
	}

	return int64(f.Page-1) * int64(f.Limit)
}

type Pagination struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}

type PaginationMetadata struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
}
