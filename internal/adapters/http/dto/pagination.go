package dto

// PageRequest carries the offset pagination parameters from the query
// string. Bounds are enforced by the domain rules, not here; this type
// only applies defaults for omitted values.
type PageRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize fills in defaults for omitted parameters. Out-of-range
// values are left alone so validation can reject them.
func (p *PageRequest) Normalize(defaultPageSize int) {
	if p.Page == 0 {
		p.Page = 1
	}

	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}
}

// Paged is the payload shape for paginated collections.
type Paged[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// NewPaged builds a page payload. TotalPages is ceil(totalCount/pageSize).
func NewPaged[T any](items []T, page, pageSize, totalCount int) *Paged[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return &Paged[T]{
		Data:       items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
