package dto

type ProductFilters struct {
	Category    string `json:"category"`
	SearchQuery string `json:"query"` // title, category, description
	InStockOnly bool   `json:"inStockOnly"`
	Page        int    `json:"page"`
	PageSize    int    `json:"pageSize"`
}

// Normalize clamps paging to sane values. PageSize 0 means no paging.
func (f *ProductFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 0 {
		f.PageSize = 0
	}
}
