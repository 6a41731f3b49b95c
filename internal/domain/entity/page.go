package entity

// Page is one zero-based page of profiles.
type Page struct {
	Items      []Profile
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

// NewPage computes the page count for total items split into pages of size.
func NewPage(items []Profile, page, size int, total int64) *Page {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &Page{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
