package usecase

// PageInfo carries offset pagination counters for admin list endpoints.
type PageInfo struct {
	Count int
	Total int
	Page  int
	Pages int
}

func NewPageInfo(count, total, page, limit int) PageInfo {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PageInfo{Count: count, Total: total, Page: page, Pages: pages}
}

// Offset computes the slice start for 1-based pages.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
