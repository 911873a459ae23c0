package listing

// Ellipsis marks a gap in PageLabels.
const Ellipsis = 0

// maxPlainPages is the largest page count shown without condensing.
const maxPlainPages = 7

// Paginate returns the 1-based page of items, clipped to the list. Pages
// outside the list are empty.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := pageSize * (page - 1)
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

// TotalPages is the number of pages needed for total items.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// PageLabels returns the page buttons to show. Ellipsis entries are gaps.
func PageLabels(totalPages, current int) []int {
	if totalPages <= maxPlainPages {
		labels := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			labels = append(labels, i)
		}
		return labels
	}

	n := totalPages
	switch {
	case current <= 4:
		return []int{1, 2, 3, 4, 5, Ellipsis, n}
	case current >= n-3:
		return []int{1, Ellipsis, n - 4, n - 3, n - 2, n - 1, n}
	default:
		return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, n}
	}
}

// Window returns the 1-based first and last item numbers on page, as in
// "Showing 11 to 20 of 100". Both are zero for an empty list.
func Window(total, pageSize, page int) (from, to int) {
	if total <= 0 || pageSize <= 0 || page < 1 {
		return 0, 0
	}
	from = (page-1)*pageSize + 1
	to = page * pageSize
	if to > total {
		to = total
	}
	return from, to
}

// ClampPage keeps page within [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 || totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
