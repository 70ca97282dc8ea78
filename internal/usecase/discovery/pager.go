package discovery

import "github.com/srikanthreddy78/SkillSwapApp/internal/domain"

// PageSize is the fixed number of users per discovery page.
const PageSize = 10

// Pager describes bounded page navigation over a filtered result set.
// Pages run [1, TotalPages]; TotalPages is at least 1 even for an empty
// result set.
type Pager struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Next advances one page, staying on the last page at the boundary.
func (p Pager) Next() Pager {
	if p.Page < p.TotalPages {
		p.Page++
	}
	return p
}

// Prev retreats one page, staying on page 1 at the boundary.
func (p Pager) Prev() Pager {
	if p.Page > 1 {
		p.Page--
	}
	return p
}

// Paginate slices users into the requested page. A page outside
// [1, TotalPages] yields domain.ErrPageOutOfRange; page 1 is always valid.
func Paginate(users []*domain.User, page int) ([]*domain.User, Pager, error) {
	total := len(users)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 || page > totalPages {
		return nil, Pager{}, domain.ErrPageOutOfRange
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}

	pager := Pager{Page: page, TotalPages: totalPages, TotalItems: total}
	return users[start:end], pager, nil
}
