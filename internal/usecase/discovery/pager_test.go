package discovery

import (
	"errors"
	"fmt"
	"testing"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
)

func makeUsers(n int) []*domain.User {
	users := make([]*domain.User, n)
	for i := range users {
		users[i] = testUser(fmt.Sprintf("user-%02d", i))
	}
	return users
}

func TestPaginate(t *testing.T) {
	users := makeUsers(25)

	page1, pager, err := Paginate(users, 1)
	if err != nil {
		t.Fatalf("page 1: unexpected error %v", err)
	}
	if len(page1) != 10 {
		t.Errorf("page 1 has %d items, want 10", len(page1))
	}
	if pager.TotalPages != 3 || pager.TotalItems != 25 {
		t.Errorf("pager = %+v, want 3 pages over 25 items", pager)
	}
	if page1[0].DisplayName != "user-00" {
		t.Errorf("page 1 starts at %q, want user-00", page1[0].DisplayName)
	}

	page3, _, err := Paginate(users, 3)
	if err != nil {
		t.Fatalf("page 3: unexpected error %v", err)
	}
	if len(page3) != 5 {
		t.Errorf("page 3 has %d items, want 5", len(page3))
	}
	if page3[0].DisplayName != "user-20" {
		t.Errorf("page 3 starts at %q, want user-20", page3[0].DisplayName)
	}

	if _, _, err := Paginate(users, 4); !errors.Is(err, domain.ErrPageOutOfRange) {
		t.Errorf("page 4: got %v, want ErrPageOutOfRange", err)
	}
	if _, _, err := Paginate(users, 0); !errors.Is(err, domain.ErrPageOutOfRange) {
		t.Errorf("page 0: got %v, want ErrPageOutOfRange", err)
	}
	if _, _, err := Paginate(users, -1); !errors.Is(err, domain.ErrPageOutOfRange) {
		t.Errorf("page -1: got %v, want ErrPageOutOfRange", err)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, pager, err := Paginate(nil, 1)
	if err != nil {
		t.Fatalf("page 1 of empty set should be valid, got %v", err)
	}
	if len(page) != 0 {
		t.Errorf("empty set page 1 has %d items", len(page))
	}
	if pager.TotalPages != 1 || pager.TotalItems != 0 {
		t.Errorf("pager = %+v, want 1 page over 0 items", pager)
	}

	if _, _, err := Paginate(nil, 2); !errors.Is(err, domain.ErrPageOutOfRange) {
		t.Errorf("page 2 of empty set: got %v, want ErrPageOutOfRange", err)
	}
}

func TestPagerNavigation(t *testing.T) {
	p := Pager{Page: 1, TotalPages: 3, TotalItems: 25}

	p = p.Next()
	if p.Page != 2 {
		t.Errorf("after Next, page = %d, want 2", p.Page)
	}
	p = p.Next().Next() // second Next hits the boundary
	if p.Page != 3 {
		t.Errorf("Next past last page moved to %d, want 3", p.Page)
	}

	p = p.Prev().Prev().Prev() // third Prev hits the boundary
	if p.Page != 1 {
		t.Errorf("Prev before page 1 moved to %d, want 1", p.Page)
	}
}
