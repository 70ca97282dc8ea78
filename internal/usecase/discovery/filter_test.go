package discovery

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
)

func strPtr(s string) *string     { return &s }
func floatPtr(v float64) *float64 { return &v }

func testUser(name string, opts ...func(*domain.User)) *domain.User {
	u := &domain.User{
		ID:          uuid.New(),
		DisplayName: name,
		Email:       name + "@example.com",
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func teaches(skills ...string) func(*domain.User) {
	return func(u *domain.User) { u.SkillsTaught = skills }
}

func learns(skills ...string) func(*domain.User) {
	return func(u *domain.User) { u.SkillsLearned = skills }
}

func at(lat, lon float64) func(*domain.User) {
	return func(u *domain.User) {
		u.ShareLocation = true
		u.LocationLat = floatPtr(lat)
		u.LocationLon = floatPtr(lon)
	}
}

func names(users []*domain.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.DisplayName
	}
	return out
}

func TestApplyFiltersSkillAndRole(t *testing.T) {
	candidates := []*domain.User{
		testUser("alice", teaches("Guitar"), learns("Spanish")),
		testUser("bob", teaches("Piano")),
		testUser("carol", learns("Guitar")),
	}

	tests := []struct {
		name   string
		filter domain.FilterState
		want   []string
	}{
		{
			name:   "specific skill with teach role",
			filter: domain.FilterState{Skill: "Guitar", Role: domain.RoleTeaches},
			want:   []string{"alice"},
		},
		{
			name:   "specific skill with learn role",
			filter: domain.FilterState{Skill: "Guitar", Role: domain.RoleLearns},
			want:   []string{"carol"},
		},
		{
			name:   "specific skill with any role",
			filter: domain.FilterState{Skill: "Guitar", Role: domain.RoleAny},
			want:   []string{"alice", "carol"},
		},
		{
			name:   "all skills with any role keeps everyone",
			filter: domain.FilterState{Skill: domain.AllSkills, Role: domain.RoleAny},
			want:   []string{"alice", "bob", "carol"},
		},
		{
			name:   "all skills with teach role requires a taught list",
			filter: domain.FilterState{Skill: domain.AllSkills, Role: domain.RoleTeaches},
			want:   []string{"alice", "bob"},
		},
		{
			name:   "all skills with learn role requires a learned list",
			filter: domain.FilterState{Skill: domain.AllSkills, Role: domain.RoleLearns},
			want:   []string{"alice", "carol"},
		},
		{
			name:   "empty skill behaves like all skills",
			filter: domain.FilterState{Skill: "", Role: domain.RoleTeaches},
			want:   []string{"alice", "bob"},
		},
		{
			name:   "unknown skill matches nobody",
			filter: domain.FilterState{Skill: "Juggling", Role: domain.RoleAny},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(ApplyFilters(candidates, tt.filter, nil))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApplyFilters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyFiltersFreeText(t *testing.T) {
	candidates := []*domain.User{
		testUser("Alice Johnson", teaches("Guitar")),
		testUser("Bob", teaches("Piano"), func(u *domain.User) {
			u.Bio = strPtr("I love woodworking and chess")
		}),
		testUser("Carol", learns("Photography"), func(u *domain.User) {
			u.Email = "carol.smith@skillswap.io"
		}),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches display name case-insensitively", query: "aLiCe", want: []string{"Alice Johnson"}},
		{name: "matches bio substring", query: "chess", want: []string{"Bob"}},
		{name: "matches email", query: "smith@", want: []string{"Carol"}},
		{name: "matches skill entries", query: "photo", want: []string{"Carol"}},
		{name: "whitespace-only query keeps everyone", query: "   ", want: []string{"Alice Johnson", "Bob", "Carol"}},
		{name: "query is trimmed before matching", query: "  guitar  ", want: []string{"Alice Johnson"}},
		{name: "no match", query: "violin", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := domain.FilterState{Skill: domain.AllSkills, Role: domain.RoleAny, Query: tt.query}
			got := names(ApplyFilters(candidates, filter, nil))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApplyFilters(query=%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestApplyFiltersRadius(t *testing.T) {
	self := &geo.Coordinate{Lat: 0, Lon: 0}

	// 0.0440 degrees of latitude ~= 4.89 km, 0.0459 ~= 5.10 km.
	near := testUser("near", teaches("Guitar"), at(0.0440, 0))
	far := testUser("far", teaches("Guitar"), at(0.0459, 0))
	hidden := testUser("hidden", teaches("Guitar"))

	candidates := []*domain.User{near, far, hidden}

	filter := domain.FilterState{
		Skill:         domain.AllSkills,
		Role:          domain.RoleAny,
		RadiusEnabled: true,
		RadiusKm:      5,
	}

	got := names(ApplyFilters(candidates, filter, self))
	want := []string{"near"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("radius filter = %v, want %v", got, want)
	}

	t.Run("stage skipped when self coordinate unknown", func(t *testing.T) {
		got := names(ApplyFilters(candidates, filter, nil))
		want := []string{"near", "far", "hidden"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("radius filter without self = %v, want %v", got, want)
		}
	})

	t.Run("stage skipped when disabled", func(t *testing.T) {
		disabled := filter
		disabled.RadiusEnabled = false
		got := names(ApplyFilters(candidates, disabled, self))
		want := []string{"near", "far", "hidden"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("disabled radius filter = %v, want %v", got, want)
		}
	})

	t.Run("partial coordinate treated as none", func(t *testing.T) {
		partial := testUser("partial", teaches("Guitar"))
		partial.ShareLocation = true
		partial.LocationLat = floatPtr(0.01)

		got := names(ApplyFilters([]*domain.User{partial}, filter, self))
		if len(got) != 0 {
			t.Errorf("partial coordinate should be dropped, got %v", got)
		}
	})
}

func TestApplyFiltersDeterministic(t *testing.T) {
	candidates := []*domain.User{
		testUser("alice", teaches("Guitar"), at(0.01, 0.01)),
		testUser("bob", learns("Guitar")),
		testUser("carol", teaches("Piano"), at(0.02, 0.02)),
	}
	filter := domain.FilterState{
		Skill:         "Guitar",
		Role:          domain.RoleAny,
		RadiusEnabled: true,
		RadiusKm:      10,
	}
	self := &geo.Coordinate{Lat: 0, Lon: 0}

	first := names(ApplyFilters(candidates, filter, self))
	second := names(ApplyFilters(candidates, filter, self))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("pipeline is not deterministic: %v vs %v", first, second)
	}
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	candidates := []*domain.User{
		testUser("zeta", teaches("Guitar")),
		testUser("alpha", teaches("Guitar")),
		testUser("mid", teaches("Guitar")),
	}
	filter := domain.FilterState{Skill: domain.AllSkills, Role: domain.RoleAny}

	got := names(ApplyFilters(candidates, filter, nil))
	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("input order not preserved: got %v, want %v", got, want)
	}
}
