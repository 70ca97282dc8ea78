package discovery

import (
	"strings"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
)

// ApplyFilters narrows candidates to the displayable result set. Stages run
// in order: skill+role, free text, radius. The input order is preserved, no
// sorting is applied, and the output is recomputed from scratch on every
// call, so identical inputs always produce identical output.
func ApplyFilters(candidates []*domain.User, filter domain.FilterState, self *geo.Coordinate) []*domain.User {
	result := filterBySkill(candidates, filter.Skill, filter.Role)
	result = filterByQuery(result, filter.Query)
	result = filterByRadius(result, filter, self)
	return result
}

func filterBySkill(users []*domain.User, skill string, role domain.RoleFilter) []*domain.User {
	filtered := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if matchesSkill(u, skill, role) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func matchesSkill(u *domain.User, skill string, role domain.RoleFilter) bool {
	if skill == "" || skill == domain.AllSkills {
		// No specific skill selected: the role filter alone applies.
		switch role {
		case domain.RoleTeaches:
			return len(u.SkillsTaught) > 0
		case domain.RoleLearns:
			return len(u.SkillsLearned) > 0
		default:
			return true
		}
	}

	switch role {
	case domain.RoleTeaches:
		return u.TeachesSkill(skill)
	case domain.RoleLearns:
		return u.LearnsSkill(skill)
	default:
		return u.TeachesSkill(skill) || u.LearnsSkill(skill)
	}
}

func filterByQuery(users []*domain.User, query string) []*domain.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}

	filtered := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if matchesQuery(u, q) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func matchesQuery(u *domain.User, q string) bool {
	if strings.Contains(strings.ToLower(u.DisplayName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(u.Email), q) {
		return true
	}
	if u.Bio != nil && strings.Contains(strings.ToLower(*u.Bio), q) {
		return true
	}
	for _, s := range u.SkillsTaught {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	for _, s := range u.SkillsLearned {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// filterByRadius drops candidates outside the configured radius. The stage
// is skipped entirely when the filter is off or the current user's own
// coordinate is unknown; candidates without a coordinate are dropped only
// when the stage is active.
// DefaultRadiusKm applies when the radius filter is on but no radius was
// chosen.
const DefaultRadiusKm = 10

func filterByRadius(users []*domain.User, filter domain.FilterState, self *geo.Coordinate) []*domain.User {
	if !filter.RadiusEnabled || self == nil {
		return users
	}

	radius := filter.RadiusKm
	if radius <= 0 {
		radius = DefaultRadiusKm
	}

	filtered := make([]*domain.User, 0, len(users))
	for _, u := range users {
		coord := u.Coordinate()
		if coord == nil {
			continue
		}
		if geo.Distance(*self, *coord) <= float64(radius) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
