package domain

// AllSkills is the sentinel skill-selector entry meaning "no skill
// constraint". It is always the first entry of the discovery options list.
const AllSkills = "All Skills"

// RoleFilter restricts discovery to users who teach or learn the selected
// skill.
type RoleFilter string

const (
	RoleAny     RoleFilter = "any"
	RoleTeaches RoleFilter = "teaches"
	RoleLearns  RoleFilter = "learns"
)

// FilterState is the full set of discovery filter inputs. It is held per
// request and never persisted.
type FilterState struct {
	Skill         string
	Role          RoleFilter
	Query         string
	RadiusEnabled bool
	RadiusKm      int
}
