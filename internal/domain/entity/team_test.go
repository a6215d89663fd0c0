package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func member(id, name string, pos Position, domain *string) *TeamMember {
	return &TeamMember{ID: id, Name: name, Position: pos, Domain: domain}
}

func TestBuildHierarchy_Empty(t *testing.T) {
	h := BuildHierarchy(nil)

	assert.Nil(t, h.President)
	assert.Empty(t, h.Dignitaries)
	assert.Empty(t, h.VicePresidents)
	assert.Empty(t, h.DomainTeams)
	assert.True(t, h.IsEmpty())
}

func TestBuildHierarchy_DomainTeams(t *testing.T) {
	m1 := member("m1", "Asha", PositionLead, strPtr("Tech"))
	m2 := member("m2", "Bilal", PositionCoordinator, strPtr("Tech"))
	m3 := member("m3", "Chen", PositionCoordinator, nil)

	h := BuildHierarchy([]*TeamMember{m1, m2, m3})

	require.Len(t, h.DomainTeams, 2)
	assert.Equal(t, "Tech", h.DomainTeams[0].Domain)
	assert.Equal(t, []*TeamMember{m1}, h.DomainTeams[0].Leads)
	assert.Equal(t, []*TeamMember{m2}, h.DomainTeams[0].Coordinators)

	assert.Equal(t, DefaultDomain, h.DomainTeams[1].Domain)
	assert.Empty(t, h.DomainTeams[1].Leads)
	assert.NotNil(t, h.DomainTeams[1].Leads)
	assert.Equal(t, []*TeamMember{m3}, h.DomainTeams[1].Coordinators)
	assert.False(t, h.IsEmpty())
}

func TestBuildHierarchy_EmptyDomainGoesToGeneral(t *testing.T) {
	m1 := member("m1", "A", PositionLead, strPtr(""))
	m2 := member("m2", "B", PositionLead, strPtr("   "))
	m3 := member("m3", "C", PositionLead, nil)

	h := BuildHierarchy([]*TeamMember{m1, m2, m3})

	require.Len(t, h.DomainTeams, 1)
	team, ok := h.DomainTeam(DefaultDomain)
	require.True(t, ok)
	assert.Equal(t, []*TeamMember{m1, m2, m3}, team.Leads)
}

func TestBuildHierarchy_DomainOrderFollowsFirstEncounter(t *testing.T) {
	members := []*TeamMember{
		member("1", "A", PositionCoordinator, strPtr("Marketing")),
		member("2", "B", PositionLead, strPtr("Technical")),
		member("3", "C", PositionLead, strPtr("Marketing")),
		member("4", "D", PositionCoordinator, strPtr("Design")),
	}

	h := BuildHierarchy(members)

	var domains []string
	for _, dt := range h.DomainTeams {
		domains = append(domains, dt.Domain)
	}
	assert.Equal(t, []string{"Marketing", "Technical", "Design"}, domains)

	marketing, ok := h.DomainTeam("Marketing")
	require.True(t, ok)
	assert.Equal(t, "C", marketing.Leads[0].Name)
	assert.Equal(t, "A", marketing.Coordinators[0].Name)

	_, ok = h.DomainTeam("Finance")
	assert.False(t, ok)
}

func TestBuildHierarchy_DignitariesSorted(t *testing.T) {
	hod := member("hod", "Dr. Rao", PositionHeadOfDepartment, nil)
	principal := member("p", "Dr. Iyer", PositionPrincipal, nil)
	fc := member("fc", "Prof. Das", PositionFacultyCoordinator, nil)

	h := BuildHierarchy([]*TeamMember{hod, principal, fc})

	assert.Equal(t, []*TeamMember{principal, hod, fc}, h.Dignitaries)
	assert.Empty(t, h.DomainTeams)
}

func TestBuildHierarchy_DignitarySortIsStable(t *testing.T) {
	fc1 := member("fc1", "Zed", PositionFacultyCoordinator, nil)
	fc2 := member("fc2", "Amy", PositionFacultyCoordinator, nil)
	principal := member("p", "P", PositionPrincipal, nil)

	h := BuildHierarchy([]*TeamMember{fc1, fc2, principal})

	assert.Equal(t, []*TeamMember{principal, fc1, fc2}, h.Dignitaries)
}

func TestBuildHierarchy_VicePresidentsSortedByName(t *testing.T) {
	members := []*TeamMember{
		member("1", "riya", PositionVicePresident, nil),
		member("2", "Meera", PositionVicePresident, nil),
		member("3", "Arjun", PositionVicePresident, nil),
	}

	h := BuildHierarchy(members)

	var names []string
	for _, vp := range h.VicePresidents {
		names = append(names, vp.Name)
	}
	// сравнение с учётом регистра: заглавные раньше строчных
	assert.Equal(t, []string{"Arjun", "Meera", "riya"}, names)
}

func TestBuildHierarchy_FirstPresidentWins(t *testing.T) {
	first := member("p1", "First", PositionPresident, nil)
	second := member("p2", "Second", PositionPresident, nil)

	h := BuildHierarchy([]*TeamMember{first, second})

	assert.Same(t, first, h.President)
	assert.Equal(t, []*TeamMember{second}, h.ExtraPresidents)
	assert.Empty(t, h.VicePresidents)
}

func TestBuildHierarchy_UnrecognizedPositionExcluded(t *testing.T) {
	ghost := member("x", "Ghost", Position("Treasurer"), strPtr("Finance"))
	lead := member("l", "Lead", PositionLead, strPtr("Tech"))

	h := BuildHierarchy([]*TeamMember{ghost, lead, nil})

	assert.Equal(t, []*TeamMember{ghost}, h.Unrecognized)
	_, ok := h.DomainTeam("Finance")
	assert.False(t, ok)
	require.Len(t, h.DomainTeams, 1)
}

func TestBuildHierarchy_EveryMemberPlacedOnce(t *testing.T) {
	members := []*TeamMember{
		member("1", "A", PositionPrincipal, nil),
		member("2", "B", PositionPresident, nil),
		member("3", "C", PositionVicePresident, nil),
		member("4", "D", PositionVicePresident, nil),
		member("5", "E", PositionLead, strPtr("Tech")),
		member("6", "F", PositionCoordinator, strPtr("Tech")),
		member("7", "G", PositionCoordinator, nil),
		member("8", "H", PositionFacultyCoordinator, nil),
		member("9", "I", PositionHeadOfDepartment, strPtr("Tech")),
	}

	h := BuildHierarchy(members)

	seen := map[string]int{}
	for _, m := range h.Dignitaries {
		seen[m.ID]++
	}
	if h.President != nil {
		seen[h.President.ID]++
	}
	for _, m := range h.VicePresidents {
		seen[m.ID]++
	}
	for _, dt := range h.DomainTeams {
		for _, m := range dt.Leads {
			seen[m.ID]++
		}
		for _, m := range dt.Coordinators {
			seen[m.ID]++
		}
	}

	require.Len(t, seen, len(members))
	for id, count := range seen {
		assert.Equal(t, 1, count, "member %s placed %d times", id, count)
	}
}

func TestPosition(t *testing.T) {
	for _, p := range Positions {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, Position("lead").IsValid())
	assert.True(t, PositionPrincipal.IsDignitary())
	assert.False(t, PositionPresident.IsDignitary())
}
