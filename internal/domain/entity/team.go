package entity

import (
	"sort"
	"strings"
	"time"
)

// Position должность участника клуба
type Position string

const (
	PositionPrincipal          Position = "Principal"
	PositionHeadOfDepartment   Position = "Head of Department"
	PositionFacultyCoordinator Position = "Faculty Coordinator"
	PositionPresident          Position = "President"
	PositionVicePresident      Position = "Vice-President"
	PositionLead               Position = "Lead"
	PositionCoordinator        Position = "Coordinator"
)

// DefaultDomain направление для участников без указанного направления
const DefaultDomain = "General"

// Positions все допустимые должности в порядке отображения
var Positions = []Position{
	PositionPrincipal,
	PositionHeadOfDepartment,
	PositionFacultyCoordinator,
	PositionPresident,
	PositionVicePresident,
	PositionLead,
	PositionCoordinator,
}

// dignitaryRank порядок сортировки почётных участников
var dignitaryRank = map[Position]int{
	PositionPrincipal:          0,
	PositionHeadOfDepartment:   1,
	PositionFacultyCoordinator: 2,
}

// IsValid проверяет, что должность входит в допустимый набор
func (p Position) IsValid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// IsDignitary сообщает, относится ли должность к почётным
func (p Position) IsDignitary() bool {
	_, ok := dignitaryRank[p]
	return ok
}

type TeamMember struct {
	ID          string
	Name        string
	Position    Position
	Domain      *string
	ImageURL    *string
	LinkedInURL *string
	Email       *string
	DiscordURL  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DomainName возвращает направление участника или направление по умолчанию
func (m *TeamMember) DomainName() string {
	if m.Domain == nil {
		return DefaultDomain
	}
	if d := strings.TrimSpace(*m.Domain); d != "" {
		return d
	}
	return DefaultDomain
}

// DomainTeam руководители и координаторы одного направления
type DomainTeam struct {
	Domain       string
	Leads        []*TeamMember
	Coordinators []*TeamMember
}

// Hierarchy структура команды для страницы «Наша команда»
type Hierarchy struct {
	Dignitaries    []*TeamMember
	President      *TeamMember
	VicePresidents []*TeamMember
	DomainTeams    []*DomainTeam

	// ExtraPresidents президенты сверх первого, в иерархию не попадают
	ExtraPresidents []*TeamMember
	// Unrecognized участники с неизвестной должностью
	Unrecognized []*TeamMember
}

// IsEmpty сообщает, что показывать нечего
func (h *Hierarchy) IsEmpty() bool {
	return len(h.Dignitaries) == 0 &&
		h.President == nil &&
		len(h.VicePresidents) == 0 &&
		len(h.DomainTeams) == 0
}

// DomainTeam возвращает команду направления по имени
func (h *Hierarchy) DomainTeam(name string) (*DomainTeam, bool) {
	for _, t := range h.DomainTeams {
		if t.Domain == name {
			return t, true
		}
	}
	return nil, false
}

// BuildHierarchy раскладывает участников по уровням иерархии за один проход.
// При нескольких президентах побеждает первый, остальные попадают в ExtraPresidents.
func BuildHierarchy(members []*TeamMember) *Hierarchy {
	h := &Hierarchy{
		Dignitaries:    []*TeamMember{},
		VicePresidents: []*TeamMember{},
		DomainTeams:    []*DomainTeam{},
	}
	index := make(map[string]*DomainTeam)

	domainTeam := func(name string) *DomainTeam {
		if t, ok := index[name]; ok {
			return t
		}
		t := &DomainTeam{
			Domain:       name,
			Leads:        []*TeamMember{},
			Coordinators: []*TeamMember{},
		}
		index[name] = t
		h.DomainTeams = append(h.DomainTeams, t)
		return t
	}

	for _, m := range members {
		if m == nil {
			continue
		}
		if m.Position.IsDignitary() {
			h.Dignitaries = append(h.Dignitaries, m)
			continue
		}
		switch m.Position {
		case PositionPresident:
			if h.President == nil {
				h.President = m
			} else {
				h.ExtraPresidents = append(h.ExtraPresidents, m)
			}
		case PositionVicePresident:
			h.VicePresidents = append(h.VicePresidents, m)
		case PositionLead:
			t := domainTeam(m.DomainName())
			t.Leads = append(t.Leads, m)
		case PositionCoordinator:
			t := domainTeam(m.DomainName())
			t.Coordinators = append(t.Coordinators, m)
		default:
			h.Unrecognized = append(h.Unrecognized, m)
		}
	}

	sort.SliceStable(h.Dignitaries, func(i, j int) bool {
		return dignitaryRank[h.Dignitaries[i].Position] < dignitaryRank[h.Dignitaries[j].Position]
	})
	sort.SliceStable(h.VicePresidents, func(i, j int) bool {
		return h.VicePresidents[i].Name < h.VicePresidents[j].Name
	})

	return h
}
