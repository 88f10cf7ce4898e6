package ert

import (
	"sort"
	"strings"

	"github.com/shenikar/safety_response_coordinator/internal/models"
)

// DefaultRequiredSkills - статическая таблица навыков, требуемых категорией, в порядке важности
func DefaultRequiredSkills() map[models.IncidentCategory][]string {
	return map[models.IncidentCategory][]string{
		models.CategorySOS:                {"Crisis Management", "Tactical Response", "De-escalation", "Emergency Medicine"},
		models.CategoryHarassment:         {"De-escalation", "Victim Support", "Crisis Management", "Legal Procedures"},
		models.CategoryAccident:           {"Emergency Medicine", "Accident Investigation", "Traffic Control", "First Aid"},
		models.CategoryMedical:            {"Emergency Medicine", "First Aid", "Patient Transport"},
		models.CategoryViolence:           {"Tactical Response", "De-escalation", "Emergency Medicine", "Crisis Management"},
		models.CategoryRouteDeviation:     {"GPS Tracking", "Tactical Response", "Negotiation"},
		models.CategoryFraud:              {"Fraud Investigation", "Digital Forensics"},
		models.CategoryPanic:              {"Crisis Management", "De-escalation", "Victim Support"},
		models.CategorySuspiciousBehavior: {"Surveillance", "Threat Assessment", "De-escalation"},
	}
}

// Matcher ранжирует сотрудников по профилю навыков категории.
// Не хранит состояния и не меняет статусы сотрудников.
type Matcher struct {
	required map[models.IncidentCategory][]string
}

func NewMatcher(required map[models.IncidentCategory][]string) Matcher {
	copied := make(map[models.IncidentCategory][]string, len(required))
	for category, skills := range required {
		copied[category] = dedupeSkills(skills)
	}
	return Matcher{required: copied}
}

// RequiredSkills возвращает требуемые навыки; для категории без записи - пустой список
func (m Matcher) RequiredSkills(category models.IncidentCategory) []string {
	return append([]string(nil), m.required[category]...)
}

// Recommend возвращает кандидатов: сначала AVAILABLE, внутри группы по убыванию релевантности.
// Сортировка стабильная, BUSY и DISPATCHED остаются в списке, но не выбираются для выезда.
func (m Matcher) Recommend(category models.IncidentCategory, roster []models.ERTStaffMember) []models.Recommendation {
	required := m.required[category]
	requiredSet := make(map[string]struct{}, len(required))
	for _, skill := range required {
		requiredSet[normalizeSkill(skill)] = struct{}{}
	}

	out := make([]models.Recommendation, len(roster))
	for i, member := range roster {
		matching := 0
		for _, skill := range dedupeSkills(member.Skills) {
			if _, ok := requiredSet[normalizeSkill(skill)]; ok {
				matching++
			}
		}

		var score float64
		if len(requiredSet) > 0 {
			score = float64(matching) / float64(len(requiredSet))
		}

		out[i] = models.Recommendation{
			Staff:          member.Clone(),
			MatchingSkills: matching,
			RelevanceScore: score,
			IsRelevant:     matching > 0,
			Selectable:     member.Status == models.StaffAvailable,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ai := out[i].Staff.Status == models.StaffAvailable
		aj := out[j].Staff.Status == models.StaffAvailable
		if ai != aj {
			return ai
		}
		return out[i].RelevanceScore > out[j].RelevanceScore
	})

	return out
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// dedupeSkills превращает список в множество, сохраняя порядок первого вхождения
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		key := normalizeSkill(skill)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}
