// Package advisor turns a compliance report into prioritized, actionable
// recommendations for improving a habitat layout.
package advisor

import (
	"github.com/Miegu/Space-Architects/pkg/compliance"
)

// Priority ranks how urgently a recommendation should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Recommendation is one piece of advice tied to a compliance category.
type Recommendation struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Actions  []string `json:"actions"`
}

// group ties a set of compliance categories to the percentage threshold
// below which they trigger advice.
type group struct {
	threshold  float64
	priority   Priority
	categories []string
}

// Groups are evaluated in order: crew safety and mission viability first,
// then daily operations, then long-duration wellbeing.
var groups = []group{
	{
		threshold: 80,
		priority:  PriorityHigh,
		categories: []string{
			compliance.CategoryVolume,
			compliance.CategoryEssentialRooms,
			compliance.CategoryMedicalAccess,
		},
	},
	{
		threshold: 70,
		priority:  PriorityMedium,
		categories: []string{
			compliance.CategoryHygieneStations,
			compliance.CategoryAdjacencyConflicts,
		},
	},
	{
		threshold: 75,
		priority:  PriorityMedium,
		categories: []string{
			compliance.CategoryCrewQuarters,
			compliance.CategoryNoiseSeparation,
		},
	},
}

var actions = map[string][]string{
	compliance.CategoryVolume: {
		"add larger rooms to increase total pressurized volume",
		"reduce crew size or shorten the mission duration",
	},
	compliance.CategoryEssentialRooms: {
		"place one instance of each missing essential room type",
	},
	compliance.CategoryMedicalAccess: {
		"move the medical bay toward the center of the module",
		"relocate outlying rooms closer to the medical bay",
	},
	compliance.CategoryHygieneStations: {
		"add hygiene stations until there is one per three crew members",
	},
	compliance.CategoryAdjacencyConflicts: {
		"separate the galley and hygiene stations so they no longer touch",
	},
	compliance.CategoryCrewQuarters: {
		"add crew quarters until every crew member has private quarters",
	},
	compliance.CategoryNoiseSeparation: {
		"move exercise and maintenance areas at least 4 m from crew quarters",
	},
}

// Recommend derives advice from a compliance report. Categories scoring at
// or above their group threshold produce nothing; the rest are emitted in
// group order so the most critical advice comes first. A fully compliant
// layout yields an empty slice.
func Recommend(rep *compliance.Report) []Recommendation {
	var recs []Recommendation
	for _, g := range groups {
		for _, name := range g.categories {
			c, ok := rep.Categories[name]
			if !ok {
				continue
			}
			if c.Percentage >= g.threshold {
				continue
			}
			recs = append(recs, Recommendation{
				Category: name,
				Priority: g.priority,
				Message:  c.Message,
				Actions:  actions[name],
			})
		}
	}
	return recs
}
