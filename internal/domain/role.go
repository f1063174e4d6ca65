package domain

import "encoding/json"

// Role is one career role in the pathways catalog (data/roles.json)
type Role struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Track       string   `json:"track"`
	Level       string   `json:"level,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Image       string   `json:"image"`
	ImageAlt    string   `json:"imageAlt,omitempty"`
	TimeToEntry string   `json:"timeToEntry,omitempty"`
	SalaryRange string   `json:"salaryRange,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Tools       []string `json:"tools,omitempty"`
}

// UnmarshalJSON decodes a role leniently, see looseString
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Role{
		ID:          looseString(raw["id"]),
		Title:       looseString(raw["title"]),
		Track:       looseString(raw["track"]),
		Level:       looseString(raw["level"]),
		Summary:     looseString(raw["summary"]),
		Image:       looseString(raw["image"]),
		ImageAlt:    looseString(raw["imageAlt"]),
		TimeToEntry: looseString(raw["timeToEntry"]),
		SalaryRange: looseString(raw["salaryRange"]),
		Skills:      looseStrings(raw["skills"]),
		Tools:       looseStrings(raw["tools"]),
	}
	return nil
}

// AllTracks is the filter value that disables track filtering
const AllTracks = "all"

// FindRole returns the role with the given id
func FindRole(roles []Role, id string) (Role, bool) {
	for _, role := range roles {
		if role.ID == id {
			return role, true
		}
	}
	return Role{}, false
}
