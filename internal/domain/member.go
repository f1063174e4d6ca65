package domain

import "encoding/json"

// Member is one business listed in the chamber directory (data/members.json)
type Member struct {
	Name            string           `json:"name"`
	Image           string           `json:"image"`
	ImageAlt        string           `json:"imageAlt,omitempty"`
	MembershipLevel *MembershipLevel `json:"membershipLevel,omitempty"`
	Description     string           `json:"description,omitempty"`
	Address         string           `json:"address,omitempty"`
	City            string           `json:"city,omitempty"`
	State           string           `json:"state,omitempty"`
	Postal          string           `json:"postal,omitempty"`
	Phone           string           `json:"phone,omitempty"`
	Website         string           `json:"website,omitempty"`
	Founded         string           `json:"founded,omitempty"`
	Services        []string         `json:"services,omitempty"`
}

// Level returns the membership tier, or 0 when the record has none
func (m Member) Level() MembershipLevel {
	if m.MembershipLevel == nil {
		return 0
	}
	return *m.MembershipLevel
}

// HasLevel reports whether the record carries a membership tier at all
func (m Member) HasLevel() bool {
	return m.MembershipLevel != nil
}

// UnmarshalJSON decodes a member leniently, see looseString
func (m *Member) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Member{
		Name:            looseString(raw["name"]),
		Image:           looseString(raw["image"]),
		ImageAlt:        looseString(raw["imageAlt"]),
		MembershipLevel: looseLevel(raw["membershipLevel"]),
		Description:     looseString(raw["description"]),
		Address:         looseString(raw["address"]),
		City:            looseString(raw["city"]),
		State:           looseString(raw["state"]),
		Postal:          looseString(raw["postal"]),
		Phone:           looseString(raw["phone"]),
		Website:         looseString(raw["website"]),
		Founded:         looseString(raw["founded"]),
		Services:        looseStrings(raw["services"]),
	}
	return nil
}
