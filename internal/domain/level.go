package domain

type MembershipLevel int

const (
	LevelMember MembershipLevel = 1
	LevelSilver MembershipLevel = 2
	LevelGold   MembershipLevel = 3
)

// SpotlightMinLevel is the lowest tier eligible for the home page spotlight
const SpotlightMinLevel = LevelSilver

var levelLabels = map[MembershipLevel]string{
	LevelMember: "Member",
	LevelSilver: "Silver",
	LevelGold:   "Gold",
}

// Label returns the badge text for the level, "Member" for unknown tiers
func (l MembershipLevel) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return "Member"
}
