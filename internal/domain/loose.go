package domain

import (
	"encoding/json"
	"strconv"
)

// Records come from hand-edited JSON files. Optional fields tolerate either
// a string or a number, and a value of any other shape is treated as absent
// so one bad field never costs the whole listing.

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func looseStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := looseString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func looseLevel(raw json.RawMessage) *MembershipLevel {
	s := looseString(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	level := MembershipLevel(int(f))
	return &level
}
