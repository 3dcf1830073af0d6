package domain

import "strings"

// DefaultStyle is the sentinel value meaning "leave this attribute unchanged".
const DefaultStyle = "default"

// Selection holds the three independent style axes chosen by the user.
type Selection struct {
	Hairstyle  string `json:"hairstyle"`
	BeardStyle string `json:"beardstyle"`
	HairColor  string `json:"haircolor"`
}

// DefaultSelection returns a selection with every axis on the sentinel value.
func DefaultSelection() Selection {
	return Selection{
		Hairstyle:  DefaultStyle,
		BeardStyle: DefaultStyle,
		HairColor:  DefaultStyle,
	}
}

// Normalize maps empty axis values back to the sentinel.
func (s Selection) Normalize() Selection {
	if strings.TrimSpace(s.Hairstyle) == "" {
		s.Hairstyle = DefaultStyle
	}
	if strings.TrimSpace(s.BeardStyle) == "" {
		s.BeardStyle = DefaultStyle
	}
	if strings.TrimSpace(s.HairColor) == "" {
		s.HairColor = DefaultStyle
	}
	return s
}

// IsDefault reports whether the value is the no-op sentinel.
func IsDefault(value string) bool {
	return strings.TrimSpace(value) == "" || strings.EqualFold(strings.TrimSpace(value), DefaultStyle)
}

// Catalog lists the suggested options per axis. The catalog is advisory: the
// service accepts free-form values so the UI can grow options without a
// redeploy.
type Catalog struct {
	Hairstyles  []string `json:"hairstyles"`
	BeardStyles []string `json:"beardstyles"`
	HairColors  []string `json:"haircolors"`
}

// DefaultCatalog returns the built-in style options shown by the UI.
func DefaultCatalog() Catalog {
	return Catalog{
		Hairstyles: []string{
			DefaultStyle,
			"Bald head, 0–2 mm length, completely shaved, clean and bold appearance;",
			"Buzz cut, 3–6 mm uniform length, low-maintenance military style;",
			"Crew cut, short back and sides with slightly longer top, classic neat look;",
			"Pompadour, long voluminous top swept back, short tapered sides;",
			"Undercut, disconnected long top with skin-faded sides;",
			"Man bun, shoulder-length hair tied back into a knot;",
			"Curly medium-length hair, natural loose curls with soft volume;",
		},
		BeardStyles: []string{
			DefaultStyle,
			"Clean shaven, completely smooth face with no facial hair;",
			"Stubble, 1–3 mm even shadow across jaw and chin;",
			"Full beard, dense and evenly trimmed, defined cheek and neck lines;",
			"Goatee, chin beard with moustache, cheeks shaved clean;",
			"Van Dyke, pointed chin beard with detached moustache;",
		},
		HairColors: []string{
			DefaultStyle,
			"Jet black",
			"Dark brown",
			"Chestnut brown",
			"Platinum blonde",
			"Ash grey",
			"Auburn red",
		},
	}
}
