package prompt

import (
	"strings"
	"testing"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
)

func TestComposeAllDefault(t *testing.T) {
	got := Compose(domain.DefaultSelection())

	want := "Do not change the hairstyle. Keep the existing hairstyle exactly as it is.\n" +
		"Do not change the beard. Keep the existing beard exactly as it is.\n"
	if got != want {
		t.Fatalf("Compose() = %q, want %q", got, want)
	}
	if strings.Contains(got, "Change only") {
		t.Fatalf("default selection must not name a style: %q", got)
	}
}

func TestComposeBaldHeadExact(t *testing.T) {
	sel := domain.Selection{
		Hairstyle:  "Bald head, 0–2 mm length, completely shaved, clean and bold appearance;",
		BeardStyle: "default",
		HairColor:  "default",
	}

	got := Compose(sel)

	want := "Change only the hair to: Bald head, 0–2 mm length, completely shaved, clean and bold appearance;. " +
		"Keep the person's face, skin, eyes, expression, and all other features exactly the same. Do not alter anything else.\n" +
		"Do not change the beard. Keep the existing beard exactly as it is.\n"
	if got != want {
		t.Fatalf("Compose() = %q, want %q", got, want)
	}
}

func TestComposePerAxis(t *testing.T) {
	tests := []struct {
		name     string
		sel      domain.Selection
		contains []string
		excludes []string
	}{
		{
			name: "beard only",
			sel:  domain.Selection{Hairstyle: "default", BeardStyle: "Goatee, chin beard with moustache, cheeks shaved clean;", HairColor: "default"},
			contains: []string{
				"Change only the beard to: Goatee, chin beard with moustache, cheeks shaved clean;.",
				"Do not change the hairstyle.",
			},
			excludes: []string{"Change only the hair to:", "Change only the hair color to:"},
		},
		{
			name: "color only",
			sel:  domain.Selection{Hairstyle: "default", BeardStyle: "default", HairColor: "Platinum blonde"},
			contains: []string{
				"Change only the hair color to: Platinum blonde.",
				"Do not change the hairstyle.",
				"Do not change the beard.",
			},
			excludes: []string{"Change only the hair to:", "Change only the beard to:"},
		},
		{
			name: "all three set",
			sel:  domain.Selection{Hairstyle: "Buzz cut, 3–6 mm uniform length, low-maintenance military style;", BeardStyle: "Stubble, 1–3 mm even shadow across jaw and chin;", HairColor: "Jet black"},
			contains: []string{
				"Change only the hair to: Buzz cut",
				"Change only the beard to: Stubble",
				"Change only the hair color to: Jet black.",
			},
			excludes: []string{"Do not change the hairstyle.", "Do not change the beard."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.sel)
			for _, expect := range tt.contains {
				if !strings.Contains(got, expect) {
					t.Fatalf("prompt missing %q: %s", expect, got)
				}
			}
			for _, forbidden := range tt.excludes {
				if strings.Contains(got, forbidden) {
					t.Fatalf("prompt unexpectedly contains %q: %s", forbidden, got)
				}
			}
		})
	}
}

func TestComposeAxisOrder(t *testing.T) {
	sel := domain.Selection{Hairstyle: "Pompadour;", BeardStyle: "Full beard;", HairColor: "Auburn red"}
	got := Compose(sel)

	hair := strings.Index(got, "Change only the hair to:")
	beard := strings.Index(got, "Change only the beard to:")
	color := strings.Index(got, "Change only the hair color to:")
	if hair < 0 || beard < 0 || color < 0 {
		t.Fatalf("missing clause in %q", got)
	}
	if !(hair < beard && beard < color) {
		t.Fatalf("clauses out of order: hair=%d beard=%d color=%d", hair, beard, color)
	}
}

func TestComposeEmptyTreatedAsDefault(t *testing.T) {
	got := Compose(domain.Selection{}.Normalize())
	if got != Compose(domain.DefaultSelection()) {
		t.Fatalf("empty selection should compose like the default selection, got %q", got)
	}
}
