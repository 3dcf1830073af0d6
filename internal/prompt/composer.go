package prompt

import (
	"strings"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
)

// The clause wording below is load-bearing: the generative model keys on the
// exact preservation phrasing, so changing any of these strings changes
// output quality. Keep them verbatim.
const (
	keepHairstyle = "Do not change the hairstyle. Keep the existing hairstyle exactly as it is."
	keepBeard     = "Do not change the beard. Keep the existing beard exactly as it is."
)

// Compose builds the instruction sent alongside the photo. The three axes are
// rendered independently and always in the same order: hair shape, then
// beard, then hair color. Every non-empty clause is followed by a line break.
func Compose(sel domain.Selection) string {
	var b strings.Builder
	for _, clause := range []string{
		hairClause(sel.Hairstyle),
		beardClause(sel.BeardStyle),
		colorClause(sel.HairColor),
	} {
		if clause == "" {
			continue
		}
		b.WriteString(clause)
		b.WriteString("\n")
	}
	return b.String()
}

func hairClause(style string) string {
	if domain.IsDefault(style) {
		return keepHairstyle
	}
	return "Change only the hair to: " + style +
		". Keep the person's face, skin, eyes, expression, and all other features exactly the same. Do not alter anything else."
}

func beardClause(style string) string {
	if domain.IsDefault(style) {
		return keepBeard
	}
	return "Change only the beard to: " + style +
		". Keep the person's face, skin, eyes, and expression exactly the same. Do not alter anything else."
}

// The default hair color emits no clause: when the hair clause already pins
// every other feature, restating the color reads as a contradiction to the
// model and degrades results.
func colorClause(color string) string {
	if domain.IsDefault(color) {
		return ""
	}
	return "Change only the hair color to: " + color +
		". Keep the person's face, skin, eyes, expression, and hairstyle shape exactly the same. Do not alter anything else."
}
