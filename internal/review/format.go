package review

import (
	"fmt"
	"strings"
)

// Arabic grammatical number forms for counted nouns. The dual form
// stands alone without a numeral; the paucal form covers 3 through 10;
// everything else takes the singular, with the accusative marker
// dropped above 99.
type countForms struct {
	singular string
	over99   string
	paucal   string
	dual     string
}

var (
	pageForms = countForms{singular: "صفحةً", over99: "صفحةٍ", paucal: "صفحاتٍ", dual: "صفحتين"}
	dayForms  = countForms{singular: "يومًا", over99: "يومٍ", paucal: "أيامٍ", dual: "يومين"}
)

func (f countForms) format(count int) string {
	switch {
	case count == 2:
		return f.dual
	case count >= 3 && count <= 10:
		return fmt.Sprintf("%d %s", count, f.paucal)
	case count > 99:
		return fmt.Sprintf("%d %s", count, f.over99)
	default:
		return fmt.Sprintf("%d %s", count, f.singular)
	}
}

// CountPages renders a page count with its correctly inflected noun,
// e.g. "صفحتين", "7 صفحاتٍ", "29 صفحةً".
func CountPages(count int) string { return pageForms.format(count) }

// CountDays renders a day count with its correctly inflected noun.
func CountDays(count int) string { return dayForms.format(count) }

// FormatSegments renders a segment list for display, e.g.
// "1 - 10 ، 21 - 30". Single-page segments print as a bare number.
func FormatSegments(segs []Segment) string {
	if len(segs) == 0 {
		return ""
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		if s.Start == s.End {
			parts[i] = fmt.Sprintf("%d", s.Start)
		} else {
			parts[i] = fmt.Sprintf("%d - %d", s.Start, s.End)
		}
	}
	return strings.Join(parts, " ، ")
}
