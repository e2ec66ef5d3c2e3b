package facilities

import (
	"regexp"
	"strings"
)

var upperCourtPattern = regexp.MustCompile(`^(.*) Upper Court \d+\s*$`)

// suffixPatterns are applied in order, each removing at most one match
var suffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(` Tennis Court \d+\s*$`),
	regexp.MustCompile(` Outdoor Tennis Court \d+\s*$`),
	regexp.MustCompile(` Court \d+\s*$`),
}

// ExtractParkName derives the facility (park) name from a raw court title.
// Special cases run before generic suffix stripping.
func ExtractParkName(title string) string {
	switch {
	case strings.Contains(title, "Jefferson Park Lid"):
		return "Jefferson Park"
	case strings.Contains(title, "Volunteer Park"):
		return "Volunteer Park"
	}

	if m := upperCourtPattern.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1]) + " Upper Courts"
	}

	name := title
	for _, p := range suffixPatterns {
		if loc := p.FindStringIndex(name); loc != nil {
			name = name[:loc[0]] + name[loc[1]:]
		}
	}

	return strings.TrimSpace(name)
}
