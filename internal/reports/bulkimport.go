package reports

import "strings"

// RosterEntry is one parsed line of a bulk roster import
type RosterEntry struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
}

// ParseBulkLines parses free-text roster lines into (lastName, firstName)
// pairs. A line with a comma reads "LastName, First Names"; without one,
// the last whitespace token is the last name. A single-token line yields
// that token as the last name and "-" as a placeholder first name. Blank
// lines are discarded.
func ParseBulkLines(text string) []RosterEntry {
	var entries []RosterEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var entry RosterEntry
		if comma := strings.Index(line, ","); comma >= 0 {
			entry.LastName = strings.TrimSpace(line[:comma])
			entry.FirstName = strings.TrimSpace(line[comma+1:])
		} else {
			tokens := strings.Fields(line)
			if len(tokens) > 1 {
				entry.LastName = tokens[len(tokens)-1]
				entry.FirstName = strings.Join(tokens[:len(tokens)-1], " ")
			} else {
				entry.LastName = line
				entry.FirstName = "-"
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
