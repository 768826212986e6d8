package presenter

import "strings"

// StatusSuffix is appended to sanitized field names by ElementID.
const StatusSuffix = "status"

// ElementID returns the DOM id of the status element for field.
// Runs of characters outside [A-Za-z0-9-] collapse into a single underscore,
// leading and trailing separators are dropped and StatusSuffix is appended.
func ElementID(field string) string {
	var b strings.Builder
	b.Grow(len(field) + len(StatusSuffix) + 1)

	lastWasSep := true // avoid a leading separator
	for _, r := range field {
		if isIDRune(r) {
			b.WriteRune(r)
			lastWasSep = false
			continue
		}
		if !lastWasSep {
			b.WriteByte('_')
			lastWasSep = true
		}
	}

	id := strings.TrimSuffix(b.String(), "_")
	if id == "" {
		return StatusSuffix
	}
	return id + "_" + StatusSuffix
}

func isIDRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}
