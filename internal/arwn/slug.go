package arwn

import "strings"

// Slugify lower-cases a display name and collapses every run of
// non-alphanumeric characters into a single underscore, producing a
// stable, transport-safe fragment for entity identifiers.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingSep := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			if b.Len() > 0 {
				pendingSep = true
			}
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// EntityID derives the external identity for a sensor display name,
// e.g. EntityID("arwn", "Wind Speed") == "sensor.arwn_wind_speed".
func EntityID(prefix, name string) string {
	return "sensor." + prefix + "_" + Slugify(name)
}
