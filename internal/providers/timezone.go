package providers

import "time"

// ResolveTimezone returns a location for a tz string, or UTC if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
