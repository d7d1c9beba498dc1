package timezone

import "time"

const DefaultTimezone = "UTC"

var fallback = DefaultTimezone

// SetDefault changes the location used when a request names none.
// Invalid names are ignored.
func SetDefault(tz string) {
	if IsValid(tz) {
		fallback = tz
	}
}

func Default() string {
	return fallback
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location returns tz, or the default location when tz is empty or unknown.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(fallback)
	if err != nil {
		return time.UTC
	}
	return loc
}
