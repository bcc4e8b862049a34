package enumerate

import (
	"time"

	"github.com/araddon/dateparse"
)

// ParseNewerThan parses the free-form date/time string accepted by the
// --newerthan flag. Strings without an explicit zone are interpreted in
// local time.
func ParseNewerThan(value string) (time.Time, error) {
	ts, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, &InvalidTimeError{Value: value, Cause: err}
	}
	return ts, nil
}
