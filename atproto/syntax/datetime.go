package syntax

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Prefered atproto Datetime string syntax, for use with [time.Format].
const AtprotoDatetimeLayout = "2006-01-02T15:04:05.999Z"

var datetimeRegex = regexp.MustCompile(`^[0-9]{4}-[01][0-9]-[0-3][0-9]T[0-2][0-9]:[0-6][0-9]:[0-6][0-9](.[0-9]{1,20})?(Z|([+-][0-2][0-9]:[0-5][0-9]))$`)

// Datetime is an RFC-3339 / ISO-8601 timestamp string, as used in record "createdAt" fields.
type Datetime string

func ParseDatetime(raw string) (Datetime, error) {
	if len(raw) > 64 {
		return "", errors.New("Datetime too long (max 64 chars)")
	}
	if !datetimeRegex.MatchString(raw) {
		return "", errors.New("Datetime syntax didn't validate via regex")
	}
	if strings.HasSuffix(raw, "-00:00") {
		return "", errors.New("Datetime can't use '-00:00' for UTC timezone, must use '+00:00', per ISO-8601")
	}
	return Datetime(raw), nil
}

func (d Datetime) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, d.String())
}

// DatetimeFromTime formats t (converted to UTC) in the prefered syntax.
func DatetimeFromTime(t time.Time) Datetime {
	return Datetime(t.UTC().Format(AtprotoDatetimeLayout))
}

func DatetimeNow() Datetime {
	return DatetimeFromTime(time.Now())
}

func (d Datetime) String() string {
	return string(d)
}
