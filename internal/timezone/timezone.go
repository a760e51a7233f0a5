package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Bogota"

const dateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today devolve a data civil de t no fuso da barbearia, em YYYY-MM-DD.
func Today(t time.Time, tz string) string {
	return t.In(Location(tz)).Format(dateLayout)
}
