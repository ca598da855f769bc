package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

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

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today: meia-noite de hoje no timezone do serviço.
// Agendamentos são por data (sem hora), toda comparação usa este corte.
func Today(tz string) time.Time {
	return Truncate(NowIn(tz))
}

// Truncate normaliza para meia-noite preservando o location
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate interpreta "2006-01-02" no timezone do serviço
func ParseDate(tz string, raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, Location(tz))
}
