package appointment

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	DefaultDurationMinutes = 30
)

// SlotGrid é a grade fixa de meia hora, com pausa entre 12:30 e 14:00.
var SlotGrid = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
}

// ParseClock converte "HH:MM" em minutos desde a meia-noite.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(hm))
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func IsGridSlot(hm string) bool {
	for _, s := range SlotGrid {
		if s == hm {
			return true
		}
	}
	return false
}

// ParseDate é estrito: a data é gravada e comparada exatamente como veio,
// então espaços ou zeros faltando são rejeitados.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

func ValidDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}
