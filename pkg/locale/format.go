package locale

import (
	"fmt"
	"time"
)

// Spanish (Argentina) names, lowercase as es-AR renders them.
var (
	weekdaysLong = [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

	weekdaysShort = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

	monthsLong = [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

func WeekdayShort(t time.Time) string {
	return weekdaysShort[t.Weekday()]
}

func WeekdayLong(t time.Time) string {
	return weekdaysLong[t.Weekday()]
}

func MonthLong(t time.Time) string {
	return monthsLong[t.Month()-1]
}

// ShortDate renders D/M/YYYY without zero padding, e.g. 5/1/2026.
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// LongDate renders e.g. "lunes, 20 de octubre".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s", WeekdayLong(t), t.Day(), MonthLong(t))
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
