package plan

import "slices"

// Weekday keys in week order. A plan may only use keys from this set.
const (
	Lunes     = "lunes"
	Martes    = "martes"
	Miercoles = "miercoles"
	Jueves    = "jueves"
	Viernes   = "viernes"
	Sabado    = "sabado"
	Domingo   = "domingo"
)

// WeekdayKeys is the canonical, fixed set of day keys.
var WeekdayKeys = []string{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

// IsWeekdayKey reports whether key belongs to the canonical weekday set.
func IsWeekdayKey(key string) bool {
	return slices.Contains(WeekdayKeys, key)
}

// DayRecord is the task bundle for one day of the launch week.
// Records handed out by a Store are copies; mutating one does not
// affect the store.
type DayRecord struct {
	Key       string
	Title     string
	Objective string
	Technical []string
	Marketing []string
}

func (d DayRecord) TechnicalCount() int { return len(d.Technical) }
func (d DayRecord) MarketingCount() int { return len(d.Marketing) }

// TotalCount returns the number of tasks across both lists.
func (d DayRecord) TotalCount() int {
	return len(d.Technical) + len(d.Marketing)
}

// clone returns a deep copy so stored slices are never shared.
func (d DayRecord) clone() DayRecord {
	d.Technical = slices.Clone(d.Technical)
	d.Marketing = slices.Clone(d.Marketing)
	return d
}
