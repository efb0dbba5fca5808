package domain

import (
	"math"
	"time"
)

// Sentinel filter values understood by the dashboard.
const (
	// AllStores widens a manager's store filter to every store.
	AllStores = "todas"
	// AllMonths disables month filtering entirely.
	AllMonths = "todos"
)

// KPIs are the four headline numbers of the dashboard plus the warning flag
// that accompanies the average score.
type KPIs struct {
	SurveyCount  int
	AvgScore     float64
	Alert        bool
	AvgDays      float64
	PendingCount int
}

// Dashboard is the output of the aggregation and filtering engine for one
// viewer and one filter selection.
type Dashboard struct {
	Months        []string
	SelectedMonth string
	KPIs          KPIs
	Records       []Survey
}

// MonthKey buckets a timestamp as "YYYY-MM" in the local calendar. El corte
// de mes es calendario local, no UTC: una encuesta de las 11 pm del 31 cuenta
// para el mes local en que se respondió.
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01")
}

// VisibleTo reduces records to what the viewer may see. Managers get the
// requested store (or all of them); everyone else gets their own store
// unconditionally, ignoring the filter.
func VisibleTo(records []Survey, viewer Viewer, storeFilter string) []Survey {
	visible := make([]Survey, 0, len(records))
	for _, record := range records {
		if viewer.Manager {
			if storeFilter != "" && storeFilter != AllStores && record.Store != storeFilter {
				continue
			}
		} else if record.Store != viewer.Store {
			continue
		}
		visible = append(visible, record)
	}
	return visible
}

// Months lists the distinct month buckets present, preserving fetch order.
// Records arrive newest-first, so the first entry is the newest month and
// doubles as the default selection.
func Months(records []Survey, loc *time.Location) []string {
	seen := make(map[string]struct{})
	months := make([]string, 0)
	for _, record := range records {
		key := MonthKey(record.CreatedAt, loc)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		months = append(months, key)
	}
	return months
}

// ComputeKPIs aggregates the filtered subset. Empty sets yield zeros, never
// NaN: the dashboard renders "0" rather than erroring on a quiet month.
func ComputeKPIs(records []Survey) KPIs {
	kpis := KPIs{SurveyCount: len(records)}

	var scoreSum float64
	var daysSum, completed int
	for _, record := range records {
		scoreSum += record.EffectiveScore()
		if record.Completed() {
			daysSum += record.DaysProcess
			completed++
		}
		if record.Status == StatusPending {
			kpis.PendingCount++
		}
	}

	if kpis.SurveyCount > 0 {
		kpis.AvgScore = round1(scoreSum / float64(kpis.SurveyCount))
	}
	if completed > 0 {
		kpis.AvgDays = round1(float64(daysSum) / float64(completed))
	}
	kpis.Alert = kpis.AvgScore < 4 && kpis.SurveyCount > 0

	return kpis
}

// BuildDashboard runs the full engine: visibility, month-list derivation,
// month filtering and KPI aggregation, in that order.
func BuildDashboard(records []Survey, viewer Viewer, selectedMonth, storeFilter string, loc *time.Location) Dashboard {
	visible := VisibleTo(records, viewer, storeFilter)
	months := Months(visible, loc)

	month := selectedMonth
	if month == "" && len(months) > 0 {
		month = months[0]
	}

	filtered := visible
	if month != "" && month != AllMonths {
		filtered = make([]Survey, 0, len(visible))
		for _, record := range visible {
			if MonthKey(record.CreatedAt, loc) == month {
				filtered = append(filtered, record)
			}
		}
	}

	return Dashboard{
		Months:        months,
		SelectedMonth: month,
		KPIs:          ComputeKPIs(filtered),
		Records:       filtered,
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
