package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bogota = time.FixedZone("COT", -5*60*60)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 15, 0, 0, 0, bogota)
}

// fixtureRecords mimics the repository output: newest first.
func fixtureRecords() []Survey {
	return []Survey{
		{ID: "5", Store: "andino", GlobalScore: score(4.5), Status: StatusCompleted, DaysProcess: 8, CreatedAt: day(2026, time.April, 20)},
		{ID: "4", Store: "andino", GlobalScore: score(3.5), Status: StatusCompleted, DaysProcess: 12, CreatedAt: day(2026, time.April, 12)},
		{ID: "3", Store: "andino", Presentacion: 4, Status: StatusPending, CreatedAt: day(2026, time.April, 3)},
		{ID: "2", Store: "fontanar", GlobalScore: score(2.0), Status: StatusPending, CreatedAt: day(2026, time.April, 2)},
		{ID: "1", Store: "andino", GlobalScore: score(5.0), Status: StatusPending, CreatedAt: day(2026, time.March, 28)},
	}
}

func TestMonthKeyUsesLocalCalendar(t *testing.T) {
	// 2026-05-01 03:30 UTC todavía es 30 de abril en Bogotá.
	utcInstant := time.Date(2026, time.May, 1, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-04", MonthKey(utcInstant, bogota))
	assert.Equal(t, "2026-05", MonthKey(utcInstant, time.UTC))
}

func TestVisibleTo(t *testing.T) {
	records := fixtureRecords()

	t.Run("store account only sees its own store", func(t *testing.T) {
		viewer := NewViewerFromEmail("andino@rewax.co")
		visible := VisibleTo(records, viewer, "")
		require.Len(t, visible, 4)
		for _, record := range visible {
			assert.Equal(t, "andino", record.Store)
		}
	})

	t.Run("store filter cannot widen a store account", func(t *testing.T) {
		viewer := NewViewerFromEmail("andino@rewax.co")
		visible := VisibleTo(records, viewer, "fontanar")
		require.Len(t, visible, 4)
		for _, record := range visible {
			assert.Equal(t, "andino", record.Store)
		}
	})

	t.Run("manager sees everything with the all-stores filter", func(t *testing.T) {
		viewer := NewViewerFromEmail("gerencia@rewax.co")
		assert.Len(t, VisibleTo(records, viewer, AllStores), 5)
	})

	t.Run("manager narrows to one store", func(t *testing.T) {
		viewer := NewViewerFromEmail("gerencia@rewax.co")
		visible := VisibleTo(records, viewer, "fontanar")
		require.Len(t, visible, 1)
		assert.Equal(t, "2", visible[0].ID)
	})
}

func TestMonthsPreservesFetchOrder(t *testing.T) {
	months := Months(fixtureRecords(), bogota)
	assert.Equal(t, []string{"2026-04", "2026-03"}, months)
}

func TestComputeKPIs(t *testing.T) {
	t.Run("aggregates with the presentation fallback", func(t *testing.T) {
		records := []Survey{
			{GlobalScore: score(4.5), Status: StatusCompleted, DaysProcess: 8},
			{GlobalScore: score(3.5), Status: StatusCompleted, DaysProcess: 12},
			{Presentacion: 4, Status: StatusPending},
		}
		kpis := ComputeKPIs(records)
		assert.Equal(t, 3, kpis.SurveyCount)
		assert.Equal(t, 4.0, kpis.AvgScore)
		assert.Equal(t, 10.0, kpis.AvgDays)
		assert.Equal(t, 1, kpis.PendingCount)
		assert.False(t, kpis.Alert, "an average of exactly 4 does not alert")
	})

	t.Run("empty subset yields zeros", func(t *testing.T) {
		kpis := ComputeKPIs(nil)
		assert.Zero(t, kpis.SurveyCount)
		assert.Zero(t, kpis.AvgScore)
		assert.Zero(t, kpis.AvgDays)
		assert.Zero(t, kpis.PendingCount)
		assert.False(t, kpis.Alert)
	})

	t.Run("no completed records leaves avgDays at zero", func(t *testing.T) {
		kpis := ComputeKPIs([]Survey{{GlobalScore: score(5.0), Status: StatusPending}})
		assert.Zero(t, kpis.AvgDays)
	})

	t.Run("low average raises the alert", func(t *testing.T) {
		kpis := ComputeKPIs([]Survey{{GlobalScore: score(3.9), Status: StatusPending}})
		assert.True(t, kpis.Alert)
	})
}

func TestBuildDashboard(t *testing.T) {
	records := fixtureRecords()
	manager := NewViewerFromEmail("gerencia@rewax.co")

	t.Run("defaults to the newest month", func(t *testing.T) {
		dashboard := BuildDashboard(records, manager, "", AllStores, bogota)
		assert.Equal(t, "2026-04", dashboard.SelectedMonth)
		assert.Equal(t, []string{"2026-04", "2026-03"}, dashboard.Months)
		assert.Len(t, dashboard.Records, 4)
		assert.Equal(t, 4, dashboard.KPIs.SurveyCount)
	})

	t.Run("all-months shows every record", func(t *testing.T) {
		dashboard := BuildDashboard(records, manager, AllMonths, AllStores, bogota)
		assert.Len(t, dashboard.Records, 5)
	})

	t.Run("explicit month filters the subset", func(t *testing.T) {
		dashboard := BuildDashboard(records, manager, "2026-03", AllStores, bogota)
		require.Len(t, dashboard.Records, 1)
		assert.Equal(t, "1", dashboard.Records[0].ID)
	})

	t.Run("store account months come from its own records only", func(t *testing.T) {
		viewer := NewViewerFromEmail("andino@rewax.co")
		dashboard := BuildDashboard(records, viewer, AllMonths, "", bogota)
		assert.Len(t, dashboard.Records, 4)
		assert.Equal(t, []string{"2026-04", "2026-03"}, dashboard.Months)
	})

	t.Run("empty record set keeps zeros and no month", func(t *testing.T) {
		dashboard := BuildDashboard(nil, manager, "", AllStores, bogota)
		assert.Empty(t, dashboard.Months)
		assert.Empty(t, dashboard.SelectedMonth)
		assert.Zero(t, dashboard.KPIs.SurveyCount)
	})
}
