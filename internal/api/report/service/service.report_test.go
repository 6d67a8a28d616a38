// Package reportsvc - test phần gộp số liệu thuần và khoảng tháng.
package reportsvc

import (
	"testing"
	"time"

	ordermodels "winzen_admin/internal/api/order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func millis(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local).UnixMilli()
}

func sampleHistory() []ordermodels.Order {
	return []ordermodels.Order{
		{
			OrderNumber:   "Order_1",
			CustomerName:  "Linh",
			StaffName:     "Mai",
			OrderDateTime: millis(2026, time.August, 5, 10),
			Total:         200,
			Items:         []ordermodels.OrderItem{{ProductName: "Latte", Quantity: 2}},
		},
		{
			OrderNumber:   "Order_2",
			CustomerName:  "Linh",
			StaffName:     "Mai",
			OrderDateTime: millis(2026, time.August, 5, 14),
			Total:         100,
			Items:         []ordermodels.OrderItem{{ProductName: "Croissant", Quantity: 1}},
		},
		{
			OrderNumber:   "Order_3",
			CustomerName:  "Huy",
			StaffName:     "An",
			OrderDateTime: millis(2026, time.August, 20, 9),
			Total:         300,
			Items: []ordermodels.OrderItem{
				{ProductName: "Latte", Quantity: 1},
				{ProductName: "Tiramisu", Quantity: 3},
			},
		},
	}
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2026-08")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), from)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), to)
}

func TestMonthRange_DecemberRollsOver(t *testing.T) {
	from, to, err := MonthRange("2025-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), from)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), to)
}

func TestMonthRange_RejectsBadFormat(t *testing.T) {
	for _, month := range []string{"2026", "08-2026", "2026-13", "abc"} {
		_, _, err := MonthRange(month)
		assert.Error(t, err, "month=%q", month)
	}
}

func TestAggregateMonthlySales(t *testing.T) {
	report := AggregateMonthlySales("2026-08", sampleHistory())

	assert.Equal(t, "2026-08", report.Month)
	assert.Equal(t, float64(600), report.TotalSales)
	assert.Equal(t, int64(3), report.TotalOrders)
	assert.Equal(t, int64(7), report.TotalQuantity)
	assert.Equal(t, int64(2), report.UniqueCustomers)

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2026-08-05", report.Daily[0].Date)
	assert.Equal(t, float64(300), report.Daily[0].TotalSales)
	assert.Equal(t, int64(2), report.Daily[0].TotalOrders)
	assert.Equal(t, "2026-08-20", report.Daily[1].Date)
	assert.Equal(t, float64(300), report.Daily[1].TotalSales)
	assert.Equal(t, int64(1), report.Daily[1].TotalOrders)
}

func TestAggregateMonthlySales_Empty(t *testing.T) {
	report := AggregateMonthlySales("2026-08", nil)
	assert.Equal(t, float64(0), report.TotalSales)
	assert.Equal(t, int64(0), report.TotalOrders)
	assert.Equal(t, int64(0), report.UniqueCustomers)
	assert.Empty(t, report.Daily)
	assert.NotNil(t, report.Daily, "Daily phải là slice rỗng để serialize thành [], không phải null")
}

func TestAggregateStaffSummaries(t *testing.T) {
	summaries := AggregateStaffSummaries(sampleHistory())

	require.Len(t, summaries, 2)
	// Sắp theo tên nhân viên
	assert.Equal(t, "An", summaries[0].StaffName)
	assert.Equal(t, int64(1), summaries[0].TotalOrders)
	assert.Equal(t, int64(4), summaries[0].TotalQuantity)
	assert.Equal(t, float64(300), summaries[0].TotalAmount)

	assert.Equal(t, "Mai", summaries[1].StaffName)
	assert.Equal(t, int64(2), summaries[1].TotalOrders)
	assert.Equal(t, int64(3), summaries[1].TotalQuantity)
	assert.Equal(t, float64(300), summaries[1].TotalAmount)
}
