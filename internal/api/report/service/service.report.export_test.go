// Package reportsvc - test dựng sheet báo cáo xlsx.
package reportsvc

import (
	"testing"
	"time"

	reportdto "winzen_admin/internal/api/report/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportFilename(t *testing.T) {
	at := time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "SalesReport_20260831.xlsx", ExportFilename("SalesReport", at))
	assert.Equal(t, "StockHistory_20260831.xlsx", ExportFilename("StockHistory", at))
}

func TestWriteTransactionSheet(t *testing.T) {
	file := excelize.NewFile()
	orders := sampleHistory()

	require.NoError(t, writeTransactionSheet(file, orders))

	rows, err := file.GetRows(SheetTransactionHistory)
	require.NoError(t, err)
	require.Len(t, rows, len(orders)+1)

	assert.Equal(t, []string{"Order Number", "Date", "Customer", "Staff", "Preference", "Quantity", "Subtotal", "Discount", "Total"}, rows[0])
	assert.Equal(t, "Order_1", rows[1][0])
	assert.Equal(t, "Linh", rows[1][2])
	assert.Equal(t, "Mai", rows[1][3])
	assert.Equal(t, "2", rows[1][5])
	assert.Equal(t, "200", rows[1][8])
}

func TestWriteStaffSummarySheet(t *testing.T) {
	file := excelize.NewFile()
	summaries := []reportdto.StaffSummary{
		{StaffName: "An", TotalOrders: 1, TotalQuantity: 4, TotalAmount: 300},
		{StaffName: "Mai", TotalOrders: 2, TotalQuantity: 3, TotalAmount: 300},
	}

	require.NoError(t, writeStaffSummarySheet(file, summaries))

	rows, err := file.GetRows(SheetStaffSummary)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Staff", "Orders", "Quantity", "Amount"}, rows[0])
	assert.Equal(t, []string{"An", "1", "4", "300"}, rows[1])
	assert.Equal(t, []string{"Mai", "2", "3", "300"}, rows[2])
}

func TestWriteTransactionSheet_EmptyMonth(t *testing.T) {
	file := excelize.NewFile()
	require.NoError(t, writeTransactionSheet(file, nil))

	rows, err := file.GetRows(SheetTransactionHistory)
	require.NoError(t, err)
	require.Len(t, rows, 1, "tháng không có giao dịch vẫn có dòng header")
}
