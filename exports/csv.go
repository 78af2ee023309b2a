// Package exports renders the visitor log into downloadable files for the
// admin dashboard.
package exports

import (
	"strings"
	"time"

	"thochu/models"
)

// Columns holding free text are always quoted; the rest are bare. Matches
// the layout the dashboard spreadsheet users expect.
var quotedColumns = map[int]bool{
	2: true, // full name
	5: true, // permanent address
	7: true, // temporary address
	8: true, // note
}

// VisitorsCSV renders the log as UTF-8 CSV with a byte-order-mark prefix so
// spreadsheet software picks up the Vietnamese headers correctly.
func VisitorsCSV(visitors []models.Visitor) []byte {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString(strings.Join(models.VisitorCSVHeaders, ","))
	for _, v := range visitors {
		b.WriteString("\n")
		row := models.VisitorCSVRow(v)
		for i, col := range row {
			if i > 0 {
				b.WriteString(",")
			}
			if quotedColumns[i] {
				b.WriteString(`"` + strings.ReplaceAll(col, `"`, `""`) + `"`)
			} else {
				b.WriteString(col)
			}
		}
	}
	return []byte(b.String())
}

// CSVFilename returns the dated download name, e.g.
// danh-sach-du-khach-2025-01-30.csv.
func CSVFilename(now time.Time) string {
	return "danh-sach-du-khach-" + now.Format("2006-01-02") + ".csv"
}

func PDFFilename(now time.Time) string {
	return "danh-sach-du-khach-" + now.Format("2006-01-02") + ".pdf"
}
