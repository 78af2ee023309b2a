package exports

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"thochu/models"
)

// VisitorsPDF renders a printable visitor manifest, one block per check-in.
func VisitorsPDF(visitors []models.Visitor) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr("Danh sach du khach - Dao Tho Chu"))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Total check-ins: %d", len(visitors)))
	pdf.Ln(12)

	for i, v := range visitors {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s", i+1, tr(v.FullName)))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		lines := []string{
			fmt.Sprintf("CCCD: %s   CMND: %s   Sex: %s   DOB: %s", v.CCCD, v.CMND, tr(v.Sex), v.DateOfBirth),
			"Permanent address: " + tr(v.PermanentAddress),
			"Temporary address: " + tr(v.TemporaryAddress),
			"Note: " + tr(v.Note),
			"Check-in: " + v.CheckInTime,
		}
		for _, line := range lines {
			pdf.Cell(0, 6, line)
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
