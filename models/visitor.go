package models

import "thochu/vneid"

// Visitor is one check-in entry: the scanned identity plus the fields the
// kiosk operator fills in. Entries have no identifier; the log is ordered and
// addressed by position.
type Visitor struct {
	vneid.Identity
	TemporaryAddress string `json:"temporaryAddress"`
	Note             string `json:"note"`
	CheckInTime      string `json:"checkInTime"` // RFC3339, assigned at save
}

// VisitorCSVHeaders maps exported columns to their Vietnamese display labels.
// Kept out of the structs so record fields stay language-neutral.
var VisitorCSVHeaders = []string{
	"Số CCCD",
	"Số CMND",
	"Họ và tên",
	"Giới tính",
	"Ngày sinh",
	"Nơi thường trú",
	"Ngày cấp CCCD",
	"Nơi tạm trú",
	"Ghi chú khác",
	"Thời gian check-in",
}

// VisitorCSVRow returns the column values in header order.
func VisitorCSVRow(v Visitor) []string {
	return []string{
		v.CCCD,
		v.CMND,
		v.FullName,
		v.Sex,
		v.DateOfBirth,
		v.PermanentAddress,
		v.IssueDate,
		v.TemporaryAddress,
		v.Note,
		v.CheckInTime,
	}
}
