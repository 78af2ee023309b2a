package vneid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPayload is returned when a scanned payload does not split into
// the seven pipe-delimited segments VNeID credential QR codes carry.
var ErrMalformedPayload = errors.New("malformed credential payload")

const segmentCount = 7

// Identity is the decoded content of a VNeID credential QR code.
// Payload layout: CCCD|CMND|Name|DOB|Sex|Address|IssueDate.
type Identity struct {
	CCCD             string `json:"cccd"`
	CMND             string `json:"cmnd"`
	FullName         string `json:"fullName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Sex              string `json:"sex"`
	PermanentAddress string `json:"permanentAddress"`
	IssueDate        string `json:"issueDate"`
}

// Parse decodes a raw credential QR payload. The only fatal condition is a
// segment count other than seven; every field value is accepted as-is after
// trimming. Date segments of exactly 8 characters are reinterpreted as
// DDMMYYYY and emitted as DD/MM/YYYY, anything else passes through verbatim
// so an already-formatted or truncated date does not abort the scan.
func Parse(payload string) (Identity, error) {
	parts := strings.Split(payload, "|")
	if len(parts) != segmentCount {
		return Identity{}, fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedPayload, segmentCount, len(parts))
	}

	return Identity{
		CCCD:             strings.TrimSpace(parts[0]),
		CMND:             strings.TrimSpace(parts[1]),
		FullName:         strings.TrimSpace(parts[2]),
		DateOfBirth:      formatDate(strings.TrimSpace(parts[3])),
		Sex:              strings.TrimSpace(parts[4]),
		PermanentAddress: strings.TrimSpace(parts[5]),
		IssueDate:        formatDate(strings.TrimSpace(parts[6])),
	}, nil
}

func formatDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	return raw[0:2] + "/" + raw[2:4] + "/" + raw[4:8]
}
