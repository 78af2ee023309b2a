package vneid

import (
	"errors"
	"testing"
)

func TestParseWellFormedPayload(t *testing.T) {
	got, err := Parse("012345678901|123456789|Nguyen Van A|01011990|Nam|Hanoi|15032022")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Identity{
		CCCD:             "012345678901",
		CMND:             "123456789",
		FullName:         "Nguyen Van A",
		DateOfBirth:      "01/01/1990",
		Sex:              "Nam",
		PermanentAddress: "Hanoi",
		IssueDate:        "15/03/2022",
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestParseTrimsSegments(t *testing.T) {
	got, err := Parse("  012345678901 | 123456789 |  Nguyen Van A |01011990| Nam | Hanoi | 15032022 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CCCD != "012345678901" || got.FullName != "Nguyen Van A" || got.PermanentAddress != "Hanoi" {
		t.Fatalf("segments not trimmed: %+v", got)
	}
}

func TestParseWrongSegmentCount(t *testing.T) {
	for _, payload := range []string{
		"",
		"012345678901",
		"a|b|c|d|e|f",
		"a|b|c|d|e|f|g|h",
	} {
		if _, err := Parse(payload); !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("payload %q: expected ErrMalformedPayload, got %v", payload, err)
		}
	}
}

func TestParseDatePassthrough(t *testing.T) {
	// non-8-length dates pass through unchanged, including already-formatted ones
	got, err := Parse("1|2|Name|01/01/1990|Nam|Addr|2022")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DateOfBirth != "01/01/1990" {
		t.Fatalf("expected formatted date to pass through, got %q", got.DateOfBirth)
	}
	if got.IssueDate != "2022" {
		t.Fatalf("expected short date to pass through, got %q", got.IssueDate)
	}
}

func TestParseEmptyFieldsAllowed(t *testing.T) {
	got, err := Parse("||||||")
	if err != nil {
		t.Fatalf("empty fields should not fail the parse: %v", err)
	}
	if got != (Identity{}) {
		t.Fatalf("expected zero identity, got %+v", got)
	}
}
