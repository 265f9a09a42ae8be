package content

import (
	"testing"
	"time"
)

func TestParseFrenchDate(t *testing.T) {
	d, ok := ParseFrenchDate("15/03/2024")
	if !ok {
		t.Fatalf("expected 15/03/2024 to parse")
	}
	if d.Day() != 15 || d.Month() != time.March || d.Year() != 2024 {
		t.Fatalf("unexpected date: %v", d)
	}
}

func TestParseFrenchDate_Malformed(t *testing.T) {
	cases := []string{"", "2024-03-15", "15/03", "15/03/2024/1", "ab/cd/efgh", "15//2024"}
	for _, c := range cases {
		if _, ok := ParseFrenchDate(c); ok {
			t.Fatalf("expected %q to be unparseable", c)
		}
	}
}

func TestPublishTime(t *testing.T) {
	if PublishTime("2024-01-05T10:30:00").IsZero() {
		t.Fatalf("expected REST publish date to parse")
	}
	if !PublishTime("not a date").IsZero() {
		t.Fatalf("expected malformed publish date to yield zero time")
	}
	if !PublishTime("").IsZero() {
		t.Fatalf("expected empty publish date to yield zero time")
	}
}
