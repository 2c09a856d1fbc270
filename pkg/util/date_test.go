package util

import (
	"testing"
	"time"
)

func TestFormatDateTpl(t *testing.T) {
	ts := time.Date(2023, 11, 10, 0, 30, 15, 0, time.UTC)

	cases := []struct {
		tpl  string
		want string
	}{
		{"YYYY.MM.DD", "2023.11.10"},
		{"DD/MM/YYYY", "10/11/2023"},
		{"YYYY-MM-DD hh:mm", "2023-11-10 00:30"},
		{"hh:mm:ss", "00:30:15"},
	}

	for _, c := range cases {
		if got := FormatDateTpl(ts, c.tpl); got != c.want {
			t.Errorf("FormatDateTpl(%q) = %q, want %q", c.tpl, got, c.want)
		}
	}

	if got := FormatDateTpl(time.Time{}, "YYYY"); got != "" {
		t.Errorf("zero time should render empty, got %q", got)
	}
}

func TestFormatDateTplStable(t *testing.T) {
	ts := time.Date(2023, 11, 10, 0, 30, 15, 0, time.UTC)

	// YYYY must win over YY on every call, not by iteration luck.
	for i := 0; i < 200; i++ {
		if got := FormatDateTpl(ts, "YYYY.MM.DD"); got != "2023.11.10" {
			t.Fatalf("iteration %d: got %q, want 2023.11.10", i, got)
		}
	}

	if got := FormatDateTpl(ts, "YY-MM"); got != "23-11" {
		t.Errorf("FormatDateTpl(YY-MM) = %q, want 23-11", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{41 * time.Second, "41s"},
		{90 * time.Minute, "1h 30m"},
		{51*time.Hour + 14*time.Minute, "2d 3h 14m"},
		{0, "0s"},
		{500 * time.Millisecond, "0s"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
