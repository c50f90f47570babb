package util

import (
	"testing"
	"time"
)

func TestPairKey_OrderIndependent(t *testing.T) {
	if PairKey("img-a", "img-b") != PairKey("img-b", "img-a") {
		t.Fatal("pair key must be the same for both orderings")
	}
	if PairKey("img-a", "img-b") != "img-a:img-b" {
		t.Fatalf("pairKey = %q, want img-a:img-b", PairKey("img-a", "img-b"))
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatal("same calendar day expected")
	}
	if SameDay(a, b.Add(time.Second)) {
		t.Fatal("midnight crossing is a new day")
	}
}

func TestStartOfWeek_MondayAnchor(t *testing.T) {
	// 2026-03-10 周二，2026-03-08 周日
	tuesday := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	if got := StartOfWeek(tuesday); got != time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("startOfWeek(tuesday) = %v, want Monday 2026-03-09", got)
	}

	sunday := time.Date(2026, 3, 8, 15, 0, 0, 0, time.UTC)
	if got := StartOfWeek(sunday); got != time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("startOfWeek(sunday) = %v, want Monday 2026-03-02", got)
	}
}

func TestPeriodDateKey(t *testing.T) {
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		period string
		want   string
	}{
		{"day", "2026-03-10"},
		{"week", "2026-03-09"},
		{"month", "2026-03"},
		{"year", "2026"},
		{"all", "all"},
	}
	for _, c := range cases {
		if got := PeriodDateKey(c.period, at); got != c.want {
			t.Fatalf("periodDateKey(%s) = %q, want %q", c.period, got, c.want)
		}
	}
}
