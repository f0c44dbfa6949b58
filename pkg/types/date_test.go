package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateAddDaysAcrossMonths(t *testing.T) {
	anchor := NewDate(2024, time.March, 31)
	if got := anchor.AddDays(-29).String(); got != "2024-03-02" {
		t.Fatalf("expected 2024-03-02, got %s", got)
	}
	if got := anchor.AddDays(-59).String(); got != "2024-02-01" {
		t.Fatalf("expected leap-year 2024-02-01, got %s", got)
	}
}

func TestDateScanSources(t *testing.T) {
	cases := []struct {
		name string
		src  any
		want string
	}{
		{name: "string", src: "2024-03-31", want: "2024-03-31"},
		{name: "bytes", src: []byte("2024-03-31"), want: "2024-03-31"},
		{name: "sqlite timestamp text", src: "2024-03-31 00:00:00+00:00", want: "2024-03-31"},
		{name: "time", src: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), want: "2024-03-31"},
	}
	for _, tc := range cases {
		var d Date
		if err := d.Scan(tc.src); err != nil {
			t.Fatalf("%s: scan: %v", tc.name, err)
		}
		if d.String() != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, d.String())
		}
	}

	var d Date
	if err := d.Scan("garbage"); err == nil {
		t.Fatal("expected garbage to fail")
	}
}

func TestNullDateJSON(t *testing.T) {
	var n NullDate
	if err := n.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	raw, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("expected null, got %s", raw)
	}

	if err := n.Scan("2024-01-05"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	raw, err = json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-01-05"` {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestDateValueIsISOText(t *testing.T) {
	v, err := NewDate(2024, time.January, 5).Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2024-01-05" {
		t.Fatalf("expected ISO text, got %v", v)
	}
	v, err = Date{}.Value()
	if err != nil || v != nil {
		t.Fatalf("expected nil value for zero date, got %v %v", v, err)
	}
}
