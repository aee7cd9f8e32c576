package fetcher

import (
	"strings"
	"testing"
	"time"
)

func TestTodayInterval(t *testing.T) {
	iv := TodayInterval()

	if iv.Start == nil || iv.End == nil {
		t.Fatal("TodayInterval() must set both bounds")
	}

	now := time.Now()
	if iv.Start.Year() != now.Year() || iv.Start.Month() != now.Month() || iv.Start.Day() != now.Day() {
		t.Errorf("start %v is not today", iv.Start)
	}
	if iv.Start.Hour() != 0 || iv.Start.Minute() != 0 || iv.Start.Second() != 0 {
		t.Errorf("start %v is not midnight", iv.Start)
	}
	if iv.Start.After(*iv.End) {
		t.Errorf("start %v is after end %v", iv.Start, iv.End)
	}
	if iv.End.After(time.Now().Add(time.Second)) {
		t.Errorf("end %v is in the future", iv.End)
	}
	if err := iv.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestIntervalValidate(t *testing.T) {
	early := time.Date(2021, 7, 27, 1, 0, 0, 0, time.UTC)
	late := time.Date(2021, 7, 27, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		iv      Interval
		wantErr bool
	}{
		{"both nil", Interval{}, false},
		{"start only", Interval{Start: &early}, false},
		{"end only", Interval{End: &late}, false},
		{"ordered", Interval{Start: &early, End: &late}, false},
		{"equal bounds", Interval{Start: &early, End: &early}, false},
		{"start after end", Interval{Start: &late, End: &early}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.iv.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	start := time.Date(2021, 7, 27, 1, 0, 0, 0, time.UTC)
	end := time.Date(2021, 7, 27, 12, 0, 0, 0, time.UTC)
	iv := Interval{Start: &start, End: &end}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"at start", start, true},
		{"at end", end, true},
		{"inside", start.Add(time.Hour), true},
		{"before start", start.Add(-time.Second), false},
		{"after end", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iv.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	unbounded := Interval{}
	if !unbounded.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("unbounded interval should contain any time")
	}
}

func TestIntervalString(t *testing.T) {
	start := time.Date(2021, 7, 27, 1, 0, 0, 0, time.UTC)

	iv := Interval{Start: &start}
	s := iv.String()
	if !strings.Contains(s, "2021-07-27 01:00:00") {
		t.Errorf("String() = %q, should contain the start bound", s)
	}
	if !strings.Contains(s, "unbounded") {
		t.Errorf("String() = %q, should mark the missing bound", s)
	}

	if s := (Interval{}).String(); !strings.Contains(s, "unbounded") {
		t.Errorf("String() = %q, should mark both missing bounds", s)
	}
}
