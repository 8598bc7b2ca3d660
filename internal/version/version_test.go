package version

import (
	"strings"
	"testing"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-12", expected: 0},
		{name: "next day", date: "2026-01-13", expected: 1},
		{name: "one year later", date: "2027-01-12", expected: 365},
		{name: "across leap day", date: "2028-03-01", expected: 779},
		{name: "invalid format", date: "12.01.2026", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2026-01-11", wantError: true},
	}

	// BuildDate - глобальная переменная, поэтому подтесты идут последовательно
	old := BuildDate
	defer func() { BuildDate = old }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			BuildDate = tt.date

			got, err := CalculateBuildID()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate, BuildCommit = "2026-02-11", "abc1234"
	info := Info()
	if !info.Calculated || info.BuildID != 30 || info.Commit != "abc1234" {
		t.Errorf("Info() = %+v", info)
	}
	if !strings.HasPrefix(String(), "frostwild build 30") {
		t.Errorf("String() = %q", String())
	}

	BuildDate = ""
	if info := Info(); info.Calculated || info.Error == "" {
		t.Errorf("dev build must carry an error: %+v", info)
	}
}
