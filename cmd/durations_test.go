package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintDurationsExcludesSkips(t *testing.T) {
	path := writeHistoryCSV(t,
		"2024-01-01T10:00:00,web player,2000,Skip,A,Album A",
		"2024-01-01T11:00:00,web player,60000,T1,A,Album A",
		"2024-01-01T12:00:00,web player,90000,T2,B,Album B",
	)

	var out bytes.Buffer
	if err := printDurations(&out, path, 10); err != nil {
		t.Fatalf("printDurations failed: %v", err)
	}
	if !strings.Contains(out.String(), "2 plays of 5s or longer") {
		t.Errorf("skip should be excluded from the histogram. Got:\n%s", out.String())
	}
}

func TestPrintDurationsOnlySkips(t *testing.T) {
	path := writeHistoryCSV(t,
		"2024-01-01T10:00:00,web player,2000,Skip,A,Album A",
	)

	var out bytes.Buffer
	if err := printDurations(&out, path, 10); err != nil {
		t.Fatalf("printDurations failed: %v", err)
	}
	if !strings.Contains(out.String(), "No plays of 5 seconds or longer") {
		t.Errorf("expected the all-skips message. Got:\n%s", out.String())
	}
}
