package main

import (
	"bytes"
	"testing"

	"github.com/dreamware/wordfreq/internal/tally"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	err := writeReport(&buf, []tally.Entry{
		{Word: "sat", Count: 2},
		{Word: "the", Count: 2},
		{Word: "cat", Count: 1},
	})
	if err != nil {
		t.Fatalf("writeReport: %v", err)
	}

	want := "sat 2\nthe 2\ncat 1\n"
	if got := buf.String(); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, nil); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty ranking produced output: %q", buf.String())
	}
}
