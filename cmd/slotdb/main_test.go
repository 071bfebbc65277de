package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"slotdb/table"
)

// runScript drives runRepl with the given input lines (each becomes a line
// fed to the REPL, ".exit" appended automatically) and returns everything
// written to stdout.
func runScript(t *testing.T, dbPath string, lines ...string) string {
	t.Helper()
	tbl, err := table.Open(dbPath)
	if err != nil {
		t.Fatalf("table.Open: %v", err)
	}

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(append(append([]string{}, lines...), ".exit"), "\n") + "\n")
	runRepl(tbl, in, &out)

	if err := tbl.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return out.String()
}

// S1: empty -> insert -> select.
func TestScenarioInsertThenSelect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db1")
	out := runScript(t, path, "INSERT 1 alice alice@example.com", "SELECT")

	if !strings.Contains(out, "Execution Success!") {
		t.Errorf("expected an Execution Success! line, got:\n%s", out)
	}
	if !strings.Contains(out, "(1, alice, alice@example.com)") {
		t.Errorf("expected the inserted row to be printed, got:\n%s", out)
	}
}

// S2: persistence across close/reopen.
func TestScenarioPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db1")
	runScript(t, path, "INSERT 1 alice alice@example.com")

	out := runScript(t, path, "SELECT")
	if !strings.Contains(out, "(1, alice, alice@example.com)") {
		t.Errorf("expected the row to survive a reopen, got:\n%s", out)
	}
}

// S3: capacity — the 1401st insert reports the table as full.
func TestScenarioTableFullAtCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db3")

	var lines []string
	for i := 1; i <= table.MaxRows+1; i++ {
		lines = append(lines, fmt.Sprintf("INSERT %d user%d user%d@example.com", i, i, i))
	}
	out := runScript(t, path, lines...)

	if strings.Count(out, "Execution Success!") != table.MaxRows {
		t.Errorf("expected exactly %d successful inserts, got %d\n", table.MaxRows, strings.Count(out, "Execution Success!"))
	}
	if !strings.Contains(out, "Table is full!") {
		t.Errorf("expected the %d-th insert to report Table is full!, got:\n%s", table.MaxRows+1, out)
	}
}

// S4: zero id is a syntax error, not an insert.
func TestScenarioZeroIDRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db4")
	input := "INSERT 0 bob bob@e"
	out := runScript(t, path, input)

	want := fmt.Sprintf("Syntax error in: %q", input)
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output, got:\n%s", want, out)
	}
}

// S5: overlong username is a preparation error.
func TestScenarioOverlongUsername(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db5")
	longUsername := strings.Repeat("a", 33)
	out := runScript(t, path, fmt.Sprintf("INSERT 1 %s bob@example.com", longUsername))

	if !strings.Contains(out, "Could not prepare statement") {
		t.Errorf("expected a prepare error, got:\n%s", out)
	}
}

// S6: unrecognized statement.
func TestScenarioUnrecognizedStatement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db6")
	input := "UPDATE foo"
	out := runScript(t, path, input)

	want := fmt.Sprintf("Unrecognized statement %q", input)
	if !strings.Contains(out, want) {
		t.Errorf("expected %q in output, got:\n%s", want, out)
	}
}

func TestDotTestMetaCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db7")
	out := runScript(t, path, ".test")
	if !strings.Contains(out, "Test worked!") {
		t.Errorf("expected .test to print a diagnostic, got:\n%s", out)
	}
}

func TestUnrecognizedMetaCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db8")
	out := runScript(t, path, ".bogus")
	if !strings.Contains(out, `Unrecognized command ".bogus"`) {
		t.Errorf("expected an unrecognized-command message, got:\n%s", out)
	}
}
