package survey

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// ============================================================================
// LOADER TESTS
// ============================================================================

// Sample survey export: three metadata columns, then two questions.
var surveyCSV = []byte(`Timestamp,Respondent ID,Cohort,Should we adopt a four-day week?,Preferred office location
2026-03-02 09:15,emp-001,Engineering,Yes,Downtown
2026-03-02 09:21,emp-002,Engineering,No,Suburbs
2026-03-02 09:30,emp-003,Design,Yes,
2026-03-02 09:44,emp-004,Design,No Selection,Downtown
2026-03-02 10:02,emp-005,Support,Yes,Downtown
`)

func TestParseSplitsMetaAndQuestions(t *testing.T) {
	table, err := Parse(surveyCSV)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if table.Respondents != 5 {
		t.Errorf("Respondents = %d, want 5", table.Respondents)
	}
	if len(table.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(table.Questions))
	}
	if table.Questions[0].Text != "Should we adopt a four-day week?" {
		t.Errorf("question 0 text = %q", table.Questions[0].Text)
	}
	if table.Questions[1].Text != "Preferred office location" {
		t.Errorf("question 1 text = %q", table.Questions[1].Text)
	}
	for _, q := range table.Questions {
		if len(q.Responses) != 5 {
			t.Errorf("question %q has %d responses, want 5", q.Text, len(q.Responses))
		}
	}
}

func TestParseNormalizesBlankCells(t *testing.T) {
	table, err := Parse(surveyCSV)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// emp-003 left "Preferred office location" blank.
	if got := table.Questions[1].Responses[2]; got != NoSelection {
		t.Errorf("blank cell = %q, want %q", got, NoSelection)
	}
	// emp-004 answered the sentinel literally; it stays a skip either way.
	if got := table.Questions[0].Responses[3]; got != NoSelection {
		t.Errorf("literal sentinel cell = %q, want %q", got, NoSelection)
	}
}

func TestParseToleratesShortRows(t *testing.T) {
	short := []byte(`ts,id,cohort,Q1,Q2
t1,a,x,Yes,Blue
t2,b,y,No
t3,c,z
`)
	table, err := Parse(short)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if table.Respondents != 3 {
		t.Fatalf("Respondents = %d, want 3", table.Respondents)
	}
	q2 := table.Questions[1]
	want := []string{"Blue", NoSelection, NoSelection}
	for i, w := range want {
		if q2.Responses[i] != w {
			t.Errorf("Q2 response %d = %q, want %q", i, q2.Responses[i], w)
		}
	}
	if got := table.Questions[0].Responses[2]; got != NoSelection {
		t.Errorf("Q1 response for truncated row = %q, want %q", got, NoSelection)
	}
}

func TestParseTrimsCellWhitespace(t *testing.T) {
	padded := []byte("ts,id,cohort,Q1\nt1,a,x,  Yes  \nt2,b,y,   \n")
	table, err := Parse(padded)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	q := table.Questions[0]
	if q.Responses[0] != "Yes" {
		t.Errorf("padded answer = %q, want %q", q.Responses[0], "Yes")
	}
	if q.Responses[1] != NoSelection {
		t.Errorf("whitespace-only answer = %q, want %q", q.Responses[1], NoSelection)
	}
}

func TestParseCustomMetaColumns(t *testing.T) {
	data := []byte(`id,Q1,Q2
a,Yes,Blue
b,No,Red
`)
	table, err := Parse(data, WithMetaColumns(1))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(table.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(table.Questions))
	}
	if table.Questions[0].Text != "Q1" || table.Questions[1].Text != "Q2" {
		t.Errorf("question texts = %q, %q", table.Questions[0].Text, table.Questions[1].Text)
	}
}

func TestParseNoQuestionColumns(t *testing.T) {
	// Nothing past the metadata block: parses cleanly to zero questions.
	data := []byte("ts,id\nt1,a\n")
	table, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(table.Questions) != 0 {
		t.Errorf("got %d questions, want 0", len(table.Questions))
	}
	if table.Respondents != 1 {
		t.Errorf("Respondents = %d, want 1", table.Respondents)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	table, err := Parse([]byte("ts,id,cohort,Q1\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if table.Respondents != 0 {
		t.Errorf("Respondents = %d, want 0", table.Respondents)
	}
	if len(table.Questions) != 1 || len(table.Questions[0].Responses) != 0 {
		t.Errorf("header-only file should yield one question with no responses")
	}
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Parse(empty) error = %v, want ErrMalformedInput", err)
	}
}

func TestParseBrokenQuoting(t *testing.T) {
	data := []byte("ts,id,cohort,Q1\nt1,a,x,\"unterminated\n")
	_, err := Parse(data)
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Parse(broken quoting) error = %v, want ErrMalformedInput", err)
	}
}

func TestLoadReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.csv")
	if err := os.WriteFile(path, surveyCSV, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Path != path {
		t.Errorf("Path = %q, want %q", table.Path, path)
	}
	if len(table.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(table.Questions))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want fs.ErrNotExist", err)
	}
}
