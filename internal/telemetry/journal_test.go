package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
)

type record struct {
	Type string  `json:"type"`
	Time float64 `json:"t"`
}

func readLines(t *testing.T, path string) []record {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()

	var out []record
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		var r record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("bad line %q: %v", sc.Text(), err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestJournal_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	j := NewJournal(dir, "director")
	at := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)
	j.now = func() time.Time { return at }

	for i := 0; i < 3; i++ {
		if err := j.Write(record{Type: "intervention", Time: float64(i)}); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	path := filepath.Join(dir, "director-2026-03-01-10.jsonl.zst")
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}
	got := readLines(t, path)
	if len(got) != 3 || got[2].Time != 2 {
		t.Errorf("lines = %+v", got)
	}
	if j.Written() != 3 {
		t.Errorf("written = %d", j.Written())
	}
}

func TestJournal_HourlyRotation(t *testing.T) {
	dir := t.TempDir()
	j := NewJournal(dir, "director")
	at := time.Date(2026, 3, 1, 10, 59, 0, 0, time.UTC)
	j.now = func() time.Time { return at }

	if err := j.Write(record{Type: "intervention"}); err != nil {
		t.Fatal(err)
	}
	at = at.Add(2 * time.Minute)
	if err := j.Write(record{Type: "session_end"}); err != nil {
		t.Fatal(err)
	}
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "*.jsonl.zst"))
	if len(files) != 2 {
		t.Fatalf("files = %v, want 2", files)
	}
	late := readLines(t, filepath.Join(dir, "director-2026-03-01-11.jsonl.zst"))
	if len(late) != 1 || late[0].Type != "session_end" {
		t.Errorf("second hour = %+v", late)
	}
}

func TestJournal_ReopenAppends(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for run := 0; run < 2; run++ {
		j := NewJournal(dir, "director")
		j.now = func() time.Time { return at }
		if err := j.Write(record{Type: "intervention", Time: float64(run)}); err != nil {
			t.Fatal(err)
		}
		if err := j.Close(); err != nil {
			t.Fatal(err)
		}
	}

	// Два независимых кадра в одном файле читаются подряд
	got := readLines(t, filepath.Join(dir, "director-2026-03-01-10.jsonl.zst"))
	if len(got) != 2 || got[1].Time != 1 {
		t.Errorf("lines = %+v", got)
	}
}
