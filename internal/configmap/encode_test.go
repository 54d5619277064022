package configmap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flarebyte/seshat-confmap/internal/frontmatter"
)

func record(file string, fields ...frontmatter.Field) frontmatter.Record {
	return frontmatter.Record{File: file, Fields: fields}
}

func TestMarshalYAMLSequence(t *testing.T) {
	records := []frontmatter.Record{
		record("a.md",
			frontmatter.Field{Name: "identifier", Value: "x1"},
			frontmatter.Field{Name: "commonName", Value: "Org A"},
		),
		record("b.md",
			frontmatter.Field{Name: "identifier", Value: "x2"},
		),
	}
	b1, err := MarshalYAML(DefaultKey, records)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b2, err := MarshalYAML(DefaultKey, records)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("not rewrite-stable\nfirst:\n%s\nsecond:\n%s", string(b1), string(b2))
	}
	want := "config_map:\n" +
		"  - identifier: x1\n" +
		"    commonName: Org A\n" +
		"  - identifier: x2\n"
	if string(b1) != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, string(b1))
	}
}

func TestMarshalYAMLEmpty(t *testing.T) {
	b, err := MarshalYAML(DefaultKey, nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "config_map: []\n" {
		t.Fatalf("unexpected empty output: %q", string(b))
	}
}

func TestMarshalYAMLFieldOrderKeptNestedSorted(t *testing.T) {
	records := []frontmatter.Record{
		record("a.md",
			frontmatter.Field{Name: "zeta", Value: nil},
			frontmatter.Field{Name: "alpha", Value: map[string]any{"z": 1, "a": 2}},
		),
	}
	b, err := MarshalYAML(DefaultKey, records)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "config_map:\n" +
		"  - zeta: null\n" +
		"    alpha:\n" +
		"      a: 2\n" +
		"      z: 1\n"
	if string(b) != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestMarshalYAMLQuotesAmbiguousScalars(t *testing.T) {
	records := []frontmatter.Record{
		record("a.md", frontmatter.Field{Name: "code", Value: "007"}),
	}
	b, err := MarshalYAML(DefaultKey, records)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "config_map:\n  - code: \"007\"\n"
	if string(b) != want {
		t.Fatalf("string 007 must stay a string\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestMarshalYAMLDateStaysDateOnly(t *testing.T) {
	rec, err := frontmatter.Extract([]byte("---\ndate: 2015-01-01\n---\nBody\n"), []string{"date"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	b, err := MarshalYAML(DefaultKey, []frontmatter.Record{rec})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "config_map:\n  - date: 2015-01-01\n"
	if string(b) != want {
		t.Fatalf("date scalar must stay date-only\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestMarshalYAMLDatetimeNormalizedToUTC(t *testing.T) {
	records := []frontmatter.Record{
		record("a.md",
			frontmatter.Field{Name: "published", Value: time.Date(2015, 6, 1, 10, 30, 0, 0, time.UTC)},
			frontmatter.Field{Name: "edited", Value: time.Date(2015, 6, 1, 10, 30, 0, 500000000, time.FixedZone("CEST", 2*60*60))},
		),
	}
	b, err := MarshalYAML(DefaultKey, records)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "config_map:\n" +
		"  - published: 2015-06-01 10:30:00\n" +
		"    edited: 2015-06-01 08:30:00.500000\n"
	if string(b) != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestMarshalJSONCompact(t *testing.T) {
	records := []frontmatter.Record{
		record("a.md",
			frontmatter.Field{Name: "identifier", Value: "x1"},
			frontmatter.Field{Name: "commonName", Value: "Org A"},
		),
		record("b.md",
			frontmatter.Field{Name: "identifier", Value: "x2"},
		),
	}
	b, err := MarshalJSON(DefaultKey, records, false)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"config_map":[{"identifier":"x1","commonName":"Org A"},{"identifier":"x2"}]}` + "\n"
	if string(b) != want {
		t.Fatalf("unexpected output\nwant: %s\ngot:  %s", want, string(b))
	}
}

func TestMarshalJSONPretty(t *testing.T) {
	records := []frontmatter.Record{
		record("a.md", frontmatter.Field{Name: "identifier", Value: "x1"}),
	}
	b, err := MarshalJSON(DefaultKey, records, true)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n" +
		"  \"config_map\": [\n" +
		"    {\n" +
		"      \"identifier\": \"x1\"\n" +
		"    }\n" +
		"  ]\n" +
		"}\n"
	if string(b) != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestMarshalJSONNonStringNestedKeys(t *testing.T) {
	records := []frontmatter.Record{
		record("a.md", frontmatter.Field{Name: "m", Value: map[any]any{2: "b", 1: "a"}}),
	}
	b, err := MarshalJSON(DefaultKey, records, false)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"config_map":[{"m":{"1":"a","2":"b"}}]}` + "\n"
	if string(b) != want {
		t.Fatalf("unexpected output\nwant: %s\ngot:  %s", want, string(b))
	}
}

func TestWriteCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "out.yaml")
	if err := Write(out, []byte("config_map: []\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "config_map: []\n" {
		t.Fatalf("unexpected file content: %q", string(b))
	}
}
