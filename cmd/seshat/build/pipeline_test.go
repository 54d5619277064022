package build

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/flarebyte/seshat-confmap/internal/diag"
	"github.com/flarebyte/seshat-confmap/internal/frontmatter"
	"github.com/flarebyte/seshat-confmap/internal/luafilter"
)

func sampleRecords() []frontmatter.Record {
	return []frontmatter.Record{
		{File: "a.md", Fields: []frontmatter.Field{
			{Name: "identifier", Value: "x1"},
			{Name: "status", Value: "published"},
		}},
		{File: "b.md", Fields: []frontmatter.Field{
			{Name: "identifier", Value: "x2"},
			{Name: "status", Value: "draft"},
		}},
	}
}

func TestApplyFilterNilPredicateKeepsAll(t *testing.T) {
	records := sampleRecords()
	got := applyFilter(records, nil, nil)
	if len(got) != 2 {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestApplyFilterKeepsMatches(t *testing.T) {
	pred, err := luafilter.Compile(`fields.status == "published"`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got := applyFilter(sampleRecords(), pred, nil)
	if len(got) != 1 || got[0].File != "a.md" {
		t.Fatalf("unexpected records: %#v", got)
	}
}

func TestApplyFilterReportsFailures(t *testing.T) {
	color.NoColor = true
	pred, err := luafilter.Compile(`return error("boom")`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var buf bytes.Buffer
	got := applyFilter(sampleRecords(), pred, diag.NewReporter(&buf))
	if len(got) != 0 {
		t.Fatalf("unexpected records: %#v", got)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected diagnostics: %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "ERROR: filtering a.md: ") || !strings.Contains(lines[0], "boom") {
		t.Fatalf("unexpected diagnostic: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ERROR: filtering b.md: ") {
		t.Fatalf("unexpected diagnostic: %q", lines[1])
	}
}

func TestMarshalFormatSwitch(t *testing.T) {
	records := sampleRecords()[:1]

	yamlReq := request{format: formatYAML, key: "config_map"}
	data, err := marshal(yamlReq, records)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	wantYAML := "config_map:\n  - identifier: x1\n    status: published\n"
	if string(data) != wantYAML {
		t.Fatalf("unexpected yaml:\n%s", data)
	}

	jsonReq := request{format: formatJSON, key: "config_map"}
	data, err = marshal(jsonReq, records)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	wantJSON := `{"config_map":[{"identifier":"x1","status":"published"}]}` + "\n"
	if string(data) != wantJSON {
		t.Fatalf("unexpected json:\n%s", data)
	}
}
