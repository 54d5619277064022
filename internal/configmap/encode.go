package configmap

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flarebyte/seshat-confmap/internal/frontmatter"
)

// DefaultKey is the top-level key wrapping the aggregated records.
const DefaultKey = "config_map"

// Notice is the plain-text stdout message for a scan that produced no
// records.
const Notice = "No valid posts with relevant fields found."

// MarshalYAML returns one YAML document: key, then the records as a sequence
// of mappings. Per-record field order is the stored order and is never
// re-sorted; nested mapping values are emitted with sorted keys so repeated
// runs stay byte-identical.
func MarshalYAML(key string, records []frontmatter.Record) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range records {
		seq.Content = append(seq.Content, recordNode(rec))
	}
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, scalarNode(key), seq)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func recordNode(rec frontmatter.Record) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range rec.Fields {
		n.Content = append(n.Content, scalarNode(f.Name), valueNode(f.Value))
	}
	return n
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

// timestampNode keeps date scalars in their date-only form: a timestamp with
// a zero clock in UTC renders as "2006-01-02", anything else as a
// space-separated datetime normalized to UTC, fractional seconds at
// microsecond precision. Encoding the time.Time directly would rewrite
// "date: 2015-01-01" as an RFC3339 instant.
func timestampNode(t time.Time) *yaml.Node {
	t = t.UTC()
	v := t.Format("2006-01-02")
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		v = t.Format("2006-01-02 15:04:05")
		if micro := t.Nanosecond() / 1000; micro != 0 {
			v += fmt.Sprintf(".%06d", micro)
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: v}
}

func valueNode(v any) *yaml.Node {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case map[string]any:
		return sortedMapNode(x)
	case map[any]any:
		return sortedAnyMapNode(x)
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, it := range x {
			n.Content = append(n.Content, valueNode(it))
		}
		return n
	case time.Time:
		return timestampNode(x)
	default:
		return scalarFrom(x)
	}
}

func sortedMapNode(m map[string]any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if len(m) == 0 {
		return n
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Content = append(n.Content, scalarNode(k), valueNode(m[k]))
	}
	return n
}

// sortedAnyMapNode handles mappings with non-string keys, which the YAML
// decoder hands back as map[any]any. Pairs are ordered by the encoded key
// form.
func sortedAnyMapNode(m map[any]any) *yaml.Node {
	type pair struct {
		key   *yaml.Node
		value any
	}
	pairs := make([]pair, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, pair{key: scalarFrom(k), value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key.Value < pairs[j].key.Value })
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range pairs {
		n.Content = append(n.Content, p.key, valueNode(p.value))
	}
	return n
}
