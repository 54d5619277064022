package configmap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/flarebyte/seshat-confmap/internal/frontmatter"
)

// MarshalJSON returns the same document as MarshalYAML in JSON form. Object
// member order for each record is the stored field order; nested mappings
// rely on encoding/json's sorted map keys.
func MarshalJSON(key string, records []frontmatter.Record, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	k, err := jsonValue(key)
	if err != nil {
		return nil, err
	}
	buf.Write(k)
	buf.WriteString(":[")
	for i, rec := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeRecordJSON(&buf, rec); err != nil {
			return nil, err
		}
	}
	buf.WriteString("]}")

	if pretty {
		var out bytes.Buffer
		if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
			return nil, err
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeRecordJSON(buf *bytes.Buffer, rec frontmatter.Record) error {
	buf.WriteByte('{')
	for i, f := range rec.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := jsonValue(f.Name)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := jsonValue(JSONSafe(f.Value))
		if err != nil {
			return err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return nil
}

func jsonValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSONSafe rewrites YAML-only shapes (non-string map keys) into ones
// encoding/json accepts.
func JSONSafe(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, vv := range x {
			out[k] = JSONSafe(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, vv := range x {
			out[fmt.Sprint(k)] = JSONSafe(vv)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = JSONSafe(x[i])
		}
		return out
	default:
		return x
	}
}
