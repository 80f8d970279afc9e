package source

import (
	"bytes"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLBytes parses the first YAML document into the canonical model. YAML
// mappings may decode with non-string keys; those entries are skipped, and
// integer scalars are folded into float64.
func YAMLBytes(data []byte, opts ...DecodeOpt) (any, error) {
	return YAMLReader(bytes.NewReader(data), opts...)
}

// YAMLReader parses the first YAML document from r into the canonical model.
func YAMLReader(r io.Reader, opts ...DecodeOpt) (any, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	dec := yaml.NewDecoder(r)
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, err
	}
	return normalize(yamlNormalizeValue(node), 0, opt.MaxDepth)
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any and native timestamps) into JSON-like shapes recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = yamlNormalizeValue(vv)
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return t
	}
}
