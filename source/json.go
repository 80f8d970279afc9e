package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// Package source materializes already-parsed trees for the decoding engine.
// The canonical value model is nil | bool | float64 | string | []any |
// map[string]any; everything leaving this package conforms to it.

// DecodeOpt bundles materialization options.
type DecodeOpt struct {
	// MaxDepth bounds structural nesting; zero means unlimited.
	MaxDepth int
}

// ErrMaxDepth reports that the input nests deeper than DecodeOpt.MaxDepth.
var ErrMaxDepth = errors.New("source: max depth exceeded")

// ErrTrailingData reports extra content after the first JSON value.
var ErrTrailingData = errors.New("source: trailing data after value")

// JSONBytes parses a single JSON value into the canonical model.
func JSONBytes(data []byte, opts ...DecodeOpt) (any, error) {
	return JSONReader(bytes.NewReader(data), opts...)
}

// JSONReader parses a single JSON value from r into the canonical model.
func JSONReader(r io.Reader, opts ...DecodeOpt) (any, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return normalize(v, 0, opt.MaxDepth)
}

// normalize folds decoder output into the canonical model: json.Number
// becomes float64, containers are rebuilt recursively, depth is enforced.
func normalize(v any, depth, maxDepth int) (any, error) {
	if maxDepth > 0 && depth > maxDepth {
		return nil, ErrMaxDepth
	}
	switch t := v.(type) {
	case nil, bool, float64, string:
		return t, nil
	case gojson.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case float32:
		return float64(t), nil
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			nv, err := normalize(el, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			nv, err := normalize(el, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("source: unsupported value of type %T", v)
	}
}
