package treedec

import "strconv"

// Kind enumerates the shapes of the canonical value model. It is used only to
// describe type-mismatch failures.
type Kind int

const (
	// KindInvalid describes a Go value outside the canonical model. It is
	// never expected by a checker, only reported as an actual shape.
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Invalid"
	}
}

// ValueDesc describes the shape of an offending value together with its
// payload, so a mismatch can report both sides ("expected Number, got
// String(\"x\")").
type ValueDesc struct {
	Kind  Kind
	Value any
}

// Describe classifies a value of the canonical model. Common non-canonical
// numerics are folded into Number so diagnostics stay readable when a caller
// hands the engine a tree it built by hand.
func Describe(v any) ValueDesc {
	switch t := v.(type) {
	case nil:
		return ValueDesc{Kind: KindNull}
	case bool:
		return ValueDesc{Kind: KindBool, Value: t}
	case float64:
		return ValueDesc{Kind: KindNumber, Value: t}
	case string:
		return ValueDesc{Kind: KindString, Value: t}
	case []any:
		return ValueDesc{Kind: KindArray, Value: t}
	case map[string]any:
		return ValueDesc{Kind: KindObject, Value: t}
	case int:
		return ValueDesc{Kind: KindNumber, Value: float64(t)}
	case int64:
		return ValueDesc{Kind: KindNumber, Value: float64(t)}
	case float32:
		return ValueDesc{Kind: KindNumber, Value: float64(t)}
	default:
		return ValueDesc{Kind: KindInvalid, Value: v}
	}
}

func (d ValueDesc) String() string {
	switch d.Kind {
	case KindNull:
		return "Null"
	case KindBool:
		if b, _ := d.Value.(bool); b {
			return "Bool(true)"
		}
		return "Bool(false)"
	case KindNumber:
		f, _ := d.Value.(float64)
		return "Number(" + strconv.FormatFloat(f, 'g', -1, 64) + ")"
	case KindString:
		s, _ := d.Value.(string)
		return "String(" + strconv.Quote(s) + ")"
	case KindArray:
		a, _ := d.Value.([]any)
		return "Array(length " + strconv.Itoa(len(a)) + ")"
	case KindObject:
		m, _ := d.Value.(map[string]any)
		return "Object(" + strconv.Itoa(len(m)) + " keys)"
	default:
		return "Invalid"
	}
}
