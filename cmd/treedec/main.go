package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/dsl"
	"github.com/reoring/treedec/i18n"
	"github.com/reoring/treedec/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "inspect":
		inspectCmd(os.Args[2:])
	case "demo":
		demoCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "treedec CLI\n\nUsage:\n  treedec inspect -in file [-yaml]\n  treedec demo -in file [-yaml] [-lang en|ja]\n\nNotes:\n  - inspect prints every leaf of the input tree with its path and shape.\n  - demo decodes the input against a built-in record schema and prints the\n    rendered error report on failure.")
}

func loadTree(in string, asYAML bool) (any, error) {
	var data []byte
	var err error
	if in == "-" || in == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return nil, err
	}
	if asYAML {
		return source.YAMLBytes(data)
	}
	return source.JSONBytes(data)
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var in string
	var asYAML bool
	fs.StringVar(&in, "in", "-", "input file (- for stdin)")
	fs.BoolVar(&asYAML, "yaml", false, "treat input as YAML")
	_ = fs.Parse(args)

	v, err := loadTree(in, asYAML)
	if err != nil {
		fmt.Fprintln(os.Stderr, "treedec:", err)
		os.Exit(1)
	}
	printLeaves(v, nil)
}

func printLeaves(v any, path treedec.Path) {
	switch t := v.(type) {
	case []any:
		if len(t) == 0 {
			fmt.Printf("%s\t%s\n", path, treedec.Describe(v))
			return
		}
		for i, el := range t {
			printLeaves(el, append(path[:len(path):len(path)], treedec.AtIndex(i)))
		}
	case map[string]any:
		if len(t) == 0 {
			fmt.Printf("%s\t%s\n", path, treedec.Describe(v))
			return
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			printLeaves(t[k], append(path[:len(path):len(path)], treedec.AtKey(k)))
		}
	default:
		fmt.Printf("%s\t%s\n", path, treedec.Describe(v))
	}
}

// demoSchema is the record schema used by the demo subcommand:
// {"name": string (required), "age": number (required), "tag": string (optional)}.
func demoSchema() treedec.Decoder[treedec.TreeError, dsl.Overrides, map[string]any] {
	type E = treedec.TreeError
	type X = dsl.Overrides
	return dsl.Record[E, X]().
		Field("name", dsl.Adapt(treedec.AsString[E, X]())).Required().
		Field("age", dsl.Adapt(dsl.Finite[E, X]())).Required().
		Field("tag", dsl.Adapt(treedec.AsString[E, X]())).Optional().
		Build()
}

func demoCmd(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	var in, lang string
	var asYAML bool
	fs.StringVar(&in, "in", "-", "input file (- for stdin)")
	fs.BoolVar(&asYAML, "yaml", false, "treat input as YAML")
	fs.StringVar(&lang, "lang", "en", "report language (en/ja)")
	_ = fs.Parse(args)

	i18n.SetLanguage(lang)

	v, err := loadTree(in, asYAML)
	if err != nil {
		fmt.Fprintln(os.Stderr, "treedec:", err)
		os.Exit(1)
	}
	r := treedec.Decode(treedec.TreeStrategy(), nil, v, demoSchema())
	if r.IsErr() {
		fmt.Fprintln(os.Stderr, treedec.Render(r.Err()))
		os.Exit(1)
	}
	fmt.Printf("ok: %v\n", r.Value())
}
