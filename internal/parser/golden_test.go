package parser_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hyper-lang/hyper/internal/astdump"
	"github.com/hyper-lang/hyper/internal/parser"
	"github.com/hyper-lang/hyper/internal/source"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

// TestGolden parses every testdata/*.hy file and compares the dumped tree
// with the matching .yaml file. Both sides are decoded before comparing, so
// only the tree matters and not its formatting.
func TestGolden(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "*.hy"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(inputs) == 0 {
		t.Fatalf("no golden inputs found")
	}

	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), ".hy")
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("read input: %v", err)
			}

			prog, err := parser.Parse(source.New(filepath.Base(input), string(text)))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			var buf bytes.Buffer
			if err := astdump.Encode(&buf, astdump.FormatYAML, astdump.Program(prog, astdump.Options{})); err != nil {
				t.Fatalf("encode: %v", err)
			}

			goldenPath := strings.TrimSuffix(input, ".hy") + ".yaml"
			if *update {
				if err := os.WriteFile(goldenPath, buf.Bytes(), 0o644); err != nil {
					t.Fatalf("write golden: %v", err)
				}
				return
			}

			golden, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("read golden: %v", err)
			}

			var got, want any
			if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("decode dump: %v", err)
			}
			if err := yaml.Unmarshal(golden, &want); err != nil {
				t.Fatalf("decode golden: %v", err)
			}

			if !reflect.DeepEqual(got, want) {
				t.Fatalf("tree does not match %s; got:\n%s", goldenPath, buf.String())
			}
		})
	}
}
