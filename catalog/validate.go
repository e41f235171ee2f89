package catalog

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource []byte

// Validate checks a YAML catalog document against the embedded CUE
// schema. It reports structural problems (unknown rule kinds, malformed
// month-day strings, out-of-range fields, unexpected keys) that would
// otherwise surface as silent misbehavior after decoding.
func Validate(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Catalog"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup catalog definition: %w", err)
	}

	file, err := cueyaml.Extract("catalog.yaml", data)
	if err != nil {
		return fmt.Errorf("parse catalog document: %w", err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("build catalog document: %w", err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("catalog schema violation: %w", err)
	}
	return nil
}
