package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.cue
var packageSchema []byte

//go:embed schema/asmdef.schema.json
var assemblySchema []byte

const assemblySchemaURL = "asmdef.schema.json"

var (
	assemblyOnce     sync.Once
	compiledAssembly *jsonschema.Schema
	assemblyErr      error
	printer          = message.NewPrinter(language.English)
)

// Issue is a single schema violation.
type Issue struct {
	// Path is the instance location, e.g. "/name" or "/includePlatforms/0".
	Path    string `json:"path"`
	Message string `json:"message"`
	// Keyword is the schema keyword that failed. Empty for CUE results.
	Keyword string `json:"keyword,omitempty"`
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationResult is the outcome of validating one document.
// The error return of the validators is reserved for unusable input
// or schema failures; violations are reported here.
type ValidationResult struct {
	Valid  bool
	Issues []Issue
}

// ValidatePackage checks package.json bytes against the #Manifest CUE definition.
func ValidatePackage(data []byte) (*ValidationResult, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(packageSchema, cue.Filename("package.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling package schema: %w", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath("#Manifest"))
	if !def.Exists() {
		return nil, fmt.Errorf("package schema has no #Manifest definition")
	}

	// JSON is a subset of CUE.
	doc := ctx.CompileBytes(data, cue.Filename(FileName))
	if doc.Err() != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, doc.Err())
	}

	err := def.Unify(doc).Validate(cue.Concrete(true), cue.Final())
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		path := ""
		if p := e.Path(); len(p) > 0 {
			path = "/" + strings.Join(p, "/")
		}
		issues = append(issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
	}
	return &ValidationResult{Issues: dedupe(issues)}, nil
}

// ValidateAssembly checks .asmdef bytes against the embedded JSON schema.
func ValidateAssembly(data []byte) (*ValidationResult, error) {
	schema, err := getAssemblySchema()
	if err != nil {
		return nil, fmt.Errorf("loading assembly schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing assembly definition: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	var issues []Issue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = []Issue{{Message: ve.Error()}}
	}
	return &ValidationResult{Issues: dedupe(issues)}, nil
}

func getAssemblySchema() (*jsonschema.Schema, error) {
	assemblyOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(assemblySchema))
		if err != nil {
			assemblyErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(assemblySchemaURL, doc); err != nil {
			assemblyErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledAssembly, assemblyErr = c.Compile(assemblySchemaURL)
	})
	return compiledAssembly, assemblyErr
}

// collectIssues walks the error tree down to its leaves.
func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword, msg := "", ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	switch keyword {
	case "", "allOf", "$ref":
		return
	case "not":
		msg = "includePlatforms and excludePlatforms cannot both be set"
	}

	*issues = append(*issues, Issue{Path: path, Message: msg, Keyword: keyword})
}

func dedupe(issues []Issue) []Issue {
	seen := make(map[string]bool, len(issues))
	var out []Issue
	for _, is := range issues {
		key := is.Path + "|" + is.Keyword + "|" + is.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, is)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
