package document

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var documentSchema []byte

// ErrInvalidDocument indicates source JSON that does not satisfy the document
// schema.
var ErrInvalidDocument = errors.New("document: invalid document payload")

// ValidationIssue captures a single schema violation.
type ValidationIssue struct {
	Location string
	Message  string
}

// ValidationError surfaces every schema violation found in a payload.
type ValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", ErrInvalidDocument.Error(), e.Cause)
		}
		return ErrInvalidDocument.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := issue.Location
		if location == "" {
			location = "#"
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDocument.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDocument
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("document.json", strings.NewReader(string(documentSchema))); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("document.json")
	})
	return compiled, compileErr
}

// Validate checks raw JSON against the document schema without decoding it.
func Validate(data []byte) error {
	schema, err := schema()
	if err != nil {
		return fmt.Errorf("document: compile schema: %w", err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return &ValidationError{Cause: err}
	}

	if err := schema.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &ValidationError{Issues: collectIssues(validationErr), Cause: err}
		}
		return &ValidationError{Cause: err}
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
