// Package inspect loads SSM request and response bodies from disk and
// checks, renders and compares them. It backs the ssmshape commands.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/smithy-go"
	json "github.com/goccy/go-json"

	"github.com/wadahiro/ssmshapes/internal/log"
	"github.com/wadahiro/ssmshapes/ssm"
)

var (
	codecLogger    = log.For(log.ComponentCodec)
	validateLogger = log.For(log.ComponentValidate)
)

// ErrUnknownOperation is returned when an operation name is not in the catalog.
var ErrUnknownOperation = errors.New("unknown operation")

// Direction selects the request or the response shape of an operation.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Resolve looks up an operation by name.
func Resolve(name string) (ssm.Operation, error) {
	if name == "" {
		return ssm.Operation{}, fmt.Errorf("%w: no operation given", ErrUnknownOperation)
	}
	op, ok := ssm.LookupOperation(name)
	if !ok {
		return ssm.Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// NewShape returns an empty shape of op in direction d.
func NewShape(op ssm.Operation, d Direction) ssm.Shape {
	if d == Output {
		return op.NewOutput()
	}
	return op.NewInput()
}

// Decode parses an AWS JSON 1.1 body into a new shape of op.
func Decode(data []byte, op ssm.Operation, d Direction) (ssm.Shape, error) {
	s := NewShape(op, d)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty %s body for %s", d, op.Name)
	}
	if err := ssm.Unmarshal(data, s); err != nil {
		return nil, err
	}
	codecLogger.Debug("Decoded shape", "operation", op.Name, "shape", ssm.ShapeName(s), "bytes", len(data))
	return s, nil
}

// Load reads path and decodes it as a shape of op.
func Load(path string, op ssm.Operation, d Direction) (ssm.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := Decode(data, op, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Problem is one violated constraint.
type Problem struct {
	Field   string
	Message string
}

func (p Problem) String() string {
	return p.Message
}

// Options controls Check.
type Options struct {
	// Strict also reports enum members with values unknown to this module.
	Strict bool
	// FillTokens sets missing idempotency tokens before checking.
	FillTokens bool
	// Ignore suppresses problems on the given member paths.
	Ignore func(field string) bool
}

// Check validates s and returns every problem found, in shape order.
// Shapes without service constraints yield no problems unless Strict is set.
func Check(s ssm.Shape, opts Options) []Problem {
	if opts.FillTokens {
		ssm.FillIdempotencyTokens(s)
	}

	var problems []Problem
	if v, ok := s.(ssm.Validator); ok {
		problems = append(problems, flatten(v.Validate())...)
	}
	if opts.Strict {
		problems = append(problems, flatten(ssm.ValidateEnums(s))...)
	}

	kept := problems[:0]
	for _, p := range problems {
		if opts.Ignore != nil && opts.Ignore(p.Field) {
			validateLogger.Debug("Ignoring problem", "field", p.Field)
			continue
		}
		kept = append(kept, p)
	}
	validateLogger.Debug("Checked shape", "shape", ssm.ShapeName(s), "problems", len(kept))
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func flatten(err error) []Problem {
	if err == nil {
		return nil
	}
	var params smithy.InvalidParamsError
	if !errors.As(err, &params) {
		return []Problem{{Message: err.Error()}}
	}
	problems := make([]Problem, 0, params.Len())
	for _, e := range params.Errs() {
		p := Problem{Message: e.Error()}
		if pe, ok := e.(smithy.InvalidParamError); ok {
			p.Field = pe.Field()
		}
		problems = append(problems, p)
	}
	return problems
}

// Format is the rendering used by Render.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (want text or json)", s)
}

// Render returns the debug string of s, or its canonical wire encoding with
// two-space indentation.
func Render(s ssm.Shape, f Format) (string, error) {
	if f != FormatJSON {
		return s.String(), nil
	}
	b, err := ssm.Marshal(s)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return "", fmt.Errorf("failed to indent %s: %w", ssm.ShapeName(s), err)
	}
	return out.String(), nil
}

// Comparison is the result of Compare.
type Comparison struct {
	Equal bool
	HashA uint64
	HashB uint64
}

// Compare reports field-wise equality and the hashes of a and b.
func Compare(a, b ssm.Shape) Comparison {
	return Comparison{
		Equal: ssm.Equal(a, b),
		HashA: a.HashCode(),
		HashB: b.HashCode(),
	}
}
