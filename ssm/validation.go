package ssm

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/wadahiro/ssmshapes/internal/shapeutil"
)

// Member patterns. Service patterns are anchored here because RE2 searches
// rather than matches by default.
var (
	documentARNPattern        = regexp.MustCompile(`^[a-zA-Z0-9_\-.:/]{3,128}$`)
	documentNamePattern       = regexp.MustCompile(`^[a-zA-Z0-9_\-.]{3,128}$`)
	documentVersionPattern    = regexp.MustCompile(`^(?:[$]LATEST|[$]DEFAULT|[1-9][0-9]*)$`)
	versionNamePattern        = regexp.MustCompile(`^[a-zA-Z0-9_\-.]{1,128}$`)
	associationIDPattern      = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	associationNamePattern    = regexp.MustCompile(`^[a-zA-Z0-9_\-.]{3,128}$`)
	associationVersionPattern = regexp.MustCompile(`^(?:[$]LATEST|[1-9][0-9]*)$`)
	instanceIDPattern         = regexp.MustCompile(`(^i-(\w{8}|\w{17})$)|(^mi-\w{17}$)`)
	maxConcurrencyPattern     = regexp.MustCompile(`^([1-9][0-9]*|[1-9][0-9]%|[1-9]%|100%)$`)
	maxErrorsPattern          = regexp.MustCompile(`^([1-9][0-9]*|[0]|[1-9][0-9]%|[0-9]%|100%)$`)
	kmsKeyIDPattern           = regexp.MustCompile(`^([a-zA-Z0-9:/_-]+)$`)
	targetKeyPattern          = regexp.MustCompile(`^(?:[\p{L}\p{Z}\p{N}_.:/=\-@]*|resource-groups:ResourceTypeFilters|resource-groups:Name)$`)
	tagKeyPattern             = regexp.MustCompile(`^[\p{L}\p{Z}\p{N}_.:/=+\-@]*$`)
	logGroupNamePattern       = regexp.MustCompile(`^[\.\-_/#A-Za-z0-9]+$`)
	executionRoleNamePattern  = regexp.MustCompile(`^[\w+=,.@/-]+$`)
)

// unbounded marks a constraint without an upper limit.
const unbounded = -1

// ConstraintKind classifies a ParamConstraintError.
type ConstraintKind string

const (
	ConstraintLength  ConstraintKind = "length"
	ConstraintPattern ConstraintKind = "pattern"
	ConstraintRange   ConstraintKind = "range"
	ConstraintSize    ConstraintKind = "size"
	ConstraintEnum    ConstraintKind = "enum"
)

// ParamConstraintError reports a member whose value breaks a documented
// service constraint. It implements smithy.InvalidParamError so it can be
// collected in a smithy.InvalidParamsError next to required-member errors.
type ParamConstraintError struct {
	Kind ConstraintKind

	context       string
	nestedContext string
	field         string
	reason        string
}

func newConstraintError(kind ConstraintKind, field, reason string) *ParamConstraintError {
	return &ParamConstraintError{Kind: kind, field: field, reason: reason}
}

func (e *ParamConstraintError) Error() string {
	return fmt.Sprintf("%s, %s.", e.reason, e.Field())
}

// Field returns the dotted path of the offending member.
func (e *ParamConstraintError) Field() string {
	var sb strings.Builder
	sb.WriteString(e.context)
	if sb.Len() > 0 {
		sb.WriteRune('.')
	}
	if len(e.nestedContext) > 0 {
		sb.WriteString(e.nestedContext)
		sb.WriteRune('.')
	}
	sb.WriteString(e.field)
	return sb.String()
}

// SetContext sets the shape the member belongs to.
func (e *ParamConstraintError) SetContext(ctx string) {
	e.context = ctx
}

// AddNestedContext prepends a nesting level to the member path.
func (e *ParamConstraintError) AddNestedContext(ctx string) {
	if len(e.nestedContext) == 0 {
		e.nestedContext = ctx
	} else {
		e.nestedContext = fmt.Sprintf("%s.%s", ctx, e.nestedContext)
	}
}

// validator accumulates member errors for one shape.
type validator struct {
	params smithy.InvalidParamsError
}

func newValidator(shape string) *validator {
	return &validator{params: smithy.InvalidParamsError{Context: shape}}
}

func (v *validator) required(field string, set bool) {
	if !set {
		v.params.Add(smithy.NewErrParamRequired(field))
	}
}

func (v *validator) length(field string, s *string, min, max int) {
	if s == nil {
		return
	}
	n := utf8.RuneCountInString(*s)
	if n < min || (max != unbounded && n > max) {
		v.params.Add(newConstraintError(ConstraintLength, field, describeBounds("length", min, max, n)))
	}
}

func (v *validator) pattern(field string, s *string, re *regexp.Regexp) {
	if s == nil {
		return
	}
	if !re.MatchString(aws.ToString(s)) {
		v.params.Add(newConstraintError(ConstraintPattern, field,
			fmt.Sprintf("value %q does not match pattern %s", aws.ToString(s), re)))
	}
}

func (v *validator) between(field string, n *int32, min, max int64) {
	if n == nil {
		return
	}
	if int64(*n) < min || int64(*n) > max {
		v.params.Add(newConstraintError(ConstraintRange, field,
			fmt.Sprintf("value %d must be between %d and %d", *n, min, max)))
	}
}

func (v *validator) count(field string, set bool, n, min, max int) {
	if !set {
		return
	}
	if n < min || (max != unbounded && n > max) {
		v.params.Add(newConstraintError(ConstraintSize, field, describeBounds("member count", min, max, n)))
	}
}

func (v *validator) nested(field string, s Validator) {
	err := s.Validate()
	if err == nil {
		return
	}
	var invalid smithy.InvalidParamsError
	if errors.As(err, &invalid) {
		v.params.AddNested(field, invalid)
	}
}

func (v *validator) err() error {
	if v.params.Len() > 0 {
		return v.params
	}
	return nil
}

// validateList validates every element of a list of nested shapes.
func validateList[T any, P interface {
	*T
	Validator
}](v *validator, field string, items []T) {
	for i := range items {
		v.nested(fmt.Sprintf("%s[%d]", field, i), P(&items[i]))
	}
}

func describeBounds(what string, min, max, got int) string {
	if max == unbounded {
		return fmt.Sprintf("minimum %s of %d, got %d", what, min, got)
	}
	if min == max {
		return fmt.Sprintf("%s must be exactly %d, got %d", what, min, got)
	}
	return fmt.Sprintf("%s must be between %d and %d, got %d", what, min, max, got)
}

// common members shared by association, command and automation requests

func (v *validator) documentVersion(s *string) {
	v.pattern("DocumentVersion", s, documentVersionPattern)
}

func (v *validator) rateControl(maxConcurrency, maxErrors *string) {
	v.length("MaxConcurrency", maxConcurrency, 1, 7)
	v.pattern("MaxConcurrency", maxConcurrency, maxConcurrencyPattern)
	v.length("MaxErrors", maxErrors, 1, 7)
	v.pattern("MaxErrors", maxErrors, maxErrorsPattern)
}

func (v *validator) targets(targets []Target) {
	v.count("Targets", targets != nil, len(targets), 0, 5)
	validateList(v, "Targets", targets)
}

// ValidateEnums reports enum-typed members, at any depth, whose value is not one
// of the wire values known to this module. The service may accept newer
// values, so this is a lint rather than part of Validate.
func ValidateEnums(s Shape) error {
	rv := reflect.ValueOf(s)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	v := newValidator(rv.Type().Name())
	walkEnums(v, "", rv)
	return v.err()
}

func walkEnums(v *validator, path string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Pointer:
		if !rv.IsNil() {
			walkEnums(v, path, rv.Elem())
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			name := shapeutil.FieldName(t.Field(i))
			if path != "" {
				name = path + "." + name
			}
			walkEnums(v, name, rv.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			walkEnums(v, fmt.Sprintf("%s[%d]", path, i), rv.Index(i))
		}
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			walkEnums(v, fmt.Sprintf("%s[%v]", path, k.Interface()), rv.MapIndex(k))
		}
	case reflect.String:
		if rv.Len() == 0 {
			return
		}
		known, ok := knownEnumValues(rv)
		if ok && !known[rv.String()] {
			v.params.Add(newConstraintError(ConstraintEnum, path,
				fmt.Sprintf("value %q is not a known %s", rv.String(), rv.Type().Name())))
		}
	}
}

func knownEnumValues(rv reflect.Value) (map[string]bool, bool) {
	m := rv.MethodByName("Values")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return nil, false
	}
	values := m.Call(nil)[0]
	if values.Kind() != reflect.Slice {
		return nil, false
	}
	known := make(map[string]bool, values.Len())
	for i := 0; i < values.Len(); i++ {
		known[values.Index(i).String()] = true
	}
	return known, true
}
