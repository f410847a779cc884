package ssm

import (
	"reflect"
	"sort"

	"github.com/google/go-cmp/cmp"
)

// Shape is implemented by every request, response and nested shape.
type Shape interface {
	String() string
	HashCode() uint64
}

// Validator is implemented by shapes that carry service constraints.
type Validator interface {
	Validate() error
}

// targetPrefix is the X-Amz-Target prefix of the JSON 1.1 protocol.
const targetPrefix = "AmazonSSM."

// Operation describes one API operation and its request and response shapes.
type Operation struct {
	Name      string
	NewInput  func() Shape
	NewOutput func() Shape
}

// Target returns the X-Amz-Target header value that selects the operation.
func (o Operation) Target() string {
	return targetPrefix + o.Name
}

var operations = map[string]Operation{}

func register(name string, newInput, newOutput func() Shape) {
	operations[name] = Operation{Name: name, NewInput: newInput, NewOutput: newOutput}
}

func init() {
	register("CreateAssociation",
		func() Shape { return &CreateAssociationInput{} },
		func() Shape { return &CreateAssociationOutput{} })
	register("CreateAssociationBatch",
		func() Shape { return &CreateAssociationBatchInput{} },
		func() Shape { return &CreateAssociationBatchOutput{} })
	register("UpdateAssociation",
		func() Shape { return &UpdateAssociationInput{} },
		func() Shape { return &UpdateAssociationOutput{} })
	register("DescribeAssociationExecutions",
		func() Shape { return &DescribeAssociationExecutionsInput{} },
		func() Shape { return &DescribeAssociationExecutionsOutput{} })
	register("SendCommand",
		func() Shape { return &SendCommandInput{} },
		func() Shape { return &SendCommandOutput{} })
	register("GetCommandInvocation",
		func() Shape { return &GetCommandInvocationInput{} },
		func() Shape { return &GetCommandInvocationOutput{} })
	register("ListCommandInvocations",
		func() Shape { return &ListCommandInvocationsInput{} },
		func() Shape { return &ListCommandInvocationsOutput{} })
	register("PutParameter",
		func() Shape { return &PutParameterInput{} },
		func() Shape { return &PutParameterOutput{} })
	register("DescribeDocument",
		func() Shape { return &DescribeDocumentInput{} },
		func() Shape { return &DescribeDocumentOutput{} })
	register("GetAutomationExecution",
		func() Shape { return &GetAutomationExecutionInput{} },
		func() Shape { return &GetAutomationExecutionOutput{} })
	register("DescribeAutomationExecutions",
		func() Shape { return &DescribeAutomationExecutionsInput{} },
		func() Shape { return &DescribeAutomationExecutionsOutput{} })
	register("StartAutomationExecution",
		func() Shape { return &StartAutomationExecutionInput{} },
		func() Shape { return &StartAutomationExecutionOutput{} })
}

// Operations returns the catalog sorted by operation name.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for _, op := range operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// LookupOperation returns the operation with the exact given name.
func LookupOperation(name string) (Operation, bool) {
	op, ok := operations[name]
	return op, ok
}

// Equal reports whether a and b are shapes of the same type with equal
// fields. It dispatches to the shape's own Equal method.
func Equal(a, b Shape) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return cmp.Equal(a, b)
}

// ShapeName returns the type name of s, such as "SendCommandInput".
func ShapeName(s Shape) string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
