package ssm

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperations(t *testing.T) {
	ops := Operations()
	require.Len(t, ops, 12)

	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	assert.True(t, sort.StringsAreSorted(names))

	for _, op := range ops {
		t.Run(op.Name, func(t *testing.T) {
			in, out := op.NewInput(), op.NewOutput()
			assert.Equal(t, op.Name+"Input", ShapeName(in))
			assert.Equal(t, op.Name+"Output", ShapeName(out))
			assert.Equal(t, "AmazonSSM."+op.Name, op.Target())

			_, ok := in.(Validator)
			assert.True(t, ok, "request shapes carry constraints")

			assert.NotSame(t, in, op.NewInput(), "factories return fresh shapes")
		})
	}
}

func TestLookupOperation(t *testing.T) {
	op, ok := LookupOperation("PutParameter")
	require.True(t, ok)
	assert.IsType(t, &PutParameterInput{}, op.NewInput())
	assert.IsType(t, &PutParameterOutput{}, op.NewOutput())

	_, ok = LookupOperation("putparameter")
	assert.False(t, ok, "lookup is case-sensitive")
	_, ok = LookupOperation("StartSession")
	assert.False(t, ok)
}

func TestEqualShapes(t *testing.T) {
	a := (&Tag{}).SetKey("team").SetValue("platform")
	b := (&Tag{}).SetKey("team").SetValue("platform")

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, (&Tag{}).SetKey("team")))
	assert.False(t, Equal(&SendCommandInput{}, &SendCommandOutput{}))

	var nilTag *Tag
	assert.True(t, Equal(nilTag, nilTag))
	assert.False(t, Equal(nilTag, a))
}

func TestShapeName(t *testing.T) {
	assert.Equal(t, "Target", ShapeName(&Target{}))
	assert.Equal(t, "", ShapeName(nil))
}

func TestEnums(t *testing.T) {
	names := EnumNames()
	assert.Len(t, names, 24)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		values, ok := EnumValues(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, values, name)
	}

	values, ok := EnumValues("ParameterTier")
	require.True(t, ok)
	assert.Equal(t, []string{"Standard", "Advanced", "Intelligent-Tiering"}, values)

	_, ok = EnumValues("Nope")
	assert.False(t, ok)
}

func TestEnumValues_WireStrings(t *testing.T) {
	assert.Equal(t, []AssociationFilterOperatorType{
		AssociationFilterOperatorTypeEqual,
		AssociationFilterOperatorTypeLessThan,
		AssociationFilterOperatorTypeGreaterThan,
	}, AssociationFilterOperatorType("").Values())
	assert.Equal(t, "Intelligent-Tiering", string(ParameterTierIntelligentTiering))
	assert.Equal(t, "SecureString", string(ParameterTypeSecureString))

	for _, v := range CommandStatus("").Values() {
		assert.False(t, strings.Contains(string(v), " "), v)
	}
}
