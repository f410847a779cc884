package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadahiro/ssmshapes/internal/testutil"
	"github.com/wadahiro/ssmshapes/ssm"
)

func mustResolve(t *testing.T, name string) ssm.Operation {
	t.Helper()
	op, err := Resolve(name)
	require.NoError(t, err)
	return op
}

func fields(problems []Problem) []string {
	out := make([]string, 0, len(problems))
	for _, p := range problems {
		out = append(out, p.Field)
	}
	return out
}

func TestResolve(t *testing.T) {
	op, err := Resolve("SendCommand")
	require.NoError(t, err)
	assert.Equal(t, "AmazonSSM.SendCommand", op.Target())

	for _, name := range []string{"", "sendcommand", "StartSession"} {
		_, err := Resolve(name)
		assert.ErrorIs(t, err, ErrUnknownOperation, name)
	}
}

func TestLoad(t *testing.T) {
	op := mustResolve(t, "SendCommand")

	s, err := Load(testutil.WriteFile(t, "send.json", testutil.SendCommandJSON), op, Input)
	require.NoError(t, err)

	in, ok := s.(*ssm.SendCommandInput)
	require.True(t, ok)
	assert.Equal(t, "AWS-RunShellScript", aws.ToString(in.DocumentName))
	assert.Equal(t, []string{"uptime"}, in.Parameters["commands"])
	assert.Equal(t, ssm.DocumentHashTypeSha256, in.DocumentHashType)
	require.Len(t, in.Targets, 1)
	assert.Equal(t, "tag:Env", aws.ToString(in.Targets[0].Key))
}

func TestLoad_Output(t *testing.T) {
	op := mustResolve(t, "SendCommand")

	s, err := Load(testutil.WriteFile(t, "out.json", testutil.CommandOutputJSON), op, Output)
	require.NoError(t, err)

	out, ok := s.(*ssm.SendCommandOutput)
	require.True(t, ok)
	require.NotNil(t, out.Command)
	assert.Equal(t, ssm.CommandStatusSuccess, out.Command.Status)
	require.NotNil(t, out.Command.RequestedDateTime)
	assert.Equal(t, int64(1700000000), out.Command.RequestedDateTime.Unix())
	assert.Equal(t, int64(1700003600500), out.Command.ExpiresAfter.UnixMilli())
}

func TestLoad_Errors(t *testing.T) {
	op := mustResolve(t, "PutParameter")

	_, err := Load("/nonexistent/input.json", op, Input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	_, err = Load(testutil.WriteFile(t, "empty.json", "  \n"), op, Input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty input body")

	_, err = Load(testutil.WriteFile(t, "bad.json", `{"Name": 42}`), op, Input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode *ssm.PutParameterInput")
}

func TestCheck_Valid(t *testing.T) {
	s, err := Decode([]byte(testutil.SendCommandJSON), mustResolve(t, "SendCommand"), Input)
	require.NoError(t, err)

	assert.Empty(t, Check(s, Options{Strict: true}))
}

func TestCheck_ReportsEveryProblem(t *testing.T) {
	s, err := Decode([]byte(testutil.InvalidSendCommandJSON), mustResolve(t, "SendCommand"), Input)
	require.NoError(t, err)

	problems := Check(s, Options{})
	assert.ElementsMatch(t, []string{
		"SendCommandInput.DocumentName",
		"SendCommandInput.DocumentVersion",
		"SendCommandInput.TimeoutSeconds",
		"SendCommandInput.Targets[0].Key",
	}, fields(problems))

	for _, p := range problems {
		assert.NotEmpty(t, p.String())
	}
}

func TestCheck_Ignore(t *testing.T) {
	s, err := Decode([]byte(testutil.InvalidSendCommandJSON), mustResolve(t, "SendCommand"), Input)
	require.NoError(t, err)

	problems := Check(s, Options{Ignore: func(field string) bool {
		return strings.HasPrefix(field, "SendCommandInput.Targets")
	}})
	assert.NotContains(t, fields(problems), "SendCommandInput.Targets[0].Key")
	assert.Len(t, problems, 3)
}

func TestCheck_StrictEnums(t *testing.T) {
	s, err := Decode([]byte(`{"Name":"/a","Value":"v","Type":"Secret"}`), mustResolve(t, "PutParameter"), Input)
	require.NoError(t, err)

	assert.Empty(t, Check(s, Options{}))

	problems := Check(s, Options{Strict: true})
	require.Len(t, problems, 1)
	assert.Equal(t, "PutParameterInput.Type", problems[0].Field)
	assert.Contains(t, problems[0].Message, "ParameterType")
}

func TestCheck_FillTokens(t *testing.T) {
	s, err := Decode([]byte(`{"DocumentName":"AWS-RestartEC2Instance"}`), mustResolve(t, "StartAutomationExecution"), Input)
	require.NoError(t, err)

	assert.Empty(t, Check(s, Options{FillTokens: true}))
	in := s.(*ssm.StartAutomationExecutionInput)
	require.NotNil(t, in.ClientToken)
	assert.Len(t, *in.ClientToken, 36)
}

func TestCheck_OutputShapeWithoutConstraints(t *testing.T) {
	s, err := Decode([]byte(testutil.CommandOutputJSON), mustResolve(t, "SendCommand"), Output)
	require.NoError(t, err)

	assert.Nil(t, Check(s, Options{}))
}

func TestFlatten_PlainError(t *testing.T) {
	problems := flatten(errors.New("boom"))
	require.Len(t, problems, 1)
	assert.Equal(t, "boom", problems[0].Message)
	assert.Empty(t, problems[0].Field)
}

func TestRender(t *testing.T) {
	in := (&ssm.PutParameterInput{}).SetName("/app/key").SetValue("v").SetType(ssm.ParameterTypeString)

	text, err := Render(in, FormatText)
	require.NoError(t, err)
	assert.Equal(t, in.String(), text)

	out, err := Render(in, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Name\": \"/app/key\",\n  \"Value\": \"v\",\n  \"Type\": \"String\"\n}", out)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	op := mustResolve(t, "SendCommand")
	a, err := Decode([]byte(testutil.SendCommandJSON), op, Input)
	require.NoError(t, err)
	b, err := Decode([]byte(testutil.SendCommandJSON), op, Input)
	require.NoError(t, err)

	c := Compare(a, b)
	assert.True(t, c.Equal)
	assert.Equal(t, c.HashA, c.HashB)

	b.(*ssm.SendCommandInput).SetComment("changed")
	c = Compare(a, b)
	assert.False(t, c.Equal)
	assert.NotEqual(t, c.HashA, c.HashB)
}

func TestCompare_DifferentShapes(t *testing.T) {
	c := Compare(&ssm.SendCommandInput{}, &ssm.SendCommandOutput{})
	assert.False(t, c.Equal)
}
