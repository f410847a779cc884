package ssm

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invalidFields returns the member paths reported by err.
func invalidFields(t *testing.T, err error) []string {
	t.Helper()
	if err == nil {
		return nil
	}
	var params smithy.InvalidParamsError
	require.True(t, errors.As(err, &params), "unexpected error type %T", err)
	var out []string
	for _, e := range params.Errs() {
		pe, ok := e.(smithy.InvalidParamError)
		require.True(t, ok, "unexpected member error type %T", e)
		out = append(out, pe.Field())
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape Validator
		want  []string
	}{
		{
			name:  "send command minimal",
			shape: (&SendCommandInput{}).SetDocumentName("AWS-RunShellScript"),
		},
		{
			name:  "send command missing document",
			shape: &SendCommandInput{},
			want:  []string{"SendCommandInput.DocumentName"},
		},
		{
			name: "send command bounds",
			shape: (&SendCommandInput{}).
				SetDocumentName("AWS-RunShellScript").
				SetTimeoutSeconds(2592001).
				SetComment(strings.Repeat("c", 101)).
				SetMaxConcurrency("0").
				SetMaxErrors("101%").
				SetOutputS3Region("x"),
			want: []string{
				"SendCommandInput.TimeoutSeconds",
				"SendCommandInput.Comment",
				"SendCommandInput.OutputS3Region",
				"SendCommandInput.MaxConcurrency",
				"SendCommandInput.MaxErrors",
			},
		},
		{
			name: "send command nested targets",
			shape: (&SendCommandInput{}).
				SetDocumentName("AWS-RunShellScript").
				SetTargets([]Target{
					{Key: aws.String("InstanceIds"), Values: []string{"i-1"}},
					{Key: aws.String(strings.Repeat("k", 164))},
				}).
				SetCloudWatchOutputConfig((&CloudWatchOutputConfig{}).SetCloudWatchLogGroupName("bad name")),
			want: []string{
				"SendCommandInput.Targets[1].Key",
				"SendCommandInput.CloudWatchOutputConfig.CloudWatchLogGroupName",
			},
		},
		{
			name: "too many targets",
			shape: (&SendCommandInput{}).
				SetDocumentName("AWS-RunShellScript").
				SetTargets(make([]Target, 6)),
			want: []string{"SendCommandInput.Targets"},
		},
		{
			name: "create association",
			shape: (&CreateAssociationInput{}).
				SetName("AWS-UpdateSSMAgent").
				SetInstanceId("i-1234567890abcdef0").
				SetAssociationName("nightly-agent-update").
				SetDocumentVersion("$DEFAULT").
				SetScheduleExpression("cron(0 2 ? * SUN *)"),
		},
		{
			name: "create association invalid instance and output location",
			shape: (&CreateAssociationInput{}).
				SetName("AWS-UpdateSSMAgent").
				SetInstanceId("instance-1").
				SetOutputLocation((&InstanceAssociationOutputLocation{}).
					SetS3Location((&S3OutputLocation{}).SetOutputS3BucketName("ab"))),
			want: []string{
				"CreateAssociationInput.InstanceId",
				"CreateAssociationInput.OutputLocation.S3Location.OutputS3BucketName",
			},
		},
		{
			name:  "association batch requires entries",
			shape: &CreateAssociationBatchInput{},
			want:  []string{"CreateAssociationBatchInput.Entries"},
		},
		{
			name: "association batch empty and nested",
			shape: (&CreateAssociationBatchInput{}).SetEntries([]CreateAssociationBatchRequestEntry{
				*(&CreateAssociationBatchRequestEntry{}).SetName("AWS-UpdateSSMAgent"),
				{},
			}),
			want: []string{"CreateAssociationBatchInput.Entries[1].Name"},
		},
		{
			name: "update association",
			shape: (&UpdateAssociationInput{}).
				SetAssociationId("not-a-uuid").
				SetAssociationVersion("0"),
			want: []string{
				"UpdateAssociationInput.AssociationId",
				"UpdateAssociationInput.AssociationVersion",
			},
		},
		{
			name: "describe association executions filters",
			shape: (&DescribeAssociationExecutionsInput{}).
				SetAssociationId("8dfe3659-4309-493a-8755-0123456789ab").
				SetMaxResults(51).
				SetFilters([]AssociationExecutionFilter{{Key: AssociationExecutionFilterKeyStatus}}),
			want: []string{
				"DescribeAssociationExecutionsInput.Filters[0].Value",
				"DescribeAssociationExecutionsInput.Filters[0].Type",
				"DescribeAssociationExecutionsInput.MaxResults",
			},
		},
		{
			name: "get command invocation",
			shape: (&GetCommandInvocationInput{}).
				SetCommandId("short").
				SetPluginName("aws"),
			want: []string{
				"GetCommandInvocationInput.CommandId",
				"GetCommandInvocationInput.InstanceId",
				"GetCommandInvocationInput.PluginName",
			},
		},
		{
			name: "list command invocations",
			shape: (&ListCommandInvocationsInput{}).
				SetInstanceId("mi-0123456789abcdef0").
				SetFilters([]CommandFilter{{Key: CommandFilterKeyStatus, Value: aws.String("")}}),
			want: []string{"ListCommandInvocationsInput.Filters[0].Value"},
		},
		{
			name: "put parameter",
			shape: (&PutParameterInput{}).
				SetName("/app/key").
				SetValue("v").
				SetKeyId("alias/my key").
				SetTags([]Tag{
					*(&Tag{}).SetKey("aws:owner").SetValue("me"),
					*(&Tag{}).SetKey("team"),
				}),
			want: []string{
				"PutParameterInput.KeyId",
				"PutParameterInput.Tags[0].Key",
				"PutParameterInput.Tags[1].Value",
			},
		},
		{
			name:  "put parameter required",
			shape: &PutParameterInput{},
			want:  []string{"PutParameterInput.Name", "PutParameterInput.Value"},
		},
		{
			name: "describe document",
			shape: (&DescribeDocumentInput{}).
				SetName("AWS-RunShellScript").
				SetDocumentVersion("v1").
				SetVersionName("release 1"),
			want: []string{
				"DescribeDocumentInput.DocumentVersion",
				"DescribeDocumentInput.VersionName",
			},
		},
		{
			name:  "get automation execution",
			shape: (&GetAutomationExecutionInput{}).SetAutomationExecutionId("abc"),
			want:  []string{"GetAutomationExecutionInput.AutomationExecutionId"},
		},
		{
			name: "describe automation executions",
			shape: (&DescribeAutomationExecutionsInput{}).SetFilters([]AutomationExecutionFilter{
				{Key: AutomationExecutionFilterKeyDocumentNamePrefix, Values: []string{"AWS-", ""}},
				{Values: []string{}},
			}),
			want: []string{
				"DescribeAutomationExecutionsInput.Filters[0].Values[1]",
				"DescribeAutomationExecutionsInput.Filters[1].Key",
				"DescribeAutomationExecutionsInput.Filters[1].Values",
			},
		},
		{
			name: "start automation execution",
			shape: (&StartAutomationExecutionInput{}).
				SetDocumentName("AWS-RestartEC2Instance").
				SetClientToken("0b6c5d1e-1111-2222-3333-444455556666").
				SetTargetLocations([]TargetLocation{
					*(&TargetLocation{}).SetAccounts([]string{"123456789012"}).SetTargetLocationMaxErrors("x"),
				}),
			want: []string{"StartAutomationExecutionInput.TargetLocations[0].TargetLocationMaxErrors"},
		},
		{
			name: "start automation execution token and locations",
			shape: (&StartAutomationExecutionInput{}).
				SetDocumentName("AWS-RestartEC2Instance").
				SetClientToken("token").
				SetTargetLocations([]TargetLocation{}),
			want: []string{
				"StartAutomationExecutionInput.ClientToken",
				"StartAutomationExecutionInput.ClientToken",
				"StartAutomationExecutionInput.TargetLocations",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.want, invalidFields(t, err))
		})
	}
}

func TestValidate_NilShape(t *testing.T) {
	var in *SendCommandInput
	assert.NoError(t, in.Validate())
}

func TestValidate_ErrorMessages(t *testing.T) {
	err := (&SendCommandInput{}).SetTimeoutSeconds(10).Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "2 validation error(s) found.")
	assert.Contains(t, msg, "missing required field, SendCommandInput.DocumentName.")
	assert.Contains(t, msg, "value 10 must be between 30 and 2592000, SendCommandInput.TimeoutSeconds.")

	var params smithy.InvalidParamsError
	require.True(t, errors.As(err, &params))
	var constraint *ParamConstraintError
	require.True(t, errors.As(params.Errs()[1], &constraint))
	assert.Equal(t, ConstraintRange, constraint.Kind)
}

func TestValidate_LengthCountsRunes(t *testing.T) {
	tag := (&Tag{}).SetKey(strings.Repeat("é", 128)).SetValue("")
	assert.NoError(t, tag.Validate())

	tag.SetKey(strings.Repeat("é", 129))
	assert.Equal(t, []string{"Tag.Key"}, invalidFields(t, tag.Validate()))
}

func TestValidate_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		value string
		re    *regexp.Regexp
		want  bool
	}{
		{"instance id short", "i-12345678", instanceIDPattern, true},
		{"instance id long", "i-1234567890abcdef0", instanceIDPattern, true},
		{"managed instance", "mi-1234567890abcdef0", instanceIDPattern, true},
		{"instance id bad", "i-123", instanceIDPattern, false},
		{"concurrency number", "25", maxConcurrencyPattern, true},
		{"concurrency percent", "100%", maxConcurrencyPattern, true},
		{"concurrency zero", "0", maxConcurrencyPattern, false},
		{"errors zero", "0", maxErrorsPattern, true},
		{"errors percent", "5%", maxErrorsPattern, true},
		{"errors over", "101%", maxErrorsPattern, false},
		{"document arn", "arn:aws:ssm:us-east-1:123456789012:document/My-Doc", documentARNPattern, true},
		{"document short", "ab", documentARNPattern, false},
		{"version latest", "$LATEST", documentVersionPattern, true},
		{"version number", "12", documentVersionPattern, true},
		{"version zero", "0", documentVersionPattern, false},
		{"resource group key", "resource-groups:Name", targetKeyPattern, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.re.MatchString(tt.value))
		})
	}
}

func TestParamConstraintError_Context(t *testing.T) {
	e := newConstraintError(ConstraintLength, "Key", "length must be between 1 and 128, got 0")
	assert.Equal(t, "Key", e.Field())

	e.SetContext("PutParameterInput")
	e.AddNestedContext("Tags[0]")
	assert.Equal(t, "PutParameterInput.Tags[0].Key", e.Field())

	e.AddNestedContext("Outer")
	assert.Equal(t, "PutParameterInput.Outer.Tags[0].Key", e.Field())
	assert.Equal(t, "length must be between 1 and 128, got 0, PutParameterInput.Outer.Tags[0].Key.", e.Error())
}

func TestValidateEnums(t *testing.T) {
	in := (&SendCommandInput{}).
		SetDocumentName("AWS-RunShellScript").
		SetDocumentHashType(DocumentHashTypeSha256)
	assert.NoError(t, ValidateEnums(in))

	in.SetDocumentHashType("Md5")
	in.SetNotificationConfig((&NotificationConfig{}).
		SetNotificationEvents([]NotificationEvent{NotificationEventSuccess, "Exploded"}))

	err := ValidateEnums(in)
	assert.Equal(t, []string{
		"SendCommandInput.DocumentHashType",
		"SendCommandInput.NotificationConfig.NotificationEvents[1]",
	}, invalidFields(t, err))
	assert.Contains(t, err.Error(), `value "Md5" is not a known DocumentHashType`)

	var nilIn *SendCommandInput
	assert.NoError(t, ValidateEnums(nilIn))
}
