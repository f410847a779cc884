package ssm

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_WireNamesAndOmission(t *testing.T) {
	in := (&SendCommandInput{}).
		SetDocumentName("AWS-RunShellScript").
		SetTimeoutSeconds(600).
		SetDocumentHashType(DocumentHashTypeSha256)

	b, err := Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"DocumentName": "AWS-RunShellScript",
		"TimeoutSeconds": 600,
		"DocumentHashType": "Sha256"
	}`, string(b))
}

func TestMarshal_EpochSeconds(t *testing.T) {
	cmd := (&Command{}).
		SetRequestedDateTime(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)).
		SetExpiresAfter(time.UnixMilli(1700003600500).UTC())

	b, err := Marshal(&SendCommandOutput{Command: cmd})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Command": {
		"RequestedDateTime": 1700000000,
		"ExpiresAfter": 1700003600.5
	}}`, string(b))
}

func TestRoundTrip(t *testing.T) {
	start := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   Shape
		out  Shape
	}{
		{"command output", &SendCommandOutput{Command: sampleCommand()}, &SendCommandOutput{}},
		{
			"automation execution",
			&GetAutomationExecutionOutput{AutomationExecution: (&AutomationExecution{}).
				SetAutomationExecutionId("7b5c1f1e-0000-4000-8000-000000000000").
				SetExecutionStartTime(start).
				SetExecutionEndTime(start.Add(90 * time.Second)).
				SetAutomationExecutionStatus(AutomationExecutionStatusSuccess).
				SetStepExecutions([]StepExecution{
					*(&StepExecution{}).
						SetStepName("stop").
						SetTimeoutSeconds(3600).
						SetExecutionStartTime(start).
						SetInputs(map[string]string{"InstanceIds": `["i-1"]`}),
				})},
			&GetAutomationExecutionOutput{},
		},
		{
			"association batch",
			(&CreateAssociationBatchInput{}).SetEntries([]CreateAssociationBatchRequestEntry{
				*(&CreateAssociationBatchRequestEntry{}).
					SetName("AWS-UpdateSSMAgent").
					SetParameters(map[string][]string{"version": {"latest"}}).
					SetComplianceSeverity(AssociationComplianceSeverityHigh),
			}),
			&CreateAssociationBatchInput{},
		},
		{
			"unknown enum value survives",
			(&PutParameterInput{}).SetName("/a").SetValue("v").SetTier("Premium"),
			&PutParameterInput{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(tt.in)
			require.NoError(t, err)
			require.NoError(t, Unmarshal(b, tt.out))

			assert.True(t, Equal(tt.in, tt.out), "decoded %s", tt.out)
			assert.Equal(t, tt.in.HashCode(), tt.out.HashCode())
		})
	}
}

func TestUnmarshal_Lenient(t *testing.T) {
	var in SendCommandInput
	require.NoError(t, Unmarshal([]byte(`{"DocumentName":"doc","FutureMember":{"x":1}}`), &in))
	assert.Equal(t, "doc", aws.ToString(in.DocumentName))
}

func TestUnmarshal_MillisecondTimestamp(t *testing.T) {
	var out AutomationExecutionMetadata
	require.NoError(t, Unmarshal([]byte(`{"ExecutionStartTime":1700000000.123}`), &out))
	require.NotNil(t, out.ExecutionStartTime)
	assert.Equal(t, int64(1700000000123), out.ExecutionStartTime.UnixMilli())
	assert.Equal(t, time.UTC, out.ExecutionStartTime.Location())
}

func TestUnmarshal_Errors(t *testing.T) {
	var out Command
	err := Unmarshal([]byte(`{"RequestedDateTime":"2024-01-15T12:00:00Z"}`), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode *ssm.Command")

	var in PutParameterInput
	err = Unmarshal([]byte(`{"Name":`), &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode *ssm.PutParameterInput")
}

func TestUnmarshal_MembersBesideTimestamps(t *testing.T) {
	t.Run("top level", func(t *testing.T) {
		var out Command
		require.NoError(t, Unmarshal([]byte(`{"CommandId":"abc","RequestedDateTime":1700000000}`), &out))
		assert.Equal(t, "abc", aws.ToString(out.CommandId))
		require.NotNil(t, out.RequestedDateTime)
		assert.Equal(t, int64(1700000000), out.RequestedDateTime.Unix())
	})

	t.Run("no timestamp present", func(t *testing.T) {
		var out AutomationExecutionMetadata
		require.NoError(t, Unmarshal([]byte(`{"DocumentName":"AWS-RestartEC2Instance"}`), &out))
		assert.Equal(t, "AWS-RestartEC2Instance", aws.ToString(out.DocumentName))
		assert.Nil(t, out.ExecutionStartTime)
	})

	t.Run("nested", func(t *testing.T) {
		var out ListCommandInvocationsOutput
		require.NoError(t, Unmarshal([]byte(`{"CommandInvocations":[{
			"CommandId":"abc",
			"RequestedDateTime":1700000000,
			"CommandPlugins":[{"Name":"aws:runShellScript","ResponseStartDateTime":1700000001.5}]
		}],"NextToken":"n"}`), &out))

		require.Len(t, out.CommandInvocations, 1)
		inv := out.CommandInvocations[0]
		assert.Equal(t, "abc", aws.ToString(inv.CommandId))
		require.Len(t, inv.CommandPlugins, 1)
		assert.Equal(t, "aws:runShellScript", aws.ToString(inv.CommandPlugins[0].Name))
		assert.Equal(t, int64(1700000001500), inv.CommandPlugins[0].ResponseStartDateTime.UnixMilli())
		assert.Equal(t, "n", aws.ToString(out.NextToken))
	})
}

func TestRoundTrip_DocumentHashMember(t *testing.T) {
	in := (&DescribeDocumentOutput{}).SetDocument((&DocumentDescription{}).
		SetName("AWS-RunShellScript").
		SetHash("9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08").
		SetHashType(DocumentHashTypeSha256).
		SetStatus(DocumentStatusActive).
		SetCreatedDate(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)))

	b, err := Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Document": {
		"Name": "AWS-RunShellScript",
		"Hash": "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		"HashType": "Sha256",
		"Status": "Active",
		"CreatedDate": 1705320000
	}}`, string(b))

	out := &DescribeDocumentOutput{}
	require.NoError(t, Unmarshal(b, out))
	assert.True(t, in.Equal(out), "decoded %s", out)
	assert.Equal(t, in.HashCode(), out.HashCode())
}
