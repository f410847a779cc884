package ssm

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/wadahiro/ssmshapes/internal/shapeutil"
)

// SendCommandInput is the request shape of SendCommand.
type SendCommandInput struct {
	// InstanceIds lists up to 50 instances. Use Targets for larger fleets.
	InstanceIds []string `json:"InstanceIds,omitempty"`

	Targets []Target `json:"Targets,omitempty"`

	// DocumentName is the document to run: a name, a shared document ARN or a partial ARN. Required.
	DocumentName *string `json:"DocumentName,omitempty"`

	DocumentVersion  *string          `json:"DocumentVersion,omitempty"`
	DocumentHash     *string          `json:"DocumentHash,omitempty"`
	DocumentHashType DocumentHashType `json:"DocumentHashType,omitempty"`

	// TimeoutSeconds is the delivery timeout, between 30 and 2592000 seconds.
	TimeoutSeconds *int32 `json:"TimeoutSeconds,omitempty"`

	Comment                *string                 `json:"Comment,omitempty"`
	Parameters             map[string][]string     `json:"Parameters,omitempty"`
	OutputS3Region         *string                 `json:"OutputS3Region,omitempty"`
	OutputS3BucketName     *string                 `json:"OutputS3BucketName,omitempty"`
	OutputS3KeyPrefix      *string                 `json:"OutputS3KeyPrefix,omitempty"`
	MaxConcurrency         *string                 `json:"MaxConcurrency,omitempty"`
	MaxErrors              *string                 `json:"MaxErrors,omitempty"`
	ServiceRoleArn         *string                 `json:"ServiceRoleArn,omitempty"`
	NotificationConfig     *NotificationConfig     `json:"NotificationConfig,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *SendCommandInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *SendCommandInput) Equal(other *SendCommandInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *SendCommandInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetInstanceIds sets the InstanceIds field's value.
func (s *SendCommandInput) SetInstanceIds(v []string) *SendCommandInput {
	s.InstanceIds = v
	return s
}

// SetTargets sets the Targets field's value.
func (s *SendCommandInput) SetTargets(v []Target) *SendCommandInput {
	s.Targets = v
	return s
}

// SetDocumentName sets the DocumentName field's value.
func (s *SendCommandInput) SetDocumentName(v string) *SendCommandInput {
	s.DocumentName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *SendCommandInput) SetDocumentVersion(v string) *SendCommandInput {
	s.DocumentVersion = &v
	return s
}

// SetDocumentHash sets the DocumentHash field's value.
func (s *SendCommandInput) SetDocumentHash(v string) *SendCommandInput {
	s.DocumentHash = &v
	return s
}

// SetDocumentHashType sets the DocumentHashType field's value.
func (s *SendCommandInput) SetDocumentHashType(v DocumentHashType) *SendCommandInput {
	s.DocumentHashType = v
	return s
}

// SetTimeoutSeconds sets the TimeoutSeconds field's value.
func (s *SendCommandInput) SetTimeoutSeconds(v int32) *SendCommandInput {
	s.TimeoutSeconds = &v
	return s
}

// SetComment sets the Comment field's value.
func (s *SendCommandInput) SetComment(v string) *SendCommandInput {
	s.Comment = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *SendCommandInput) SetParameters(v map[string][]string) *SendCommandInput {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *SendCommandInput) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *SendCommandInput) ClearParametersEntries() *SendCommandInput {
	s.Parameters = nil
	return s
}

// SetOutputS3Region sets the OutputS3Region field's value.
func (s *SendCommandInput) SetOutputS3Region(v string) *SendCommandInput {
	s.OutputS3Region = &v
	return s
}

// SetOutputS3BucketName sets the OutputS3BucketName field's value.
func (s *SendCommandInput) SetOutputS3BucketName(v string) *SendCommandInput {
	s.OutputS3BucketName = &v
	return s
}

// SetOutputS3KeyPrefix sets the OutputS3KeyPrefix field's value.
func (s *SendCommandInput) SetOutputS3KeyPrefix(v string) *SendCommandInput {
	s.OutputS3KeyPrefix = &v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *SendCommandInput) SetMaxConcurrency(v string) *SendCommandInput {
	s.MaxConcurrency = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *SendCommandInput) SetMaxErrors(v string) *SendCommandInput {
	s.MaxErrors = &v
	return s
}

// SetServiceRoleArn sets the ServiceRoleArn field's value.
func (s *SendCommandInput) SetServiceRoleArn(v string) *SendCommandInput {
	s.ServiceRoleArn = &v
	return s
}

// SetNotificationConfig sets the NotificationConfig field's value.
func (s *SendCommandInput) SetNotificationConfig(v *NotificationConfig) *SendCommandInput {
	s.NotificationConfig = v
	return s
}

// SetCloudWatchOutputConfig sets the CloudWatchOutputConfig field's value.
func (s *SendCommandInput) SetCloudWatchOutputConfig(v *CloudWatchOutputConfig) *SendCommandInput {
	s.CloudWatchOutputConfig = v
	return s
}

// SendCommandOutput is the response shape of SendCommand.
type SendCommandOutput struct {
	Command *Command `json:"Command,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *SendCommandOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *SendCommandOutput) Equal(other *SendCommandOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *SendCommandOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCommand sets the Command field's value.
func (s *SendCommandOutput) SetCommand(v *Command) *SendCommandOutput {
	s.Command = v
	return s
}

// Command describes a command request.
type Command struct {
	CommandId       *string `json:"CommandId,omitempty"`
	DocumentName    *string `json:"DocumentName,omitempty"`
	DocumentVersion *string `json:"DocumentVersion,omitempty"`
	Comment         *string `json:"Comment,omitempty"`

	// ExpiresAfter is when the command stops being delivered to targets that have not started it.
	ExpiresAfter *time.Time `json:"ExpiresAfter,omitempty"`

	Parameters             map[string][]string     `json:"Parameters,omitempty"`
	InstanceIds            []string                `json:"InstanceIds,omitempty"`
	Targets                []Target                `json:"Targets,omitempty"`
	RequestedDateTime      *time.Time              `json:"RequestedDateTime,omitempty"`
	Status                 CommandStatus           `json:"Status,omitempty"`
	StatusDetails          *string                 `json:"StatusDetails,omitempty"`
	OutputS3Region         *string                 `json:"OutputS3Region,omitempty"`
	OutputS3BucketName     *string                 `json:"OutputS3BucketName,omitempty"`
	OutputS3KeyPrefix      *string                 `json:"OutputS3KeyPrefix,omitempty"`
	MaxConcurrency         *string                 `json:"MaxConcurrency,omitempty"`
	MaxErrors              *string                 `json:"MaxErrors,omitempty"`
	TargetCount            *int32                  `json:"TargetCount,omitempty"`
	CompletedCount         *int32                  `json:"CompletedCount,omitempty"`
	ErrorCount             *int32                  `json:"ErrorCount,omitempty"`
	DeliveryTimedOutCount  *int32                  `json:"DeliveryTimedOutCount,omitempty"`
	ServiceRole            *string                 `json:"ServiceRole,omitempty"`
	NotificationConfig     *NotificationConfig     `json:"NotificationConfig,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
	TimeoutSeconds         *int32                  `json:"TimeoutSeconds,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *Command) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *Command) Equal(other *Command) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *Command) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCommandId sets the CommandId field's value.
func (s *Command) SetCommandId(v string) *Command {
	s.CommandId = &v
	return s
}

// SetDocumentName sets the DocumentName field's value.
func (s *Command) SetDocumentName(v string) *Command {
	s.DocumentName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *Command) SetDocumentVersion(v string) *Command {
	s.DocumentVersion = &v
	return s
}

// SetComment sets the Comment field's value.
func (s *Command) SetComment(v string) *Command {
	s.Comment = &v
	return s
}

// SetExpiresAfter sets the ExpiresAfter field's value.
func (s *Command) SetExpiresAfter(v time.Time) *Command {
	s.ExpiresAfter = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *Command) SetParameters(v map[string][]string) *Command {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *Command) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *Command) ClearParametersEntries() *Command {
	s.Parameters = nil
	return s
}

// SetInstanceIds sets the InstanceIds field's value.
func (s *Command) SetInstanceIds(v []string) *Command {
	s.InstanceIds = v
	return s
}

// SetTargets sets the Targets field's value.
func (s *Command) SetTargets(v []Target) *Command {
	s.Targets = v
	return s
}

// SetRequestedDateTime sets the RequestedDateTime field's value.
func (s *Command) SetRequestedDateTime(v time.Time) *Command {
	s.RequestedDateTime = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *Command) SetStatus(v CommandStatus) *Command {
	s.Status = v
	return s
}

// SetStatusDetails sets the StatusDetails field's value.
func (s *Command) SetStatusDetails(v string) *Command {
	s.StatusDetails = &v
	return s
}

// SetOutputS3Region sets the OutputS3Region field's value.
func (s *Command) SetOutputS3Region(v string) *Command {
	s.OutputS3Region = &v
	return s
}

// SetOutputS3BucketName sets the OutputS3BucketName field's value.
func (s *Command) SetOutputS3BucketName(v string) *Command {
	s.OutputS3BucketName = &v
	return s
}

// SetOutputS3KeyPrefix sets the OutputS3KeyPrefix field's value.
func (s *Command) SetOutputS3KeyPrefix(v string) *Command {
	s.OutputS3KeyPrefix = &v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *Command) SetMaxConcurrency(v string) *Command {
	s.MaxConcurrency = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *Command) SetMaxErrors(v string) *Command {
	s.MaxErrors = &v
	return s
}

// SetTargetCount sets the TargetCount field's value.
func (s *Command) SetTargetCount(v int32) *Command {
	s.TargetCount = &v
	return s
}

// SetCompletedCount sets the CompletedCount field's value.
func (s *Command) SetCompletedCount(v int32) *Command {
	s.CompletedCount = &v
	return s
}

// SetErrorCount sets the ErrorCount field's value.
func (s *Command) SetErrorCount(v int32) *Command {
	s.ErrorCount = &v
	return s
}

// SetDeliveryTimedOutCount sets the DeliveryTimedOutCount field's value.
func (s *Command) SetDeliveryTimedOutCount(v int32) *Command {
	s.DeliveryTimedOutCount = &v
	return s
}

// SetServiceRole sets the ServiceRole field's value.
func (s *Command) SetServiceRole(v string) *Command {
	s.ServiceRole = &v
	return s
}

// SetNotificationConfig sets the NotificationConfig field's value.
func (s *Command) SetNotificationConfig(v *NotificationConfig) *Command {
	s.NotificationConfig = v
	return s
}

// SetCloudWatchOutputConfig sets the CloudWatchOutputConfig field's value.
func (s *Command) SetCloudWatchOutputConfig(v *CloudWatchOutputConfig) *Command {
	s.CloudWatchOutputConfig = v
	return s
}

// SetTimeoutSeconds sets the TimeoutSeconds field's value.
func (s *Command) SetTimeoutSeconds(v int32) *Command {
	s.TimeoutSeconds = &v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s Command) MarshalJSON() ([]byte, error) {
	type alias Command
	return json.Marshal(struct {
		alias
		ExpiresAfter      *epochTime `json:"ExpiresAfter,omitempty"`
		RequestedDateTime *epochTime `json:"RequestedDateTime,omitempty"`
	}{
		alias:             alias(s),
		ExpiresAfter:      toEpoch(s.ExpiresAfter),
		RequestedDateTime: toEpoch(s.RequestedDateTime),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *Command) UnmarshalJSON(b []byte) error {
	type alias Command
	aux := struct {
		alias
		ExpiresAfter      *epochTime `json:"ExpiresAfter,omitempty"`
		RequestedDateTime *epochTime `json:"RequestedDateTime,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = Command(aux.alias)
	s.ExpiresAfter = aux.ExpiresAfter.asTime()
	s.RequestedDateTime = aux.RequestedDateTime.asTime()
	return nil
}

// GetCommandInvocationInput is the request shape of GetCommandInvocation.
type GetCommandInvocationInput struct {
	CommandId  *string `json:"CommandId,omitempty"`
	InstanceId *string `json:"InstanceId,omitempty"`
	PluginName *string `json:"PluginName,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *GetCommandInvocationInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetCommandInvocationInput) Equal(other *GetCommandInvocationInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *GetCommandInvocationInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCommandId sets the CommandId field's value.
func (s *GetCommandInvocationInput) SetCommandId(v string) *GetCommandInvocationInput {
	s.CommandId = &v
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *GetCommandInvocationInput) SetInstanceId(v string) *GetCommandInvocationInput {
	s.InstanceId = &v
	return s
}

// SetPluginName sets the PluginName field's value.
func (s *GetCommandInvocationInput) SetPluginName(v string) *GetCommandInvocationInput {
	s.PluginName = &v
	return s
}

// GetCommandInvocationOutput is the response shape of GetCommandInvocation.
// The execution times are ISO 8601 strings on the wire, not epoch timestamps.
type GetCommandInvocationOutput struct {
	CommandId              *string                 `json:"CommandId,omitempty"`
	InstanceId             *string                 `json:"InstanceId,omitempty"`
	Comment                *string                 `json:"Comment,omitempty"`
	DocumentName           *string                 `json:"DocumentName,omitempty"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	PluginName             *string                 `json:"PluginName,omitempty"`
	ResponseCode           *int32                  `json:"ResponseCode,omitempty"`
	ExecutionStartDateTime *string                 `json:"ExecutionStartDateTime,omitempty"`
	ExecutionElapsedTime   *string                 `json:"ExecutionElapsedTime,omitempty"`
	ExecutionEndDateTime   *string                 `json:"ExecutionEndDateTime,omitempty"`
	Status                 CommandInvocationStatus `json:"Status,omitempty"`
	StatusDetails          *string                 `json:"StatusDetails,omitempty"`
	StandardOutputContent  *string                 `json:"StandardOutputContent,omitempty"`
	StandardOutputUrl      *string                 `json:"StandardOutputUrl,omitempty"`
	StandardErrorContent   *string                 `json:"StandardErrorContent,omitempty"`
	StandardErrorUrl       *string                 `json:"StandardErrorUrl,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *GetCommandInvocationOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetCommandInvocationOutput) Equal(other *GetCommandInvocationOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *GetCommandInvocationOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCommandId sets the CommandId field's value.
func (s *GetCommandInvocationOutput) SetCommandId(v string) *GetCommandInvocationOutput {
	s.CommandId = &v
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *GetCommandInvocationOutput) SetInstanceId(v string) *GetCommandInvocationOutput {
	s.InstanceId = &v
	return s
}

// SetComment sets the Comment field's value.
func (s *GetCommandInvocationOutput) SetComment(v string) *GetCommandInvocationOutput {
	s.Comment = &v
	return s
}

// SetDocumentName sets the DocumentName field's value.
func (s *GetCommandInvocationOutput) SetDocumentName(v string) *GetCommandInvocationOutput {
	s.DocumentName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *GetCommandInvocationOutput) SetDocumentVersion(v string) *GetCommandInvocationOutput {
	s.DocumentVersion = &v
	return s
}

// SetPluginName sets the PluginName field's value.
func (s *GetCommandInvocationOutput) SetPluginName(v string) *GetCommandInvocationOutput {
	s.PluginName = &v
	return s
}

// SetResponseCode sets the ResponseCode field's value.
func (s *GetCommandInvocationOutput) SetResponseCode(v int32) *GetCommandInvocationOutput {
	s.ResponseCode = &v
	return s
}

// SetExecutionStartDateTime sets the ExecutionStartDateTime field's value.
func (s *GetCommandInvocationOutput) SetExecutionStartDateTime(v string) *GetCommandInvocationOutput {
	s.ExecutionStartDateTime = &v
	return s
}

// SetExecutionElapsedTime sets the ExecutionElapsedTime field's value.
func (s *GetCommandInvocationOutput) SetExecutionElapsedTime(v string) *GetCommandInvocationOutput {
	s.ExecutionElapsedTime = &v
	return s
}

// SetExecutionEndDateTime sets the ExecutionEndDateTime field's value.
func (s *GetCommandInvocationOutput) SetExecutionEndDateTime(v string) *GetCommandInvocationOutput {
	s.ExecutionEndDateTime = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *GetCommandInvocationOutput) SetStatus(v CommandInvocationStatus) *GetCommandInvocationOutput {
	s.Status = v
	return s
}

// SetStatusDetails sets the StatusDetails field's value.
func (s *GetCommandInvocationOutput) SetStatusDetails(v string) *GetCommandInvocationOutput {
	s.StatusDetails = &v
	return s
}

// SetStandardOutputContent sets the StandardOutputContent field's value.
func (s *GetCommandInvocationOutput) SetStandardOutputContent(v string) *GetCommandInvocationOutput {
	s.StandardOutputContent = &v
	return s
}

// SetStandardOutputUrl sets the StandardOutputUrl field's value.
func (s *GetCommandInvocationOutput) SetStandardOutputUrl(v string) *GetCommandInvocationOutput {
	s.StandardOutputUrl = &v
	return s
}

// SetStandardErrorContent sets the StandardErrorContent field's value.
func (s *GetCommandInvocationOutput) SetStandardErrorContent(v string) *GetCommandInvocationOutput {
	s.StandardErrorContent = &v
	return s
}

// SetStandardErrorUrl sets the StandardErrorUrl field's value.
func (s *GetCommandInvocationOutput) SetStandardErrorUrl(v string) *GetCommandInvocationOutput {
	s.StandardErrorUrl = &v
	return s
}

// SetCloudWatchOutputConfig sets the CloudWatchOutputConfig field's value.
func (s *GetCommandInvocationOutput) SetCloudWatchOutputConfig(v *CloudWatchOutputConfig) *GetCommandInvocationOutput {
	s.CloudWatchOutputConfig = v
	return s
}

// ListCommandInvocationsInput is the request shape of ListCommandInvocations.
type ListCommandInvocationsInput struct {
	CommandId  *string         `json:"CommandId,omitempty"`
	InstanceId *string         `json:"InstanceId,omitempty"`
	MaxResults *int32          `json:"MaxResults,omitempty"`
	NextToken  *string         `json:"NextToken,omitempty"`
	Filters    []CommandFilter `json:"Filters,omitempty"`

	// Details includes per-plugin output in the response.
	Details *bool `json:"Details,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *ListCommandInvocationsInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListCommandInvocationsInput) Equal(other *ListCommandInvocationsInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *ListCommandInvocationsInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCommandId sets the CommandId field's value.
func (s *ListCommandInvocationsInput) SetCommandId(v string) *ListCommandInvocationsInput {
	s.CommandId = &v
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *ListCommandInvocationsInput) SetInstanceId(v string) *ListCommandInvocationsInput {
	s.InstanceId = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *ListCommandInvocationsInput) SetMaxResults(v int32) *ListCommandInvocationsInput {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListCommandInvocationsInput) SetNextToken(v string) *ListCommandInvocationsInput {
	s.NextToken = &v
	return s
}

// SetFilters sets the Filters field's value.
func (s *ListCommandInvocationsInput) SetFilters(v []CommandFilter) *ListCommandInvocationsInput {
	s.Filters = v
	return s
}

// SetDetails sets the Details field's value.
func (s *ListCommandInvocationsInput) SetDetails(v bool) *ListCommandInvocationsInput {
	s.Details = &v
	return s
}

// ListCommandInvocationsOutput is the response shape of ListCommandInvocations.
type ListCommandInvocationsOutput struct {
	CommandInvocations []CommandInvocation `json:"CommandInvocations,omitempty"`
	NextToken          *string             `json:"NextToken,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *ListCommandInvocationsOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ListCommandInvocationsOutput) Equal(other *ListCommandInvocationsOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *ListCommandInvocationsOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCommandInvocations sets the CommandInvocations field's value.
func (s *ListCommandInvocationsOutput) SetCommandInvocations(v []CommandInvocation) *ListCommandInvocationsOutput {
	s.CommandInvocations = v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListCommandInvocationsOutput) SetNextToken(v string) *ListCommandInvocationsOutput {
	s.NextToken = &v
	return s
}

// CommandInvocation is a command as it ran on one instance.
type CommandInvocation struct {
	CommandId              *string                 `json:"CommandId,omitempty"`
	InstanceId             *string                 `json:"InstanceId,omitempty"`
	InstanceName           *string                 `json:"InstanceName,omitempty"`
	Comment                *string                 `json:"Comment,omitempty"`
	DocumentName           *string                 `json:"DocumentName,omitempty"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	RequestedDateTime      *time.Time              `json:"RequestedDateTime,omitempty"`
	Status                 CommandInvocationStatus `json:"Status,omitempty"`
	StatusDetails          *string                 `json:"StatusDetails,omitempty"`
	TraceOutput            *string                 `json:"TraceOutput,omitempty"`
	StandardOutputUrl      *string                 `json:"StandardOutputUrl,omitempty"`
	StandardErrorUrl       *string                 `json:"StandardErrorUrl,omitempty"`
	CommandPlugins         []CommandPlugin         `json:"CommandPlugins,omitempty"`
	ServiceRole            *string                 `json:"ServiceRole,omitempty"`
	NotificationConfig     *NotificationConfig     `json:"NotificationConfig,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CommandInvocation) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CommandInvocation) Equal(other *CommandInvocation) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CommandInvocation) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCommandId sets the CommandId field's value.
func (s *CommandInvocation) SetCommandId(v string) *CommandInvocation {
	s.CommandId = &v
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *CommandInvocation) SetInstanceId(v string) *CommandInvocation {
	s.InstanceId = &v
	return s
}

// SetInstanceName sets the InstanceName field's value.
func (s *CommandInvocation) SetInstanceName(v string) *CommandInvocation {
	s.InstanceName = &v
	return s
}

// SetComment sets the Comment field's value.
func (s *CommandInvocation) SetComment(v string) *CommandInvocation {
	s.Comment = &v
	return s
}

// SetDocumentName sets the DocumentName field's value.
func (s *CommandInvocation) SetDocumentName(v string) *CommandInvocation {
	s.DocumentName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *CommandInvocation) SetDocumentVersion(v string) *CommandInvocation {
	s.DocumentVersion = &v
	return s
}

// SetRequestedDateTime sets the RequestedDateTime field's value.
func (s *CommandInvocation) SetRequestedDateTime(v time.Time) *CommandInvocation {
	s.RequestedDateTime = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *CommandInvocation) SetStatus(v CommandInvocationStatus) *CommandInvocation {
	s.Status = v
	return s
}

// SetStatusDetails sets the StatusDetails field's value.
func (s *CommandInvocation) SetStatusDetails(v string) *CommandInvocation {
	s.StatusDetails = &v
	return s
}

// SetTraceOutput sets the TraceOutput field's value.
func (s *CommandInvocation) SetTraceOutput(v string) *CommandInvocation {
	s.TraceOutput = &v
	return s
}

// SetStandardOutputUrl sets the StandardOutputUrl field's value.
func (s *CommandInvocation) SetStandardOutputUrl(v string) *CommandInvocation {
	s.StandardOutputUrl = &v
	return s
}

// SetStandardErrorUrl sets the StandardErrorUrl field's value.
func (s *CommandInvocation) SetStandardErrorUrl(v string) *CommandInvocation {
	s.StandardErrorUrl = &v
	return s
}

// SetCommandPlugins sets the CommandPlugins field's value.
func (s *CommandInvocation) SetCommandPlugins(v []CommandPlugin) *CommandInvocation {
	s.CommandPlugins = v
	return s
}

// SetServiceRole sets the ServiceRole field's value.
func (s *CommandInvocation) SetServiceRole(v string) *CommandInvocation {
	s.ServiceRole = &v
	return s
}

// SetNotificationConfig sets the NotificationConfig field's value.
func (s *CommandInvocation) SetNotificationConfig(v *NotificationConfig) *CommandInvocation {
	s.NotificationConfig = v
	return s
}

// SetCloudWatchOutputConfig sets the CloudWatchOutputConfig field's value.
func (s *CommandInvocation) SetCloudWatchOutputConfig(v *CloudWatchOutputConfig) *CommandInvocation {
	s.CloudWatchOutputConfig = v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s CommandInvocation) MarshalJSON() ([]byte, error) {
	type alias CommandInvocation
	return json.Marshal(struct {
		alias
		RequestedDateTime *epochTime `json:"RequestedDateTime,omitempty"`
	}{
		alias:             alias(s),
		RequestedDateTime: toEpoch(s.RequestedDateTime),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *CommandInvocation) UnmarshalJSON(b []byte) error {
	type alias CommandInvocation
	aux := struct {
		alias
		RequestedDateTime *epochTime `json:"RequestedDateTime,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = CommandInvocation(aux.alias)
	s.RequestedDateTime = aux.RequestedDateTime.asTime()
	return nil
}

// CommandPlugin describes one plugin step of a command invocation.
type CommandPlugin struct {
	// Name is the plugin, for example aws:runShellScript.
	Name *string `json:"Name,omitempty"`

	Status                 CommandPluginStatus `json:"Status,omitempty"`
	StatusDetails          *string             `json:"StatusDetails,omitempty"`
	ResponseCode           *int32              `json:"ResponseCode,omitempty"`
	ResponseStartDateTime  *time.Time          `json:"ResponseStartDateTime,omitempty"`
	ResponseFinishDateTime *time.Time          `json:"ResponseFinishDateTime,omitempty"`

	// Output holds the first 2500 characters written by the plugin.
	Output *string `json:"Output,omitempty"`

	StandardOutputUrl  *string `json:"StandardOutputUrl,omitempty"`
	StandardErrorUrl   *string `json:"StandardErrorUrl,omitempty"`
	OutputS3Region     *string `json:"OutputS3Region,omitempty"`
	OutputS3BucketName *string `json:"OutputS3BucketName,omitempty"`
	OutputS3KeyPrefix  *string `json:"OutputS3KeyPrefix,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CommandPlugin) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CommandPlugin) Equal(other *CommandPlugin) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CommandPlugin) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *CommandPlugin) SetName(v string) *CommandPlugin {
	s.Name = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *CommandPlugin) SetStatus(v CommandPluginStatus) *CommandPlugin {
	s.Status = v
	return s
}

// SetStatusDetails sets the StatusDetails field's value.
func (s *CommandPlugin) SetStatusDetails(v string) *CommandPlugin {
	s.StatusDetails = &v
	return s
}

// SetResponseCode sets the ResponseCode field's value.
func (s *CommandPlugin) SetResponseCode(v int32) *CommandPlugin {
	s.ResponseCode = &v
	return s
}

// SetResponseStartDateTime sets the ResponseStartDateTime field's value.
func (s *CommandPlugin) SetResponseStartDateTime(v time.Time) *CommandPlugin {
	s.ResponseStartDateTime = &v
	return s
}

// SetResponseFinishDateTime sets the ResponseFinishDateTime field's value.
func (s *CommandPlugin) SetResponseFinishDateTime(v time.Time) *CommandPlugin {
	s.ResponseFinishDateTime = &v
	return s
}

// SetOutput sets the Output field's value.
func (s *CommandPlugin) SetOutput(v string) *CommandPlugin {
	s.Output = &v
	return s
}

// SetStandardOutputUrl sets the StandardOutputUrl field's value.
func (s *CommandPlugin) SetStandardOutputUrl(v string) *CommandPlugin {
	s.StandardOutputUrl = &v
	return s
}

// SetStandardErrorUrl sets the StandardErrorUrl field's value.
func (s *CommandPlugin) SetStandardErrorUrl(v string) *CommandPlugin {
	s.StandardErrorUrl = &v
	return s
}

// SetOutputS3Region sets the OutputS3Region field's value.
func (s *CommandPlugin) SetOutputS3Region(v string) *CommandPlugin {
	s.OutputS3Region = &v
	return s
}

// SetOutputS3BucketName sets the OutputS3BucketName field's value.
func (s *CommandPlugin) SetOutputS3BucketName(v string) *CommandPlugin {
	s.OutputS3BucketName = &v
	return s
}

// SetOutputS3KeyPrefix sets the OutputS3KeyPrefix field's value.
func (s *CommandPlugin) SetOutputS3KeyPrefix(v string) *CommandPlugin {
	s.OutputS3KeyPrefix = &v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s CommandPlugin) MarshalJSON() ([]byte, error) {
	type alias CommandPlugin
	return json.Marshal(struct {
		alias
		ResponseStartDateTime  *epochTime `json:"ResponseStartDateTime,omitempty"`
		ResponseFinishDateTime *epochTime `json:"ResponseFinishDateTime,omitempty"`
	}{
		alias:                  alias(s),
		ResponseStartDateTime:  toEpoch(s.ResponseStartDateTime),
		ResponseFinishDateTime: toEpoch(s.ResponseFinishDateTime),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *CommandPlugin) UnmarshalJSON(b []byte) error {
	type alias CommandPlugin
	aux := struct {
		alias
		ResponseStartDateTime  *epochTime `json:"ResponseStartDateTime,omitempty"`
		ResponseFinishDateTime *epochTime `json:"ResponseFinishDateTime,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = CommandPlugin(aux.alias)
	s.ResponseStartDateTime = aux.ResponseStartDateTime.asTime()
	s.ResponseFinishDateTime = aux.ResponseFinishDateTime.asTime()
	return nil
}

// CommandFilter narrows ListCommandInvocations results.
type CommandFilter struct {
	Key   CommandFilterKey `json:"Key,omitempty"`
	Value *string          `json:"Value,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CommandFilter) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CommandFilter) Equal(other *CommandFilter) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CommandFilter) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetKey sets the Key field's value.
func (s *CommandFilter) SetKey(v CommandFilterKey) *CommandFilter {
	s.Key = v
	return s
}

// SetValue sets the Value field's value.
func (s *CommandFilter) SetValue(v string) *CommandFilter {
	s.Value = &v
	return s
}

// Validate checks the documented constraints of SendCommandInput.
func (s *SendCommandInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("SendCommandInput")
	v.count("InstanceIds", s.InstanceIds != nil, len(s.InstanceIds), 0, 50)
	v.targets(s.Targets)
	v.required("DocumentName", s.DocumentName != nil)
	v.pattern("DocumentName", s.DocumentName, documentARNPattern)
	v.documentVersion(s.DocumentVersion)
	v.length("DocumentHash", s.DocumentHash, 0, 256)
	v.between("TimeoutSeconds", s.TimeoutSeconds, 30, 2592000)
	v.length("Comment", s.Comment, 0, 100)
	v.length("OutputS3Region", s.OutputS3Region, 3, 20)
	v.length("OutputS3BucketName", s.OutputS3BucketName, 3, 63)
	v.length("OutputS3KeyPrefix", s.OutputS3KeyPrefix, 0, 500)
	v.rateControl(s.MaxConcurrency, s.MaxErrors)
	v.nested("CloudWatchOutputConfig", s.CloudWatchOutputConfig)
	return v.err()
}

// Validate checks the documented constraints of GetCommandInvocationInput.
func (s *GetCommandInvocationInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("GetCommandInvocationInput")
	v.required("CommandId", s.CommandId != nil)
	v.length("CommandId", s.CommandId, 36, 36)
	v.required("InstanceId", s.InstanceId != nil)
	v.pattern("InstanceId", s.InstanceId, instanceIDPattern)
	v.length("PluginName", s.PluginName, 4, unbounded)
	return v.err()
}

// Validate checks the documented constraints of ListCommandInvocationsInput.
func (s *ListCommandInvocationsInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("ListCommandInvocationsInput")
	v.length("CommandId", s.CommandId, 36, 36)
	v.pattern("InstanceId", s.InstanceId, instanceIDPattern)
	v.between("MaxResults", s.MaxResults, 1, 50)
	v.count("Filters", s.Filters != nil, len(s.Filters), 1, 5)
	validateList(v, "Filters", s.Filters)
	return v.err()
}

// Validate checks the documented constraints of CommandFilter.
func (s *CommandFilter) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("CommandFilter")
	v.required("Key", s.Key != "")
	v.required("Value", s.Value != nil)
	v.length("Value", s.Value, 1, 128)
	return v.err()
}
