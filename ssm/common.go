package ssm

import (
	"strings"

	"github.com/wadahiro/ssmshapes/internal/shapeutil"
)

// Target selects managed instances by tag, resource group or instance ID.
// Key is at most 163 characters; Values holds at most 50 entries.
type Target struct {
	Key    *string  `json:"Key,omitempty"`
	Values []string `json:"Values,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *Target) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *Target) Equal(other *Target) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *Target) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetKey sets the Key field's value.
func (s *Target) SetKey(v string) *Target {
	s.Key = &v
	return s
}

// SetValues sets the Values field's value.
func (s *Target) SetValues(v []string) *Target {
	s.Values = v
	return s
}

// Tag is a key-value pair attached to an SSM resource. Both members are required.
type Tag struct {
	// Key is 1 to 128 characters and may not start with "aws:".
	Key *string `json:"Key,omitempty"`

	// Value is at most 256 characters.
	Value *string `json:"Value,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *Tag) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *Tag) Equal(other *Tag) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *Tag) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetKey sets the Key field's value.
func (s *Tag) SetKey(v string) *Tag {
	s.Key = &v
	return s
}

// SetValue sets the Value field's value.
func (s *Tag) SetValue(v string) *Tag {
	s.Value = &v
	return s
}

// InstanceAssociationOutputLocation is where association output is written.
type InstanceAssociationOutputLocation struct {
	S3Location *S3OutputLocation `json:"S3Location,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *InstanceAssociationOutputLocation) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *InstanceAssociationOutputLocation) Equal(other *InstanceAssociationOutputLocation) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *InstanceAssociationOutputLocation) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetS3Location sets the S3Location field's value.
func (s *InstanceAssociationOutputLocation) SetS3Location(v *S3OutputLocation) *InstanceAssociationOutputLocation {
	s.S3Location = v
	return s
}

// S3OutputLocation names an S3 bucket for association output.
type S3OutputLocation struct {
	OutputS3Region     *string `json:"OutputS3Region,omitempty"`
	OutputS3BucketName *string `json:"OutputS3BucketName,omitempty"`
	OutputS3KeyPrefix  *string `json:"OutputS3KeyPrefix,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *S3OutputLocation) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *S3OutputLocation) Equal(other *S3OutputLocation) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *S3OutputLocation) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetOutputS3Region sets the OutputS3Region field's value.
func (s *S3OutputLocation) SetOutputS3Region(v string) *S3OutputLocation {
	s.OutputS3Region = &v
	return s
}

// SetOutputS3BucketName sets the OutputS3BucketName field's value.
func (s *S3OutputLocation) SetOutputS3BucketName(v string) *S3OutputLocation {
	s.OutputS3BucketName = &v
	return s
}

// SetOutputS3KeyPrefix sets the OutputS3KeyPrefix field's value.
func (s *S3OutputLocation) SetOutputS3KeyPrefix(v string) *S3OutputLocation {
	s.OutputS3KeyPrefix = &v
	return s
}

// NotificationConfig configures SNS notifications for command status changes.
type NotificationConfig struct {
	// NotificationArn is the SNS topic that receives notifications.
	NotificationArn *string `json:"NotificationArn,omitempty"`

	NotificationEvents []NotificationEvent `json:"NotificationEvents,omitempty"`
	NotificationType   NotificationType    `json:"NotificationType,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *NotificationConfig) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *NotificationConfig) Equal(other *NotificationConfig) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *NotificationConfig) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetNotificationArn sets the NotificationArn field's value.
func (s *NotificationConfig) SetNotificationArn(v string) *NotificationConfig {
	s.NotificationArn = &v
	return s
}

// SetNotificationEvents sets the NotificationEvents field's value.
func (s *NotificationConfig) SetNotificationEvents(v []NotificationEvent) *NotificationConfig {
	s.NotificationEvents = v
	return s
}

// SetNotificationType sets the NotificationType field's value.
func (s *NotificationConfig) SetNotificationType(v NotificationType) *NotificationConfig {
	s.NotificationType = v
	return s
}

// CloudWatchOutputConfig sends command output to CloudWatch Logs.
type CloudWatchOutputConfig struct {
	CloudWatchLogGroupName  *string `json:"CloudWatchLogGroupName,omitempty"`
	CloudWatchOutputEnabled *bool   `json:"CloudWatchOutputEnabled,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CloudWatchOutputConfig) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CloudWatchOutputConfig) Equal(other *CloudWatchOutputConfig) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CloudWatchOutputConfig) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetCloudWatchLogGroupName sets the CloudWatchLogGroupName field's value.
func (s *CloudWatchOutputConfig) SetCloudWatchLogGroupName(v string) *CloudWatchOutputConfig {
	s.CloudWatchLogGroupName = &v
	return s
}

// SetCloudWatchOutputEnabled sets the CloudWatchOutputEnabled field's value.
func (s *CloudWatchOutputConfig) SetCloudWatchOutputEnabled(v bool) *CloudWatchOutputConfig {
	s.CloudWatchOutputEnabled = &v
	return s
}

// ResolvedTargets lists the parameter values an automation fanned out over.
type ResolvedTargets struct {
	ParameterValues []string `json:"ParameterValues,omitempty"`
	Truncated       *bool    `json:"Truncated,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *ResolvedTargets) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ResolvedTargets) Equal(other *ResolvedTargets) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *ResolvedTargets) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetParameterValues sets the ParameterValues field's value.
func (s *ResolvedTargets) SetParameterValues(v []string) *ResolvedTargets {
	s.ParameterValues = v
	return s
}

// SetTruncated sets the Truncated field's value.
func (s *ResolvedTargets) SetTruncated(v bool) *ResolvedTargets {
	s.Truncated = &v
	return s
}

// TargetLocation is an account and region set for a multi-account automation.
type TargetLocation struct {
	Accounts                     []string `json:"Accounts,omitempty"`
	Regions                      []string `json:"Regions,omitempty"`
	TargetLocationMaxConcurrency *string  `json:"TargetLocationMaxConcurrency,omitempty"`
	TargetLocationMaxErrors      *string  `json:"TargetLocationMaxErrors,omitempty"`
	ExecutionRoleName            *string  `json:"ExecutionRoleName,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *TargetLocation) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *TargetLocation) Equal(other *TargetLocation) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *TargetLocation) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAccounts sets the Accounts field's value.
func (s *TargetLocation) SetAccounts(v []string) *TargetLocation {
	s.Accounts = v
	return s
}

// SetRegions sets the Regions field's value.
func (s *TargetLocation) SetRegions(v []string) *TargetLocation {
	s.Regions = v
	return s
}

// SetTargetLocationMaxConcurrency sets the TargetLocationMaxConcurrency field's value.
func (s *TargetLocation) SetTargetLocationMaxConcurrency(v string) *TargetLocation {
	s.TargetLocationMaxConcurrency = &v
	return s
}

// SetTargetLocationMaxErrors sets the TargetLocationMaxErrors field's value.
func (s *TargetLocation) SetTargetLocationMaxErrors(v string) *TargetLocation {
	s.TargetLocationMaxErrors = &v
	return s
}

// SetExecutionRoleName sets the ExecutionRoleName field's value.
func (s *TargetLocation) SetExecutionRoleName(v string) *TargetLocation {
	s.ExecutionRoleName = &v
	return s
}

// ProgressCounters summarises step outcomes of a rate-controlled automation.
type ProgressCounters struct {
	TotalSteps     *int32 `json:"TotalSteps,omitempty"`
	SuccessSteps   *int32 `json:"SuccessSteps,omitempty"`
	FailedSteps    *int32 `json:"FailedSteps,omitempty"`
	CancelledSteps *int32 `json:"CancelledSteps,omitempty"`
	TimedOutSteps  *int32 `json:"TimedOutSteps,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *ProgressCounters) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *ProgressCounters) Equal(other *ProgressCounters) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *ProgressCounters) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetTotalSteps sets the TotalSteps field's value.
func (s *ProgressCounters) SetTotalSteps(v int32) *ProgressCounters {
	s.TotalSteps = &v
	return s
}

// SetSuccessSteps sets the SuccessSteps field's value.
func (s *ProgressCounters) SetSuccessSteps(v int32) *ProgressCounters {
	s.SuccessSteps = &v
	return s
}

// SetFailedSteps sets the FailedSteps field's value.
func (s *ProgressCounters) SetFailedSteps(v int32) *ProgressCounters {
	s.FailedSteps = &v
	return s
}

// SetCancelledSteps sets the CancelledSteps field's value.
func (s *ProgressCounters) SetCancelledSteps(v int32) *ProgressCounters {
	s.CancelledSteps = &v
	return s
}

// SetTimedOutSteps sets the TimedOutSteps field's value.
func (s *ProgressCounters) SetTimedOutSteps(v int32) *ProgressCounters {
	s.TimedOutSteps = &v
	return s
}

// Validate checks the documented constraints of Target.
func (s *Target) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("Target")
	v.length("Key", s.Key, 1, 163)
	v.pattern("Key", s.Key, targetKeyPattern)
	v.count("Values", s.Values != nil, len(s.Values), 0, 50)
	return v.err()
}

// Validate checks the documented constraints of Tag.
func (s *Tag) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("Tag")
	v.required("Key", s.Key != nil)
	v.length("Key", s.Key, 1, 128)
	v.pattern("Key", s.Key, tagKeyPattern)
	if s.Key != nil && strings.HasPrefix(strings.ToLower(*s.Key), "aws:") {
		v.params.Add(newConstraintError(ConstraintPattern, "Key", `the "aws:" prefix is reserved`))
	}
	v.required("Value", s.Value != nil)
	v.length("Value", s.Value, 0, 256)
	return v.err()
}

// Validate checks the documented constraints of InstanceAssociationOutputLocation.
func (s *InstanceAssociationOutputLocation) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("InstanceAssociationOutputLocation")
	v.nested("S3Location", s.S3Location)
	return v.err()
}

// Validate checks the documented constraints of S3OutputLocation.
func (s *S3OutputLocation) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("S3OutputLocation")
	v.length("OutputS3Region", s.OutputS3Region, 3, 20)
	v.length("OutputS3BucketName", s.OutputS3BucketName, 3, 63)
	v.length("OutputS3KeyPrefix", s.OutputS3KeyPrefix, 0, 500)
	return v.err()
}

// Validate checks the documented constraints of CloudWatchOutputConfig.
func (s *CloudWatchOutputConfig) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("CloudWatchOutputConfig")
	v.length("CloudWatchLogGroupName", s.CloudWatchLogGroupName, 1, 512)
	v.pattern("CloudWatchLogGroupName", s.CloudWatchLogGroupName, logGroupNamePattern)
	return v.err()
}

// Validate checks the documented constraints of TargetLocation.
func (s *TargetLocation) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("TargetLocation")
	v.count("Accounts", s.Accounts != nil, len(s.Accounts), 1, 50)
	v.count("Regions", s.Regions != nil, len(s.Regions), 1, 50)
	v.length("TargetLocationMaxConcurrency", s.TargetLocationMaxConcurrency, 1, 7)
	v.pattern("TargetLocationMaxConcurrency", s.TargetLocationMaxConcurrency, maxConcurrencyPattern)
	v.length("TargetLocationMaxErrors", s.TargetLocationMaxErrors, 1, 7)
	v.pattern("TargetLocationMaxErrors", s.TargetLocationMaxErrors, maxErrorsPattern)
	v.length("ExecutionRoleName", s.ExecutionRoleName, 1, 64)
	v.pattern("ExecutionRoleName", s.ExecutionRoleName, executionRoleNamePattern)
	return v.err()
}
