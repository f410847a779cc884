package ssm

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/wadahiro/ssmshapes/internal/shapeutil"
)

// GetAutomationExecutionInput is the request shape of GetAutomationExecution.
type GetAutomationExecutionInput struct {
	AutomationExecutionId *string `json:"AutomationExecutionId,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *GetAutomationExecutionInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetAutomationExecutionInput) Equal(other *GetAutomationExecutionInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *GetAutomationExecutionInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAutomationExecutionId sets the AutomationExecutionId field's value.
func (s *GetAutomationExecutionInput) SetAutomationExecutionId(v string) *GetAutomationExecutionInput {
	s.AutomationExecutionId = &v
	return s
}

// GetAutomationExecutionOutput is the response shape of GetAutomationExecution.
type GetAutomationExecutionOutput struct {
	AutomationExecution *AutomationExecution `json:"AutomationExecution,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *GetAutomationExecutionOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *GetAutomationExecutionOutput) Equal(other *GetAutomationExecutionOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *GetAutomationExecutionOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAutomationExecution sets the AutomationExecution field's value.
func (s *GetAutomationExecutionOutput) SetAutomationExecution(v *AutomationExecution) *GetAutomationExecutionOutput {
	s.AutomationExecution = v
	return s
}

// AutomationExecution is the detailed state of an automation run.
type AutomationExecution struct {
	AutomationExecutionId       *string                   `json:"AutomationExecutionId,omitempty"`
	DocumentName                *string                   `json:"DocumentName,omitempty"`
	DocumentVersion             *string                   `json:"DocumentVersion,omitempty"`
	ExecutionStartTime          *time.Time                `json:"ExecutionStartTime,omitempty"`
	ExecutionEndTime            *time.Time                `json:"ExecutionEndTime,omitempty"`
	AutomationExecutionStatus   AutomationExecutionStatus `json:"AutomationExecutionStatus,omitempty"`
	StepExecutions              []StepExecution           `json:"StepExecutions,omitempty"`
	StepExecutionsTruncated     *bool                     `json:"StepExecutionsTruncated,omitempty"`
	Parameters                  map[string][]string       `json:"Parameters,omitempty"`
	Outputs                     map[string][]string       `json:"Outputs,omitempty"`
	FailureMessage              *string                   `json:"FailureMessage,omitempty"`
	Mode                        ExecutionMode             `json:"Mode,omitempty"`
	ParentAutomationExecutionId *string                   `json:"ParentAutomationExecutionId,omitempty"`
	ExecutedBy                  *string                   `json:"ExecutedBy,omitempty"`
	CurrentStepName             *string                   `json:"CurrentStepName,omitempty"`
	CurrentAction               *string                   `json:"CurrentAction,omitempty"`
	TargetParameterName         *string                   `json:"TargetParameterName,omitempty"`
	Targets                     []Target                  `json:"Targets,omitempty"`
	TargetMaps                  []map[string][]string     `json:"TargetMaps,omitempty"`
	ResolvedTargets             *ResolvedTargets          `json:"ResolvedTargets,omitempty"`
	MaxConcurrency              *string                   `json:"MaxConcurrency,omitempty"`
	MaxErrors                   *string                   `json:"MaxErrors,omitempty"`
	Target                      *string                   `json:"Target,omitempty"`
	TargetLocations             []TargetLocation          `json:"TargetLocations,omitempty"`
	ProgressCounters            *ProgressCounters         `json:"ProgressCounters,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AutomationExecution) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AutomationExecution) Equal(other *AutomationExecution) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AutomationExecution) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAutomationExecutionId sets the AutomationExecutionId field's value.
func (s *AutomationExecution) SetAutomationExecutionId(v string) *AutomationExecution {
	s.AutomationExecutionId = &v
	return s
}

// SetDocumentName sets the DocumentName field's value.
func (s *AutomationExecution) SetDocumentName(v string) *AutomationExecution {
	s.DocumentName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *AutomationExecution) SetDocumentVersion(v string) *AutomationExecution {
	s.DocumentVersion = &v
	return s
}

// SetExecutionStartTime sets the ExecutionStartTime field's value.
func (s *AutomationExecution) SetExecutionStartTime(v time.Time) *AutomationExecution {
	s.ExecutionStartTime = &v
	return s
}

// SetExecutionEndTime sets the ExecutionEndTime field's value.
func (s *AutomationExecution) SetExecutionEndTime(v time.Time) *AutomationExecution {
	s.ExecutionEndTime = &v
	return s
}

// SetAutomationExecutionStatus sets the AutomationExecutionStatus field's value.
func (s *AutomationExecution) SetAutomationExecutionStatus(v AutomationExecutionStatus) *AutomationExecution {
	s.AutomationExecutionStatus = v
	return s
}

// SetStepExecutions sets the StepExecutions field's value.
func (s *AutomationExecution) SetStepExecutions(v []StepExecution) *AutomationExecution {
	s.StepExecutions = v
	return s
}

// SetStepExecutionsTruncated sets the StepExecutionsTruncated field's value.
func (s *AutomationExecution) SetStepExecutionsTruncated(v bool) *AutomationExecution {
	s.StepExecutionsTruncated = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *AutomationExecution) SetParameters(v map[string][]string) *AutomationExecution {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *AutomationExecution) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *AutomationExecution) ClearParametersEntries() *AutomationExecution {
	s.Parameters = nil
	return s
}

// SetOutputs sets the Outputs field's value.
func (s *AutomationExecution) SetOutputs(v map[string][]string) *AutomationExecution {
	s.Outputs = v
	return s
}

// AddOutputsEntry adds a single Outputs entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *AutomationExecution) AddOutputsEntry(key string, value []string) error {
	return addEntry(&s.Outputs, key, value)
}

// ClearOutputsEntries removes all Outputs entries.
func (s *AutomationExecution) ClearOutputsEntries() *AutomationExecution {
	s.Outputs = nil
	return s
}

// SetFailureMessage sets the FailureMessage field's value.
func (s *AutomationExecution) SetFailureMessage(v string) *AutomationExecution {
	s.FailureMessage = &v
	return s
}

// SetMode sets the Mode field's value.
func (s *AutomationExecution) SetMode(v ExecutionMode) *AutomationExecution {
	s.Mode = v
	return s
}

// SetParentAutomationExecutionId sets the ParentAutomationExecutionId field's value.
func (s *AutomationExecution) SetParentAutomationExecutionId(v string) *AutomationExecution {
	s.ParentAutomationExecutionId = &v
	return s
}

// SetExecutedBy sets the ExecutedBy field's value.
func (s *AutomationExecution) SetExecutedBy(v string) *AutomationExecution {
	s.ExecutedBy = &v
	return s
}

// SetCurrentStepName sets the CurrentStepName field's value.
func (s *AutomationExecution) SetCurrentStepName(v string) *AutomationExecution {
	s.CurrentStepName = &v
	return s
}

// SetCurrentAction sets the CurrentAction field's value.
func (s *AutomationExecution) SetCurrentAction(v string) *AutomationExecution {
	s.CurrentAction = &v
	return s
}

// SetTargetParameterName sets the TargetParameterName field's value.
func (s *AutomationExecution) SetTargetParameterName(v string) *AutomationExecution {
	s.TargetParameterName = &v
	return s
}

// SetTargets sets the Targets field's value.
func (s *AutomationExecution) SetTargets(v []Target) *AutomationExecution {
	s.Targets = v
	return s
}

// SetTargetMaps sets the TargetMaps field's value.
func (s *AutomationExecution) SetTargetMaps(v []map[string][]string) *AutomationExecution {
	s.TargetMaps = v
	return s
}

// SetResolvedTargets sets the ResolvedTargets field's value.
func (s *AutomationExecution) SetResolvedTargets(v *ResolvedTargets) *AutomationExecution {
	s.ResolvedTargets = v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *AutomationExecution) SetMaxConcurrency(v string) *AutomationExecution {
	s.MaxConcurrency = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *AutomationExecution) SetMaxErrors(v string) *AutomationExecution {
	s.MaxErrors = &v
	return s
}

// SetTarget sets the Target field's value.
func (s *AutomationExecution) SetTarget(v string) *AutomationExecution {
	s.Target = &v
	return s
}

// SetTargetLocations sets the TargetLocations field's value.
func (s *AutomationExecution) SetTargetLocations(v []TargetLocation) *AutomationExecution {
	s.TargetLocations = v
	return s
}

// SetProgressCounters sets the ProgressCounters field's value.
func (s *AutomationExecution) SetProgressCounters(v *ProgressCounters) *AutomationExecution {
	s.ProgressCounters = v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s AutomationExecution) MarshalJSON() ([]byte, error) {
	type alias AutomationExecution
	return json.Marshal(struct {
		alias
		ExecutionStartTime *epochTime `json:"ExecutionStartTime,omitempty"`
		ExecutionEndTime   *epochTime `json:"ExecutionEndTime,omitempty"`
	}{
		alias:              alias(s),
		ExecutionStartTime: toEpoch(s.ExecutionStartTime),
		ExecutionEndTime:   toEpoch(s.ExecutionEndTime),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *AutomationExecution) UnmarshalJSON(b []byte) error {
	type alias AutomationExecution
	aux := struct {
		alias
		ExecutionStartTime *epochTime `json:"ExecutionStartTime,omitempty"`
		ExecutionEndTime   *epochTime `json:"ExecutionEndTime,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = AutomationExecution(aux.alias)
	s.ExecutionStartTime = aux.ExecutionStartTime.asTime()
	s.ExecutionEndTime = aux.ExecutionEndTime.asTime()
	return nil
}

// StepExecution is one step of an automation run.
type StepExecution struct {
	StepName             *string                   `json:"StepName,omitempty"`
	Action               *string                   `json:"Action,omitempty"`
	TimeoutSeconds       *int64                    `json:"TimeoutSeconds,omitempty"`
	OnFailure            *string                   `json:"OnFailure,omitempty"`
	MaxAttempts          *int32                    `json:"MaxAttempts,omitempty"`
	ExecutionStartTime   *time.Time                `json:"ExecutionStartTime,omitempty"`
	ExecutionEndTime     *time.Time                `json:"ExecutionEndTime,omitempty"`
	StepStatus           AutomationExecutionStatus `json:"StepStatus,omitempty"`
	ResponseCode         *string                   `json:"ResponseCode,omitempty"`
	Inputs               map[string]string         `json:"Inputs,omitempty"`
	Outputs              map[string][]string       `json:"Outputs,omitempty"`
	Response             *string                   `json:"Response,omitempty"`
	FailureMessage       *string                   `json:"FailureMessage,omitempty"`
	FailureDetails       *FailureDetails           `json:"FailureDetails,omitempty"`
	StepExecutionId      *string                   `json:"StepExecutionId,omitempty"`
	OverriddenParameters map[string][]string       `json:"OverriddenParameters,omitempty"`
	IsEnd                *bool                     `json:"IsEnd,omitempty"`
	NextStep             *string                   `json:"NextStep,omitempty"`
	IsCritical           *bool                     `json:"IsCritical,omitempty"`
	ValidNextSteps       []string                  `json:"ValidNextSteps,omitempty"`
	Targets              []Target                  `json:"Targets,omitempty"`
	TargetLocation       *TargetLocation           `json:"TargetLocation,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *StepExecution) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *StepExecution) Equal(other *StepExecution) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *StepExecution) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetStepName sets the StepName field's value.
func (s *StepExecution) SetStepName(v string) *StepExecution {
	s.StepName = &v
	return s
}

// SetAction sets the Action field's value.
func (s *StepExecution) SetAction(v string) *StepExecution {
	s.Action = &v
	return s
}

// SetTimeoutSeconds sets the TimeoutSeconds field's value.
func (s *StepExecution) SetTimeoutSeconds(v int64) *StepExecution {
	s.TimeoutSeconds = &v
	return s
}

// SetOnFailure sets the OnFailure field's value.
func (s *StepExecution) SetOnFailure(v string) *StepExecution {
	s.OnFailure = &v
	return s
}

// SetMaxAttempts sets the MaxAttempts field's value.
func (s *StepExecution) SetMaxAttempts(v int32) *StepExecution {
	s.MaxAttempts = &v
	return s
}

// SetExecutionStartTime sets the ExecutionStartTime field's value.
func (s *StepExecution) SetExecutionStartTime(v time.Time) *StepExecution {
	s.ExecutionStartTime = &v
	return s
}

// SetExecutionEndTime sets the ExecutionEndTime field's value.
func (s *StepExecution) SetExecutionEndTime(v time.Time) *StepExecution {
	s.ExecutionEndTime = &v
	return s
}

// SetStepStatus sets the StepStatus field's value.
func (s *StepExecution) SetStepStatus(v AutomationExecutionStatus) *StepExecution {
	s.StepStatus = v
	return s
}

// SetResponseCode sets the ResponseCode field's value.
func (s *StepExecution) SetResponseCode(v string) *StepExecution {
	s.ResponseCode = &v
	return s
}

// SetInputs sets the Inputs field's value.
func (s *StepExecution) SetInputs(v map[string]string) *StepExecution {
	s.Inputs = v
	return s
}

// AddInputsEntry adds a single Inputs entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *StepExecution) AddInputsEntry(key string, value string) error {
	return addEntry(&s.Inputs, key, value)
}

// ClearInputsEntries removes all Inputs entries.
func (s *StepExecution) ClearInputsEntries() *StepExecution {
	s.Inputs = nil
	return s
}

// SetOutputs sets the Outputs field's value.
func (s *StepExecution) SetOutputs(v map[string][]string) *StepExecution {
	s.Outputs = v
	return s
}

// AddOutputsEntry adds a single Outputs entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *StepExecution) AddOutputsEntry(key string, value []string) error {
	return addEntry(&s.Outputs, key, value)
}

// ClearOutputsEntries removes all Outputs entries.
func (s *StepExecution) ClearOutputsEntries() *StepExecution {
	s.Outputs = nil
	return s
}

// SetResponse sets the Response field's value.
func (s *StepExecution) SetResponse(v string) *StepExecution {
	s.Response = &v
	return s
}

// SetFailureMessage sets the FailureMessage field's value.
func (s *StepExecution) SetFailureMessage(v string) *StepExecution {
	s.FailureMessage = &v
	return s
}

// SetFailureDetails sets the FailureDetails field's value.
func (s *StepExecution) SetFailureDetails(v *FailureDetails) *StepExecution {
	s.FailureDetails = v
	return s
}

// SetStepExecutionId sets the StepExecutionId field's value.
func (s *StepExecution) SetStepExecutionId(v string) *StepExecution {
	s.StepExecutionId = &v
	return s
}

// SetOverriddenParameters sets the OverriddenParameters field's value.
func (s *StepExecution) SetOverriddenParameters(v map[string][]string) *StepExecution {
	s.OverriddenParameters = v
	return s
}

// AddOverriddenParametersEntry adds a single OverriddenParameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *StepExecution) AddOverriddenParametersEntry(key string, value []string) error {
	return addEntry(&s.OverriddenParameters, key, value)
}

// ClearOverriddenParametersEntries removes all OverriddenParameters entries.
func (s *StepExecution) ClearOverriddenParametersEntries() *StepExecution {
	s.OverriddenParameters = nil
	return s
}

// SetIsEnd sets the IsEnd field's value.
func (s *StepExecution) SetIsEnd(v bool) *StepExecution {
	s.IsEnd = &v
	return s
}

// SetNextStep sets the NextStep field's value.
func (s *StepExecution) SetNextStep(v string) *StepExecution {
	s.NextStep = &v
	return s
}

// SetIsCritical sets the IsCritical field's value.
func (s *StepExecution) SetIsCritical(v bool) *StepExecution {
	s.IsCritical = &v
	return s
}

// SetValidNextSteps sets the ValidNextSteps field's value.
func (s *StepExecution) SetValidNextSteps(v []string) *StepExecution {
	s.ValidNextSteps = v
	return s
}

// SetTargets sets the Targets field's value.
func (s *StepExecution) SetTargets(v []Target) *StepExecution {
	s.Targets = v
	return s
}

// SetTargetLocation sets the TargetLocation field's value.
func (s *StepExecution) SetTargetLocation(v *TargetLocation) *StepExecution {
	s.TargetLocation = v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s StepExecution) MarshalJSON() ([]byte, error) {
	type alias StepExecution
	return json.Marshal(struct {
		alias
		ExecutionStartTime *epochTime `json:"ExecutionStartTime,omitempty"`
		ExecutionEndTime   *epochTime `json:"ExecutionEndTime,omitempty"`
	}{
		alias:              alias(s),
		ExecutionStartTime: toEpoch(s.ExecutionStartTime),
		ExecutionEndTime:   toEpoch(s.ExecutionEndTime),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *StepExecution) UnmarshalJSON(b []byte) error {
	type alias StepExecution
	aux := struct {
		alias
		ExecutionStartTime *epochTime `json:"ExecutionStartTime,omitempty"`
		ExecutionEndTime   *epochTime `json:"ExecutionEndTime,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = StepExecution(aux.alias)
	s.ExecutionStartTime = aux.ExecutionStartTime.asTime()
	s.ExecutionEndTime = aux.ExecutionEndTime.asTime()
	return nil
}

// FailureDetails explains why an automation step failed.
type FailureDetails struct {
	FailureStage *string             `json:"FailureStage,omitempty"`
	FailureType  *string             `json:"FailureType,omitempty"`
	Details      map[string][]string `json:"Details,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *FailureDetails) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *FailureDetails) Equal(other *FailureDetails) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *FailureDetails) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetFailureStage sets the FailureStage field's value.
func (s *FailureDetails) SetFailureStage(v string) *FailureDetails {
	s.FailureStage = &v
	return s
}

// SetFailureType sets the FailureType field's value.
func (s *FailureDetails) SetFailureType(v string) *FailureDetails {
	s.FailureType = &v
	return s
}

// SetDetails sets the Details field's value.
func (s *FailureDetails) SetDetails(v map[string][]string) *FailureDetails {
	s.Details = v
	return s
}

// AddDetailsEntry adds a single Details entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *FailureDetails) AddDetailsEntry(key string, value []string) error {
	return addEntry(&s.Details, key, value)
}

// ClearDetailsEntries removes all Details entries.
func (s *FailureDetails) ClearDetailsEntries() *FailureDetails {
	s.Details = nil
	return s
}

// DescribeAutomationExecutionsInput is the request shape of
// DescribeAutomationExecutions.
type DescribeAutomationExecutionsInput struct {
	Filters    []AutomationExecutionFilter `json:"Filters,omitempty"`
	MaxResults *int32                      `json:"MaxResults,omitempty"`
	NextToken  *string                     `json:"NextToken,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DescribeAutomationExecutionsInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DescribeAutomationExecutionsInput) Equal(other *DescribeAutomationExecutionsInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DescribeAutomationExecutionsInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetFilters sets the Filters field's value.
func (s *DescribeAutomationExecutionsInput) SetFilters(v []AutomationExecutionFilter) *DescribeAutomationExecutionsInput {
	s.Filters = v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *DescribeAutomationExecutionsInput) SetMaxResults(v int32) *DescribeAutomationExecutionsInput {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeAutomationExecutionsInput) SetNextToken(v string) *DescribeAutomationExecutionsInput {
	s.NextToken = &v
	return s
}

// DescribeAutomationExecutionsOutput is the response shape of
// DescribeAutomationExecutions.
type DescribeAutomationExecutionsOutput struct {
	AutomationExecutionMetadataList []AutomationExecutionMetadata `json:"AutomationExecutionMetadataList,omitempty"`
	NextToken                       *string                       `json:"NextToken,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DescribeAutomationExecutionsOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DescribeAutomationExecutionsOutput) Equal(other *DescribeAutomationExecutionsOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DescribeAutomationExecutionsOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAutomationExecutionMetadataList sets the AutomationExecutionMetadataList field's value.
func (s *DescribeAutomationExecutionsOutput) SetAutomationExecutionMetadataList(v []AutomationExecutionMetadata) *DescribeAutomationExecutionsOutput {
	s.AutomationExecutionMetadataList = v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeAutomationExecutionsOutput) SetNextToken(v string) *DescribeAutomationExecutionsOutput {
	s.NextToken = &v
	return s
}

// AutomationExecutionMetadata summarises an automation run.
type AutomationExecutionMetadata struct {
	AutomationExecutionId       *string                   `json:"AutomationExecutionId,omitempty"`
	DocumentName                *string                   `json:"DocumentName,omitempty"`
	DocumentVersion             *string                   `json:"DocumentVersion,omitempty"`
	AutomationExecutionStatus   AutomationExecutionStatus `json:"AutomationExecutionStatus,omitempty"`
	ExecutionStartTime          *time.Time                `json:"ExecutionStartTime,omitempty"`
	ExecutionEndTime            *time.Time                `json:"ExecutionEndTime,omitempty"`
	ExecutedBy                  *string                   `json:"ExecutedBy,omitempty"`
	LogFile                     *string                   `json:"LogFile,omitempty"`
	Outputs                     map[string][]string       `json:"Outputs,omitempty"`
	Mode                        ExecutionMode             `json:"Mode,omitempty"`
	ParentAutomationExecutionId *string                   `json:"ParentAutomationExecutionId,omitempty"`
	CurrentStepName             *string                   `json:"CurrentStepName,omitempty"`
	CurrentAction               *string                   `json:"CurrentAction,omitempty"`
	FailureMessage              *string                   `json:"FailureMessage,omitempty"`
	TargetParameterName         *string                   `json:"TargetParameterName,omitempty"`
	Targets                     []Target                  `json:"Targets,omitempty"`
	TargetMaps                  []map[string][]string     `json:"TargetMaps,omitempty"`
	ResolvedTargets             *ResolvedTargets          `json:"ResolvedTargets,omitempty"`
	MaxConcurrency              *string                   `json:"MaxConcurrency,omitempty"`
	MaxErrors                   *string                   `json:"MaxErrors,omitempty"`
	Target                      *string                   `json:"Target,omitempty"`
	AutomationType              AutomationType            `json:"AutomationType,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AutomationExecutionMetadata) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AutomationExecutionMetadata) Equal(other *AutomationExecutionMetadata) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AutomationExecutionMetadata) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAutomationExecutionId sets the AutomationExecutionId field's value.
func (s *AutomationExecutionMetadata) SetAutomationExecutionId(v string) *AutomationExecutionMetadata {
	s.AutomationExecutionId = &v
	return s
}

// SetDocumentName sets the DocumentName field's value.
func (s *AutomationExecutionMetadata) SetDocumentName(v string) *AutomationExecutionMetadata {
	s.DocumentName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *AutomationExecutionMetadata) SetDocumentVersion(v string) *AutomationExecutionMetadata {
	s.DocumentVersion = &v
	return s
}

// SetAutomationExecutionStatus sets the AutomationExecutionStatus field's value.
func (s *AutomationExecutionMetadata) SetAutomationExecutionStatus(v AutomationExecutionStatus) *AutomationExecutionMetadata {
	s.AutomationExecutionStatus = v
	return s
}

// SetExecutionStartTime sets the ExecutionStartTime field's value.
func (s *AutomationExecutionMetadata) SetExecutionStartTime(v time.Time) *AutomationExecutionMetadata {
	s.ExecutionStartTime = &v
	return s
}

// SetExecutionEndTime sets the ExecutionEndTime field's value.
func (s *AutomationExecutionMetadata) SetExecutionEndTime(v time.Time) *AutomationExecutionMetadata {
	s.ExecutionEndTime = &v
	return s
}

// SetExecutedBy sets the ExecutedBy field's value.
func (s *AutomationExecutionMetadata) SetExecutedBy(v string) *AutomationExecutionMetadata {
	s.ExecutedBy = &v
	return s
}

// SetLogFile sets the LogFile field's value.
func (s *AutomationExecutionMetadata) SetLogFile(v string) *AutomationExecutionMetadata {
	s.LogFile = &v
	return s
}

// SetOutputs sets the Outputs field's value.
func (s *AutomationExecutionMetadata) SetOutputs(v map[string][]string) *AutomationExecutionMetadata {
	s.Outputs = v
	return s
}

// AddOutputsEntry adds a single Outputs entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *AutomationExecutionMetadata) AddOutputsEntry(key string, value []string) error {
	return addEntry(&s.Outputs, key, value)
}

// ClearOutputsEntries removes all Outputs entries.
func (s *AutomationExecutionMetadata) ClearOutputsEntries() *AutomationExecutionMetadata {
	s.Outputs = nil
	return s
}

// SetMode sets the Mode field's value.
func (s *AutomationExecutionMetadata) SetMode(v ExecutionMode) *AutomationExecutionMetadata {
	s.Mode = v
	return s
}

// SetParentAutomationExecutionId sets the ParentAutomationExecutionId field's value.
func (s *AutomationExecutionMetadata) SetParentAutomationExecutionId(v string) *AutomationExecutionMetadata {
	s.ParentAutomationExecutionId = &v
	return s
}

// SetCurrentStepName sets the CurrentStepName field's value.
func (s *AutomationExecutionMetadata) SetCurrentStepName(v string) *AutomationExecutionMetadata {
	s.CurrentStepName = &v
	return s
}

// SetCurrentAction sets the CurrentAction field's value.
func (s *AutomationExecutionMetadata) SetCurrentAction(v string) *AutomationExecutionMetadata {
	s.CurrentAction = &v
	return s
}

// SetFailureMessage sets the FailureMessage field's value.
func (s *AutomationExecutionMetadata) SetFailureMessage(v string) *AutomationExecutionMetadata {
	s.FailureMessage = &v
	return s
}

// SetTargetParameterName sets the TargetParameterName field's value.
func (s *AutomationExecutionMetadata) SetTargetParameterName(v string) *AutomationExecutionMetadata {
	s.TargetParameterName = &v
	return s
}

// SetTargets sets the Targets field's value.
func (s *AutomationExecutionMetadata) SetTargets(v []Target) *AutomationExecutionMetadata {
	s.Targets = v
	return s
}

// SetTargetMaps sets the TargetMaps field's value.
func (s *AutomationExecutionMetadata) SetTargetMaps(v []map[string][]string) *AutomationExecutionMetadata {
	s.TargetMaps = v
	return s
}

// SetResolvedTargets sets the ResolvedTargets field's value.
func (s *AutomationExecutionMetadata) SetResolvedTargets(v *ResolvedTargets) *AutomationExecutionMetadata {
	s.ResolvedTargets = v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *AutomationExecutionMetadata) SetMaxConcurrency(v string) *AutomationExecutionMetadata {
	s.MaxConcurrency = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *AutomationExecutionMetadata) SetMaxErrors(v string) *AutomationExecutionMetadata {
	s.MaxErrors = &v
	return s
}

// SetTarget sets the Target field's value.
func (s *AutomationExecutionMetadata) SetTarget(v string) *AutomationExecutionMetadata {
	s.Target = &v
	return s
}

// SetAutomationType sets the AutomationType field's value.
func (s *AutomationExecutionMetadata) SetAutomationType(v AutomationType) *AutomationExecutionMetadata {
	s.AutomationType = v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s AutomationExecutionMetadata) MarshalJSON() ([]byte, error) {
	type alias AutomationExecutionMetadata
	return json.Marshal(struct {
		alias
		ExecutionStartTime *epochTime `json:"ExecutionStartTime,omitempty"`
		ExecutionEndTime   *epochTime `json:"ExecutionEndTime,omitempty"`
	}{
		alias:              alias(s),
		ExecutionStartTime: toEpoch(s.ExecutionStartTime),
		ExecutionEndTime:   toEpoch(s.ExecutionEndTime),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *AutomationExecutionMetadata) UnmarshalJSON(b []byte) error {
	type alias AutomationExecutionMetadata
	aux := struct {
		alias
		ExecutionStartTime *epochTime `json:"ExecutionStartTime,omitempty"`
		ExecutionEndTime   *epochTime `json:"ExecutionEndTime,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = AutomationExecutionMetadata(aux.alias)
	s.ExecutionStartTime = aux.ExecutionStartTime.asTime()
	s.ExecutionEndTime = aux.ExecutionEndTime.asTime()
	return nil
}

// AutomationExecutionFilter narrows DescribeAutomationExecutions results.
type AutomationExecutionFilter struct {
	Key    AutomationExecutionFilterKey `json:"Key,omitempty"`
	Values []string                     `json:"Values,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AutomationExecutionFilter) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AutomationExecutionFilter) Equal(other *AutomationExecutionFilter) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AutomationExecutionFilter) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetKey sets the Key field's value.
func (s *AutomationExecutionFilter) SetKey(v AutomationExecutionFilterKey) *AutomationExecutionFilter {
	s.Key = v
	return s
}

// SetValues sets the Values field's value.
func (s *AutomationExecutionFilter) SetValues(v []string) *AutomationExecutionFilter {
	s.Values = v
	return s
}

// StartAutomationExecutionInput is the request shape of StartAutomationExecution.
type StartAutomationExecutionInput struct {
	DocumentName    *string             `json:"DocumentName,omitempty"`
	DocumentVersion *string             `json:"DocumentVersion,omitempty"`
	Parameters      map[string][]string `json:"Parameters,omitempty"`

	// ClientToken makes the request idempotent. FillIdempotencyTokens sets a UUID when it is nil.
	ClientToken *string `json:"ClientToken,omitempty" idempotencyToken:"true"`

	Mode                ExecutionMode         `json:"Mode,omitempty"`
	TargetParameterName *string               `json:"TargetParameterName,omitempty"`
	Targets             []Target              `json:"Targets,omitempty"`
	TargetMaps          []map[string][]string `json:"TargetMaps,omitempty"`
	MaxConcurrency      *string               `json:"MaxConcurrency,omitempty"`
	MaxErrors           *string               `json:"MaxErrors,omitempty"`
	TargetLocations     []TargetLocation      `json:"TargetLocations,omitempty"`
	Tags                []Tag                 `json:"Tags,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *StartAutomationExecutionInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *StartAutomationExecutionInput) Equal(other *StartAutomationExecutionInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *StartAutomationExecutionInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetDocumentName sets the DocumentName field's value.
func (s *StartAutomationExecutionInput) SetDocumentName(v string) *StartAutomationExecutionInput {
	s.DocumentName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *StartAutomationExecutionInput) SetDocumentVersion(v string) *StartAutomationExecutionInput {
	s.DocumentVersion = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *StartAutomationExecutionInput) SetParameters(v map[string][]string) *StartAutomationExecutionInput {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *StartAutomationExecutionInput) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *StartAutomationExecutionInput) ClearParametersEntries() *StartAutomationExecutionInput {
	s.Parameters = nil
	return s
}

// SetClientToken sets the ClientToken field's value.
func (s *StartAutomationExecutionInput) SetClientToken(v string) *StartAutomationExecutionInput {
	s.ClientToken = &v
	return s
}

// SetMode sets the Mode field's value.
func (s *StartAutomationExecutionInput) SetMode(v ExecutionMode) *StartAutomationExecutionInput {
	s.Mode = v
	return s
}

// SetTargetParameterName sets the TargetParameterName field's value.
func (s *StartAutomationExecutionInput) SetTargetParameterName(v string) *StartAutomationExecutionInput {
	s.TargetParameterName = &v
	return s
}

// SetTargets sets the Targets field's value.
func (s *StartAutomationExecutionInput) SetTargets(v []Target) *StartAutomationExecutionInput {
	s.Targets = v
	return s
}

// SetTargetMaps sets the TargetMaps field's value.
func (s *StartAutomationExecutionInput) SetTargetMaps(v []map[string][]string) *StartAutomationExecutionInput {
	s.TargetMaps = v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *StartAutomationExecutionInput) SetMaxConcurrency(v string) *StartAutomationExecutionInput {
	s.MaxConcurrency = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *StartAutomationExecutionInput) SetMaxErrors(v string) *StartAutomationExecutionInput {
	s.MaxErrors = &v
	return s
}

// SetTargetLocations sets the TargetLocations field's value.
func (s *StartAutomationExecutionInput) SetTargetLocations(v []TargetLocation) *StartAutomationExecutionInput {
	s.TargetLocations = v
	return s
}

// SetTags sets the Tags field's value.
func (s *StartAutomationExecutionInput) SetTags(v []Tag) *StartAutomationExecutionInput {
	s.Tags = v
	return s
}

// StartAutomationExecutionOutput is the response shape of StartAutomationExecution.
type StartAutomationExecutionOutput struct {
	AutomationExecutionId *string `json:"AutomationExecutionId,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *StartAutomationExecutionOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *StartAutomationExecutionOutput) Equal(other *StartAutomationExecutionOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *StartAutomationExecutionOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAutomationExecutionId sets the AutomationExecutionId field's value.
func (s *StartAutomationExecutionOutput) SetAutomationExecutionId(v string) *StartAutomationExecutionOutput {
	s.AutomationExecutionId = &v
	return s
}

// Validate checks the documented constraints of GetAutomationExecutionInput.
func (s *GetAutomationExecutionInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("GetAutomationExecutionInput")
	v.required("AutomationExecutionId", s.AutomationExecutionId != nil)
	v.length("AutomationExecutionId", s.AutomationExecutionId, 36, 36)
	return v.err()
}

// Validate checks the documented constraints of DescribeAutomationExecutionsInput.
func (s *DescribeAutomationExecutionsInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("DescribeAutomationExecutionsInput")
	v.count("Filters", s.Filters != nil, len(s.Filters), 1, 10)
	validateList(v, "Filters", s.Filters)
	v.between("MaxResults", s.MaxResults, 1, 50)
	return v.err()
}

// Validate checks the documented constraints of AutomationExecutionFilter.
func (s *AutomationExecutionFilter) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("AutomationExecutionFilter")
	v.required("Key", s.Key != "")
	v.required("Values", s.Values != nil)
	v.count("Values", s.Values != nil, len(s.Values), 1, 10)
	for i := range s.Values {
		v.length(fmt.Sprintf("Values[%d]", i), &s.Values[i], 1, 150)
	}
	return v.err()
}

// Validate checks the documented constraints of StartAutomationExecutionInput.
func (s *StartAutomationExecutionInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("StartAutomationExecutionInput")
	v.required("DocumentName", s.DocumentName != nil)
	v.pattern("DocumentName", s.DocumentName, documentARNPattern)
	v.documentVersion(s.DocumentVersion)
	v.length("ClientToken", s.ClientToken, 36, 36)
	v.pattern("ClientToken", s.ClientToken, associationIDPattern)
	v.length("TargetParameterName", s.TargetParameterName, 1, 50)
	v.targets(s.Targets)
	v.count("TargetMaps", s.TargetMaps != nil, len(s.TargetMaps), 0, 300)
	v.rateControl(s.MaxConcurrency, s.MaxErrors)
	v.count("TargetLocations", s.TargetLocations != nil, len(s.TargetLocations), 1, 100)
	validateList(v, "TargetLocations", s.TargetLocations)
	v.count("Tags", s.Tags != nil, len(s.Tags), 0, 1000)
	validateList(v, "Tags", s.Tags)
	return v.err()
}
