package ssm

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/wadahiro/ssmshapes/internal/shapeutil"
)

// CreateAssociationInput is the request shape of CreateAssociation.
type CreateAssociationInput struct {
	// Name is the SSM document to associate. Required.
	Name *string `json:"Name,omitempty"`

	DocumentVersion               *string                            `json:"DocumentVersion,omitempty"`
	InstanceId                    *string                            `json:"InstanceId,omitempty"`
	Parameters                    map[string][]string                `json:"Parameters,omitempty"`
	Targets                       []Target                           `json:"Targets,omitempty"`
	ScheduleExpression            *string                            `json:"ScheduleExpression,omitempty"`
	OutputLocation                *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	AssociationName               *string                            `json:"AssociationName,omitempty"`
	AutomationTargetParameterName *string                            `json:"AutomationTargetParameterName,omitempty"`
	MaxErrors                     *string                            `json:"MaxErrors,omitempty"`
	MaxConcurrency                *string                            `json:"MaxConcurrency,omitempty"`
	ComplianceSeverity            AssociationComplianceSeverity      `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance          `json:"SyncCompliance,omitempty"`

	// ApplyOnlyAtCronInterval skips the immediate run after the association is created.
	ApplyOnlyAtCronInterval *bool `json:"ApplyOnlyAtCronInterval,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CreateAssociationInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateAssociationInput) Equal(other *CreateAssociationInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CreateAssociationInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *CreateAssociationInput) SetName(v string) *CreateAssociationInput {
	s.Name = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *CreateAssociationInput) SetDocumentVersion(v string) *CreateAssociationInput {
	s.DocumentVersion = &v
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *CreateAssociationInput) SetInstanceId(v string) *CreateAssociationInput {
	s.InstanceId = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *CreateAssociationInput) SetParameters(v map[string][]string) *CreateAssociationInput {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *CreateAssociationInput) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *CreateAssociationInput) ClearParametersEntries() *CreateAssociationInput {
	s.Parameters = nil
	return s
}

// SetTargets sets the Targets field's value.
func (s *CreateAssociationInput) SetTargets(v []Target) *CreateAssociationInput {
	s.Targets = v
	return s
}

// SetScheduleExpression sets the ScheduleExpression field's value.
func (s *CreateAssociationInput) SetScheduleExpression(v string) *CreateAssociationInput {
	s.ScheduleExpression = &v
	return s
}

// SetOutputLocation sets the OutputLocation field's value.
func (s *CreateAssociationInput) SetOutputLocation(v *InstanceAssociationOutputLocation) *CreateAssociationInput {
	s.OutputLocation = v
	return s
}

// SetAssociationName sets the AssociationName field's value.
func (s *CreateAssociationInput) SetAssociationName(v string) *CreateAssociationInput {
	s.AssociationName = &v
	return s
}

// SetAutomationTargetParameterName sets the AutomationTargetParameterName field's value.
func (s *CreateAssociationInput) SetAutomationTargetParameterName(v string) *CreateAssociationInput {
	s.AutomationTargetParameterName = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *CreateAssociationInput) SetMaxErrors(v string) *CreateAssociationInput {
	s.MaxErrors = &v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *CreateAssociationInput) SetMaxConcurrency(v string) *CreateAssociationInput {
	s.MaxConcurrency = &v
	return s
}

// SetComplianceSeverity sets the ComplianceSeverity field's value.
func (s *CreateAssociationInput) SetComplianceSeverity(v AssociationComplianceSeverity) *CreateAssociationInput {
	s.ComplianceSeverity = v
	return s
}

// SetSyncCompliance sets the SyncCompliance field's value.
func (s *CreateAssociationInput) SetSyncCompliance(v AssociationSyncCompliance) *CreateAssociationInput {
	s.SyncCompliance = v
	return s
}

// SetApplyOnlyAtCronInterval sets the ApplyOnlyAtCronInterval field's value.
func (s *CreateAssociationInput) SetApplyOnlyAtCronInterval(v bool) *CreateAssociationInput {
	s.ApplyOnlyAtCronInterval = &v
	return s
}

// CreateAssociationOutput is the response shape of CreateAssociation.
type CreateAssociationOutput struct {
	AssociationDescription *AssociationDescription `json:"AssociationDescription,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CreateAssociationOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateAssociationOutput) Equal(other *CreateAssociationOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CreateAssociationOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAssociationDescription sets the AssociationDescription field's value.
func (s *CreateAssociationOutput) SetAssociationDescription(v *AssociationDescription) *CreateAssociationOutput {
	s.AssociationDescription = v
	return s
}

// CreateAssociationBatchRequestEntry describes one association in a
// CreateAssociationBatch call.
type CreateAssociationBatchRequestEntry struct {
	Name                          *string                            `json:"Name,omitempty"`
	InstanceId                    *string                            `json:"InstanceId,omitempty"`
	Parameters                    map[string][]string                `json:"Parameters,omitempty"`
	AutomationTargetParameterName *string                            `json:"AutomationTargetParameterName,omitempty"`
	DocumentVersion               *string                            `json:"DocumentVersion,omitempty"`
	Targets                       []Target                           `json:"Targets,omitempty"`
	ScheduleExpression            *string                            `json:"ScheduleExpression,omitempty"`
	OutputLocation                *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	AssociationName               *string                            `json:"AssociationName,omitempty"`
	MaxErrors                     *string                            `json:"MaxErrors,omitempty"`
	MaxConcurrency                *string                            `json:"MaxConcurrency,omitempty"`
	ComplianceSeverity            AssociationComplianceSeverity      `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance          `json:"SyncCompliance,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CreateAssociationBatchRequestEntry) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateAssociationBatchRequestEntry) Equal(other *CreateAssociationBatchRequestEntry) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CreateAssociationBatchRequestEntry) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *CreateAssociationBatchRequestEntry) SetName(v string) *CreateAssociationBatchRequestEntry {
	s.Name = &v
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *CreateAssociationBatchRequestEntry) SetInstanceId(v string) *CreateAssociationBatchRequestEntry {
	s.InstanceId = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *CreateAssociationBatchRequestEntry) SetParameters(v map[string][]string) *CreateAssociationBatchRequestEntry {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *CreateAssociationBatchRequestEntry) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *CreateAssociationBatchRequestEntry) ClearParametersEntries() *CreateAssociationBatchRequestEntry {
	s.Parameters = nil
	return s
}

// SetAutomationTargetParameterName sets the AutomationTargetParameterName field's value.
func (s *CreateAssociationBatchRequestEntry) SetAutomationTargetParameterName(v string) *CreateAssociationBatchRequestEntry {
	s.AutomationTargetParameterName = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *CreateAssociationBatchRequestEntry) SetDocumentVersion(v string) *CreateAssociationBatchRequestEntry {
	s.DocumentVersion = &v
	return s
}

// SetTargets sets the Targets field's value.
func (s *CreateAssociationBatchRequestEntry) SetTargets(v []Target) *CreateAssociationBatchRequestEntry {
	s.Targets = v
	return s
}

// SetScheduleExpression sets the ScheduleExpression field's value.
func (s *CreateAssociationBatchRequestEntry) SetScheduleExpression(v string) *CreateAssociationBatchRequestEntry {
	s.ScheduleExpression = &v
	return s
}

// SetOutputLocation sets the OutputLocation field's value.
func (s *CreateAssociationBatchRequestEntry) SetOutputLocation(v *InstanceAssociationOutputLocation) *CreateAssociationBatchRequestEntry {
	s.OutputLocation = v
	return s
}

// SetAssociationName sets the AssociationName field's value.
func (s *CreateAssociationBatchRequestEntry) SetAssociationName(v string) *CreateAssociationBatchRequestEntry {
	s.AssociationName = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *CreateAssociationBatchRequestEntry) SetMaxErrors(v string) *CreateAssociationBatchRequestEntry {
	s.MaxErrors = &v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *CreateAssociationBatchRequestEntry) SetMaxConcurrency(v string) *CreateAssociationBatchRequestEntry {
	s.MaxConcurrency = &v
	return s
}

// SetComplianceSeverity sets the ComplianceSeverity field's value.
func (s *CreateAssociationBatchRequestEntry) SetComplianceSeverity(v AssociationComplianceSeverity) *CreateAssociationBatchRequestEntry {
	s.ComplianceSeverity = v
	return s
}

// SetSyncCompliance sets the SyncCompliance field's value.
func (s *CreateAssociationBatchRequestEntry) SetSyncCompliance(v AssociationSyncCompliance) *CreateAssociationBatchRequestEntry {
	s.SyncCompliance = v
	return s
}

// CreateAssociationBatchInput is the request shape of CreateAssociationBatch.
type CreateAssociationBatchInput struct {
	Entries []CreateAssociationBatchRequestEntry `json:"Entries,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CreateAssociationBatchInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateAssociationBatchInput) Equal(other *CreateAssociationBatchInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CreateAssociationBatchInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetEntries sets the Entries field's value.
func (s *CreateAssociationBatchInput) SetEntries(v []CreateAssociationBatchRequestEntry) *CreateAssociationBatchInput {
	s.Entries = v
	return s
}

// CreateAssociationBatchOutput is the response shape of CreateAssociationBatch.
type CreateAssociationBatchOutput struct {
	Successful []AssociationDescription  `json:"Successful,omitempty"`
	Failed     []FailedCreateAssociation `json:"Failed,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *CreateAssociationBatchOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *CreateAssociationBatchOutput) Equal(other *CreateAssociationBatchOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *CreateAssociationBatchOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetSuccessful sets the Successful field's value.
func (s *CreateAssociationBatchOutput) SetSuccessful(v []AssociationDescription) *CreateAssociationBatchOutput {
	s.Successful = v
	return s
}

// SetFailed sets the Failed field's value.
func (s *CreateAssociationBatchOutput) SetFailed(v []FailedCreateAssociation) *CreateAssociationBatchOutput {
	s.Failed = v
	return s
}

// FailedCreateAssociation reports a batch entry that could not be created.
type FailedCreateAssociation struct {
	Entry   *CreateAssociationBatchRequestEntry `json:"Entry,omitempty"`
	Message *string                             `json:"Message,omitempty"`
	Fault   Fault                               `json:"Fault,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *FailedCreateAssociation) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *FailedCreateAssociation) Equal(other *FailedCreateAssociation) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *FailedCreateAssociation) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetEntry sets the Entry field's value.
func (s *FailedCreateAssociation) SetEntry(v *CreateAssociationBatchRequestEntry) *FailedCreateAssociation {
	s.Entry = v
	return s
}

// SetMessage sets the Message field's value.
func (s *FailedCreateAssociation) SetMessage(v string) *FailedCreateAssociation {
	s.Message = &v
	return s
}

// SetFault sets the Fault field's value.
func (s *FailedCreateAssociation) SetFault(v Fault) *FailedCreateAssociation {
	s.Fault = v
	return s
}

// UpdateAssociationInput is the request shape of UpdateAssociation.
type UpdateAssociationInput struct {
	// AssociationId identifies the association to update. Required.
	AssociationId *string `json:"AssociationId,omitempty"`

	Parameters         map[string][]string                `json:"Parameters,omitempty"`
	DocumentVersion    *string                            `json:"DocumentVersion,omitempty"`
	ScheduleExpression *string                            `json:"ScheduleExpression,omitempty"`
	OutputLocation     *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	Name               *string                            `json:"Name,omitempty"`
	Targets            []Target                           `json:"Targets,omitempty"`
	AssociationName    *string                            `json:"AssociationName,omitempty"`

	// AssociationVersion guards against concurrent updates; use $LATEST or a version number.
	AssociationVersion *string `json:"AssociationVersion,omitempty"`

	AutomationTargetParameterName *string                       `json:"AutomationTargetParameterName,omitempty"`
	MaxErrors                     *string                       `json:"MaxErrors,omitempty"`
	MaxConcurrency                *string                       `json:"MaxConcurrency,omitempty"`
	ComplianceSeverity            AssociationComplianceSeverity `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance     `json:"SyncCompliance,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *UpdateAssociationInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *UpdateAssociationInput) Equal(other *UpdateAssociationInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *UpdateAssociationInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAssociationId sets the AssociationId field's value.
func (s *UpdateAssociationInput) SetAssociationId(v string) *UpdateAssociationInput {
	s.AssociationId = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *UpdateAssociationInput) SetParameters(v map[string][]string) *UpdateAssociationInput {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *UpdateAssociationInput) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *UpdateAssociationInput) ClearParametersEntries() *UpdateAssociationInput {
	s.Parameters = nil
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *UpdateAssociationInput) SetDocumentVersion(v string) *UpdateAssociationInput {
	s.DocumentVersion = &v
	return s
}

// SetScheduleExpression sets the ScheduleExpression field's value.
func (s *UpdateAssociationInput) SetScheduleExpression(v string) *UpdateAssociationInput {
	s.ScheduleExpression = &v
	return s
}

// SetOutputLocation sets the OutputLocation field's value.
func (s *UpdateAssociationInput) SetOutputLocation(v *InstanceAssociationOutputLocation) *UpdateAssociationInput {
	s.OutputLocation = v
	return s
}

// SetName sets the Name field's value.
func (s *UpdateAssociationInput) SetName(v string) *UpdateAssociationInput {
	s.Name = &v
	return s
}

// SetTargets sets the Targets field's value.
func (s *UpdateAssociationInput) SetTargets(v []Target) *UpdateAssociationInput {
	s.Targets = v
	return s
}

// SetAssociationName sets the AssociationName field's value.
func (s *UpdateAssociationInput) SetAssociationName(v string) *UpdateAssociationInput {
	s.AssociationName = &v
	return s
}

// SetAssociationVersion sets the AssociationVersion field's value.
func (s *UpdateAssociationInput) SetAssociationVersion(v string) *UpdateAssociationInput {
	s.AssociationVersion = &v
	return s
}

// SetAutomationTargetParameterName sets the AutomationTargetParameterName field's value.
func (s *UpdateAssociationInput) SetAutomationTargetParameterName(v string) *UpdateAssociationInput {
	s.AutomationTargetParameterName = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *UpdateAssociationInput) SetMaxErrors(v string) *UpdateAssociationInput {
	s.MaxErrors = &v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *UpdateAssociationInput) SetMaxConcurrency(v string) *UpdateAssociationInput {
	s.MaxConcurrency = &v
	return s
}

// SetComplianceSeverity sets the ComplianceSeverity field's value.
func (s *UpdateAssociationInput) SetComplianceSeverity(v AssociationComplianceSeverity) *UpdateAssociationInput {
	s.ComplianceSeverity = v
	return s
}

// SetSyncCompliance sets the SyncCompliance field's value.
func (s *UpdateAssociationInput) SetSyncCompliance(v AssociationSyncCompliance) *UpdateAssociationInput {
	s.SyncCompliance = v
	return s
}

// UpdateAssociationOutput is the response shape of UpdateAssociation.
type UpdateAssociationOutput struct {
	AssociationDescription *AssociationDescription `json:"AssociationDescription,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *UpdateAssociationOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *UpdateAssociationOutput) Equal(other *UpdateAssociationOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *UpdateAssociationOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAssociationDescription sets the AssociationDescription field's value.
func (s *UpdateAssociationOutput) SetAssociationDescription(v *AssociationDescription) *UpdateAssociationOutput {
	s.AssociationDescription = v
	return s
}

// AssociationDescription describes an association of a document with targets.
type AssociationDescription struct {
	Name                          *string                            `json:"Name,omitempty"`
	InstanceId                    *string                            `json:"InstanceId,omitempty"`
	AssociationVersion            *string                            `json:"AssociationVersion,omitempty"`
	Date                          *time.Time                         `json:"Date,omitempty"`
	LastUpdateAssociationDate     *time.Time                         `json:"LastUpdateAssociationDate,omitempty"`
	Status                        *AssociationStatus                 `json:"Status,omitempty"`
	Overview                      *AssociationOverview               `json:"Overview,omitempty"`
	DocumentVersion               *string                            `json:"DocumentVersion,omitempty"`
	AutomationTargetParameterName *string                            `json:"AutomationTargetParameterName,omitempty"`
	Parameters                    map[string][]string                `json:"Parameters,omitempty"`
	AssociationId                 *string                            `json:"AssociationId,omitempty"`
	Targets                       []Target                           `json:"Targets,omitempty"`
	ScheduleExpression            *string                            `json:"ScheduleExpression,omitempty"`
	OutputLocation                *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	LastExecutionDate             *time.Time                         `json:"LastExecutionDate,omitempty"`
	LastSuccessfulExecutionDate   *time.Time                         `json:"LastSuccessfulExecutionDate,omitempty"`
	AssociationName               *string                            `json:"AssociationName,omitempty"`
	MaxErrors                     *string                            `json:"MaxErrors,omitempty"`
	MaxConcurrency                *string                            `json:"MaxConcurrency,omitempty"`
	ComplianceSeverity            AssociationComplianceSeverity      `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance          `json:"SyncCompliance,omitempty"`
	ApplyOnlyAtCronInterval       *bool                              `json:"ApplyOnlyAtCronInterval,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AssociationDescription) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AssociationDescription) Equal(other *AssociationDescription) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AssociationDescription) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *AssociationDescription) SetName(v string) *AssociationDescription {
	s.Name = &v
	return s
}

// SetInstanceId sets the InstanceId field's value.
func (s *AssociationDescription) SetInstanceId(v string) *AssociationDescription {
	s.InstanceId = &v
	return s
}

// SetAssociationVersion sets the AssociationVersion field's value.
func (s *AssociationDescription) SetAssociationVersion(v string) *AssociationDescription {
	s.AssociationVersion = &v
	return s
}

// SetDate sets the Date field's value.
func (s *AssociationDescription) SetDate(v time.Time) *AssociationDescription {
	s.Date = &v
	return s
}

// SetLastUpdateAssociationDate sets the LastUpdateAssociationDate field's value.
func (s *AssociationDescription) SetLastUpdateAssociationDate(v time.Time) *AssociationDescription {
	s.LastUpdateAssociationDate = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *AssociationDescription) SetStatus(v *AssociationStatus) *AssociationDescription {
	s.Status = v
	return s
}

// SetOverview sets the Overview field's value.
func (s *AssociationDescription) SetOverview(v *AssociationOverview) *AssociationDescription {
	s.Overview = v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *AssociationDescription) SetDocumentVersion(v string) *AssociationDescription {
	s.DocumentVersion = &v
	return s
}

// SetAutomationTargetParameterName sets the AutomationTargetParameterName field's value.
func (s *AssociationDescription) SetAutomationTargetParameterName(v string) *AssociationDescription {
	s.AutomationTargetParameterName = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *AssociationDescription) SetParameters(v map[string][]string) *AssociationDescription {
	s.Parameters = v
	return s
}

// AddParametersEntry adds a single Parameters entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *AssociationDescription) AddParametersEntry(key string, value []string) error {
	return addEntry(&s.Parameters, key, value)
}

// ClearParametersEntries removes all Parameters entries.
func (s *AssociationDescription) ClearParametersEntries() *AssociationDescription {
	s.Parameters = nil
	return s
}

// SetAssociationId sets the AssociationId field's value.
func (s *AssociationDescription) SetAssociationId(v string) *AssociationDescription {
	s.AssociationId = &v
	return s
}

// SetTargets sets the Targets field's value.
func (s *AssociationDescription) SetTargets(v []Target) *AssociationDescription {
	s.Targets = v
	return s
}

// SetScheduleExpression sets the ScheduleExpression field's value.
func (s *AssociationDescription) SetScheduleExpression(v string) *AssociationDescription {
	s.ScheduleExpression = &v
	return s
}

// SetOutputLocation sets the OutputLocation field's value.
func (s *AssociationDescription) SetOutputLocation(v *InstanceAssociationOutputLocation) *AssociationDescription {
	s.OutputLocation = v
	return s
}

// SetLastExecutionDate sets the LastExecutionDate field's value.
func (s *AssociationDescription) SetLastExecutionDate(v time.Time) *AssociationDescription {
	s.LastExecutionDate = &v
	return s
}

// SetLastSuccessfulExecutionDate sets the LastSuccessfulExecutionDate field's value.
func (s *AssociationDescription) SetLastSuccessfulExecutionDate(v time.Time) *AssociationDescription {
	s.LastSuccessfulExecutionDate = &v
	return s
}

// SetAssociationName sets the AssociationName field's value.
func (s *AssociationDescription) SetAssociationName(v string) *AssociationDescription {
	s.AssociationName = &v
	return s
}

// SetMaxErrors sets the MaxErrors field's value.
func (s *AssociationDescription) SetMaxErrors(v string) *AssociationDescription {
	s.MaxErrors = &v
	return s
}

// SetMaxConcurrency sets the MaxConcurrency field's value.
func (s *AssociationDescription) SetMaxConcurrency(v string) *AssociationDescription {
	s.MaxConcurrency = &v
	return s
}

// SetComplianceSeverity sets the ComplianceSeverity field's value.
func (s *AssociationDescription) SetComplianceSeverity(v AssociationComplianceSeverity) *AssociationDescription {
	s.ComplianceSeverity = v
	return s
}

// SetSyncCompliance sets the SyncCompliance field's value.
func (s *AssociationDescription) SetSyncCompliance(v AssociationSyncCompliance) *AssociationDescription {
	s.SyncCompliance = v
	return s
}

// SetApplyOnlyAtCronInterval sets the ApplyOnlyAtCronInterval field's value.
func (s *AssociationDescription) SetApplyOnlyAtCronInterval(v bool) *AssociationDescription {
	s.ApplyOnlyAtCronInterval = &v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s AssociationDescription) MarshalJSON() ([]byte, error) {
	type alias AssociationDescription
	return json.Marshal(struct {
		alias
		Date                        *epochTime `json:"Date,omitempty"`
		LastUpdateAssociationDate   *epochTime `json:"LastUpdateAssociationDate,omitempty"`
		LastExecutionDate           *epochTime `json:"LastExecutionDate,omitempty"`
		LastSuccessfulExecutionDate *epochTime `json:"LastSuccessfulExecutionDate,omitempty"`
	}{
		alias:                       alias(s),
		Date:                        toEpoch(s.Date),
		LastUpdateAssociationDate:   toEpoch(s.LastUpdateAssociationDate),
		LastExecutionDate:           toEpoch(s.LastExecutionDate),
		LastSuccessfulExecutionDate: toEpoch(s.LastSuccessfulExecutionDate),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *AssociationDescription) UnmarshalJSON(b []byte) error {
	type alias AssociationDescription
	aux := struct {
		alias
		Date                        *epochTime `json:"Date,omitempty"`
		LastUpdateAssociationDate   *epochTime `json:"LastUpdateAssociationDate,omitempty"`
		LastExecutionDate           *epochTime `json:"LastExecutionDate,omitempty"`
		LastSuccessfulExecutionDate *epochTime `json:"LastSuccessfulExecutionDate,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = AssociationDescription(aux.alias)
	s.Date = aux.Date.asTime()
	s.LastUpdateAssociationDate = aux.LastUpdateAssociationDate.asTime()
	s.LastExecutionDate = aux.LastExecutionDate.asTime()
	s.LastSuccessfulExecutionDate = aux.LastSuccessfulExecutionDate.asTime()
	return nil
}

// AssociationStatus is the current status of an association.
type AssociationStatus struct {
	Date           *time.Time            `json:"Date,omitempty"`
	Name           AssociationStatusName `json:"Name,omitempty"`
	Message        *string               `json:"Message,omitempty"`
	AdditionalInfo *string               `json:"AdditionalInfo,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AssociationStatus) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AssociationStatus) Equal(other *AssociationStatus) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AssociationStatus) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetDate sets the Date field's value.
func (s *AssociationStatus) SetDate(v time.Time) *AssociationStatus {
	s.Date = &v
	return s
}

// SetName sets the Name field's value.
func (s *AssociationStatus) SetName(v AssociationStatusName) *AssociationStatus {
	s.Name = v
	return s
}

// SetMessage sets the Message field's value.
func (s *AssociationStatus) SetMessage(v string) *AssociationStatus {
	s.Message = &v
	return s
}

// SetAdditionalInfo sets the AdditionalInfo field's value.
func (s *AssociationStatus) SetAdditionalInfo(v string) *AssociationStatus {
	s.AdditionalInfo = &v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s AssociationStatus) MarshalJSON() ([]byte, error) {
	type alias AssociationStatus
	return json.Marshal(struct {
		alias
		Date *epochTime `json:"Date,omitempty"`
	}{
		alias: alias(s),
		Date:  toEpoch(s.Date),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *AssociationStatus) UnmarshalJSON(b []byte) error {
	type alias AssociationStatus
	aux := struct {
		alias
		Date *epochTime `json:"Date,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = AssociationStatus(aux.alias)
	s.Date = aux.Date.asTime()
	return nil
}

// AssociationOverview aggregates association status across its targets.
type AssociationOverview struct {
	Status         *string `json:"Status,omitempty"`
	DetailedStatus *string `json:"DetailedStatus,omitempty"`

	// AssociationStatusAggregatedCount maps a status to the number of targets in it.
	AssociationStatusAggregatedCount map[string]int32 `json:"AssociationStatusAggregatedCount,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AssociationOverview) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AssociationOverview) Equal(other *AssociationOverview) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AssociationOverview) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetStatus sets the Status field's value.
func (s *AssociationOverview) SetStatus(v string) *AssociationOverview {
	s.Status = &v
	return s
}

// SetDetailedStatus sets the DetailedStatus field's value.
func (s *AssociationOverview) SetDetailedStatus(v string) *AssociationOverview {
	s.DetailedStatus = &v
	return s
}

// SetAssociationStatusAggregatedCount sets the AssociationStatusAggregatedCount field's value.
func (s *AssociationOverview) SetAssociationStatusAggregatedCount(v map[string]int32) *AssociationOverview {
	s.AssociationStatusAggregatedCount = v
	return s
}

// AddAssociationStatusAggregatedCountEntry adds a single AssociationStatusAggregatedCount entry. It returns an error wrapping
// ErrDuplicateKey when key is already present.
func (s *AssociationOverview) AddAssociationStatusAggregatedCountEntry(key string, value int32) error {
	return addEntry(&s.AssociationStatusAggregatedCount, key, value)
}

// ClearAssociationStatusAggregatedCountEntries removes all AssociationStatusAggregatedCount entries.
func (s *AssociationOverview) ClearAssociationStatusAggregatedCountEntries() *AssociationOverview {
	s.AssociationStatusAggregatedCount = nil
	return s
}

// DescribeAssociationExecutionsInput is the request shape of
// DescribeAssociationExecutions.
type DescribeAssociationExecutionsInput struct {
	AssociationId *string                      `json:"AssociationId,omitempty"`
	Filters       []AssociationExecutionFilter `json:"Filters,omitempty"`
	MaxResults    *int32                       `json:"MaxResults,omitempty"`
	NextToken     *string                      `json:"NextToken,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DescribeAssociationExecutionsInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DescribeAssociationExecutionsInput) Equal(other *DescribeAssociationExecutionsInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DescribeAssociationExecutionsInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAssociationId sets the AssociationId field's value.
func (s *DescribeAssociationExecutionsInput) SetAssociationId(v string) *DescribeAssociationExecutionsInput {
	s.AssociationId = &v
	return s
}

// SetFilters sets the Filters field's value.
func (s *DescribeAssociationExecutionsInput) SetFilters(v []AssociationExecutionFilter) *DescribeAssociationExecutionsInput {
	s.Filters = v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *DescribeAssociationExecutionsInput) SetMaxResults(v int32) *DescribeAssociationExecutionsInput {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeAssociationExecutionsInput) SetNextToken(v string) *DescribeAssociationExecutionsInput {
	s.NextToken = &v
	return s
}

// DescribeAssociationExecutionsOutput is the response shape of
// DescribeAssociationExecutions.
type DescribeAssociationExecutionsOutput struct {
	AssociationExecutions []AssociationExecution `json:"AssociationExecutions,omitempty"`
	NextToken             *string                `json:"NextToken,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DescribeAssociationExecutionsOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DescribeAssociationExecutionsOutput) Equal(other *DescribeAssociationExecutionsOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DescribeAssociationExecutionsOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAssociationExecutions sets the AssociationExecutions field's value.
func (s *DescribeAssociationExecutionsOutput) SetAssociationExecutions(v []AssociationExecution) *DescribeAssociationExecutionsOutput {
	s.AssociationExecutions = v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeAssociationExecutionsOutput) SetNextToken(v string) *DescribeAssociationExecutionsOutput {
	s.NextToken = &v
	return s
}

// AssociationExecution is one run of an association.
type AssociationExecution struct {
	AssociationId         *string    `json:"AssociationId,omitempty"`
	AssociationVersion    *string    `json:"AssociationVersion,omitempty"`
	ExecutionId           *string    `json:"ExecutionId,omitempty"`
	Status                *string    `json:"Status,omitempty"`
	DetailedStatus        *string    `json:"DetailedStatus,omitempty"`
	CreatedTime           *time.Time `json:"CreatedTime,omitempty"`
	LastExecutionDate     *time.Time `json:"LastExecutionDate,omitempty"`
	ResourceCountByStatus *string    `json:"ResourceCountByStatus,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AssociationExecution) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AssociationExecution) Equal(other *AssociationExecution) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AssociationExecution) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetAssociationId sets the AssociationId field's value.
func (s *AssociationExecution) SetAssociationId(v string) *AssociationExecution {
	s.AssociationId = &v
	return s
}

// SetAssociationVersion sets the AssociationVersion field's value.
func (s *AssociationExecution) SetAssociationVersion(v string) *AssociationExecution {
	s.AssociationVersion = &v
	return s
}

// SetExecutionId sets the ExecutionId field's value.
func (s *AssociationExecution) SetExecutionId(v string) *AssociationExecution {
	s.ExecutionId = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *AssociationExecution) SetStatus(v string) *AssociationExecution {
	s.Status = &v
	return s
}

// SetDetailedStatus sets the DetailedStatus field's value.
func (s *AssociationExecution) SetDetailedStatus(v string) *AssociationExecution {
	s.DetailedStatus = &v
	return s
}

// SetCreatedTime sets the CreatedTime field's value.
func (s *AssociationExecution) SetCreatedTime(v time.Time) *AssociationExecution {
	s.CreatedTime = &v
	return s
}

// SetLastExecutionDate sets the LastExecutionDate field's value.
func (s *AssociationExecution) SetLastExecutionDate(v time.Time) *AssociationExecution {
	s.LastExecutionDate = &v
	return s
}

// SetResourceCountByStatus sets the ResourceCountByStatus field's value.
func (s *AssociationExecution) SetResourceCountByStatus(v string) *AssociationExecution {
	s.ResourceCountByStatus = &v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s AssociationExecution) MarshalJSON() ([]byte, error) {
	type alias AssociationExecution
	return json.Marshal(struct {
		alias
		CreatedTime       *epochTime `json:"CreatedTime,omitempty"`
		LastExecutionDate *epochTime `json:"LastExecutionDate,omitempty"`
	}{
		alias:             alias(s),
		CreatedTime:       toEpoch(s.CreatedTime),
		LastExecutionDate: toEpoch(s.LastExecutionDate),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *AssociationExecution) UnmarshalJSON(b []byte) error {
	type alias AssociationExecution
	aux := struct {
		alias
		CreatedTime       *epochTime `json:"CreatedTime,omitempty"`
		LastExecutionDate *epochTime `json:"LastExecutionDate,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = AssociationExecution(aux.alias)
	s.CreatedTime = aux.CreatedTime.asTime()
	s.LastExecutionDate = aux.LastExecutionDate.asTime()
	return nil
}

// AssociationExecutionFilter narrows DescribeAssociationExecutions results.
// All three members are required.
type AssociationExecutionFilter struct {
	Key   AssociationExecutionFilterKey `json:"Key,omitempty"`
	Value *string                       `json:"Value,omitempty"`
	Type  AssociationFilterOperatorType `json:"Type,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AssociationExecutionFilter) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AssociationExecutionFilter) Equal(other *AssociationExecutionFilter) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AssociationExecutionFilter) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetKey sets the Key field's value.
func (s *AssociationExecutionFilter) SetKey(v AssociationExecutionFilterKey) *AssociationExecutionFilter {
	s.Key = v
	return s
}

// SetValue sets the Value field's value.
func (s *AssociationExecutionFilter) SetValue(v string) *AssociationExecutionFilter {
	s.Value = &v
	return s
}

// SetType sets the Type field's value.
func (s *AssociationExecutionFilter) SetType(v AssociationFilterOperatorType) *AssociationExecutionFilter {
	s.Type = v
	return s
}

// Validate checks the documented constraints of CreateAssociationInput.
func (s *CreateAssociationInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("CreateAssociationInput")
	v.required("Name", s.Name != nil)
	v.pattern("Name", s.Name, documentARNPattern)
	v.documentVersion(s.DocumentVersion)
	v.pattern("InstanceId", s.InstanceId, instanceIDPattern)
	v.targets(s.Targets)
	v.length("ScheduleExpression", s.ScheduleExpression, 1, 256)
	v.nested("OutputLocation", s.OutputLocation)
	v.pattern("AssociationName", s.AssociationName, associationNamePattern)
	v.length("AutomationTargetParameterName", s.AutomationTargetParameterName, 1, 50)
	v.rateControl(s.MaxConcurrency, s.MaxErrors)
	return v.err()
}

// Validate checks the documented constraints of CreateAssociationBatchRequestEntry.
func (s *CreateAssociationBatchRequestEntry) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("CreateAssociationBatchRequestEntry")
	v.required("Name", s.Name != nil)
	v.pattern("Name", s.Name, documentARNPattern)
	v.pattern("InstanceId", s.InstanceId, instanceIDPattern)
	v.length("AutomationTargetParameterName", s.AutomationTargetParameterName, 1, 50)
	v.documentVersion(s.DocumentVersion)
	v.targets(s.Targets)
	v.length("ScheduleExpression", s.ScheduleExpression, 1, 256)
	v.nested("OutputLocation", s.OutputLocation)
	v.pattern("AssociationName", s.AssociationName, associationNamePattern)
	v.rateControl(s.MaxConcurrency, s.MaxErrors)
	return v.err()
}

// Validate checks the documented constraints of CreateAssociationBatchInput.
func (s *CreateAssociationBatchInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("CreateAssociationBatchInput")
	v.required("Entries", s.Entries != nil)
	v.count("Entries", s.Entries != nil, len(s.Entries), 1, unbounded)
	validateList(v, "Entries", s.Entries)
	return v.err()
}

// Validate checks the documented constraints of UpdateAssociationInput.
func (s *UpdateAssociationInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("UpdateAssociationInput")
	v.required("AssociationId", s.AssociationId != nil)
	v.pattern("AssociationId", s.AssociationId, associationIDPattern)
	v.documentVersion(s.DocumentVersion)
	v.length("ScheduleExpression", s.ScheduleExpression, 1, 256)
	v.nested("OutputLocation", s.OutputLocation)
	v.pattern("Name", s.Name, documentARNPattern)
	v.targets(s.Targets)
	v.pattern("AssociationName", s.AssociationName, associationNamePattern)
	v.pattern("AssociationVersion", s.AssociationVersion, associationVersionPattern)
	v.length("AutomationTargetParameterName", s.AutomationTargetParameterName, 1, 50)
	v.rateControl(s.MaxConcurrency, s.MaxErrors)
	return v.err()
}

// Validate checks the documented constraints of DescribeAssociationExecutionsInput.
func (s *DescribeAssociationExecutionsInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("DescribeAssociationExecutionsInput")
	v.required("AssociationId", s.AssociationId != nil)
	v.pattern("AssociationId", s.AssociationId, associationIDPattern)
	v.count("Filters", s.Filters != nil, len(s.Filters), 1, unbounded)
	validateList(v, "Filters", s.Filters)
	v.between("MaxResults", s.MaxResults, 1, 50)
	return v.err()
}

// Validate checks the documented constraints of AssociationExecutionFilter.
func (s *AssociationExecutionFilter) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("AssociationExecutionFilter")
	v.required("Key", s.Key != "")
	v.required("Value", s.Value != nil)
	v.length("Value", s.Value, 1, unbounded)
	v.required("Type", s.Type != "")
	return v.err()
}
