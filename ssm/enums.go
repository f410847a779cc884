package ssm

import "sort"

// Enumerated members are plain strings so that values added to the service
// after this module was written still round-trip. Values lists the wire
// values known here; ValidateEnums flags anything else.

type AssociationComplianceSeverity string

// Enum values for AssociationComplianceSeverity
const (
	AssociationComplianceSeverityCritical    AssociationComplianceSeverity = "CRITICAL"
	AssociationComplianceSeverityHigh        AssociationComplianceSeverity = "HIGH"
	AssociationComplianceSeverityMedium      AssociationComplianceSeverity = "MEDIUM"
	AssociationComplianceSeverityLow         AssociationComplianceSeverity = "LOW"
	AssociationComplianceSeverityUnspecified AssociationComplianceSeverity = "UNSPECIFIED"
)

// Values returns all known values for AssociationComplianceSeverity.
func (AssociationComplianceSeverity) Values() []AssociationComplianceSeverity {
	return []AssociationComplianceSeverity{
		"CRITICAL",
		"HIGH",
		"MEDIUM",
		"LOW",
		"UNSPECIFIED",
	}
}

type AssociationExecutionFilterKey string

// Enum values for AssociationExecutionFilterKey
const (
	AssociationExecutionFilterKeyExecutionId AssociationExecutionFilterKey = "ExecutionId"
	AssociationExecutionFilterKeyStatus      AssociationExecutionFilterKey = "Status"
	AssociationExecutionFilterKeyCreatedTime AssociationExecutionFilterKey = "CreatedTime"
)

// Values returns all known values for AssociationExecutionFilterKey.
func (AssociationExecutionFilterKey) Values() []AssociationExecutionFilterKey {
	return []AssociationExecutionFilterKey{
		"ExecutionId",
		"Status",
		"CreatedTime",
	}
}

type AssociationFilterOperatorType string

// Enum values for AssociationFilterOperatorType
const (
	AssociationFilterOperatorTypeEqual       AssociationFilterOperatorType = "EQUAL"
	AssociationFilterOperatorTypeLessThan    AssociationFilterOperatorType = "LESS_THAN"
	AssociationFilterOperatorTypeGreaterThan AssociationFilterOperatorType = "GREATER_THAN"
)

// Values returns all known values for AssociationFilterOperatorType.
func (AssociationFilterOperatorType) Values() []AssociationFilterOperatorType {
	return []AssociationFilterOperatorType{
		"EQUAL",
		"LESS_THAN",
		"GREATER_THAN",
	}
}

type AssociationStatusName string

// Enum values for AssociationStatusName
const (
	AssociationStatusNamePending AssociationStatusName = "Pending"
	AssociationStatusNameSuccess AssociationStatusName = "Success"
	AssociationStatusNameFailed  AssociationStatusName = "Failed"
)

// Values returns all known values for AssociationStatusName.
func (AssociationStatusName) Values() []AssociationStatusName {
	return []AssociationStatusName{
		"Pending",
		"Success",
		"Failed",
	}
}

type AssociationSyncCompliance string

// Enum values for AssociationSyncCompliance
const (
	AssociationSyncComplianceAuto   AssociationSyncCompliance = "AUTO"
	AssociationSyncComplianceManual AssociationSyncCompliance = "MANUAL"
)

// Values returns all known values for AssociationSyncCompliance.
func (AssociationSyncCompliance) Values() []AssociationSyncCompliance {
	return []AssociationSyncCompliance{
		"AUTO",
		"MANUAL",
	}
}

type AutomationExecutionFilterKey string

// Enum values for AutomationExecutionFilterKey
const (
	AutomationExecutionFilterKeyDocumentNamePrefix AutomationExecutionFilterKey = "DocumentNamePrefix"
	AutomationExecutionFilterKeyExecutionStatus    AutomationExecutionFilterKey = "ExecutionStatus"
	AutomationExecutionFilterKeyExecutionId        AutomationExecutionFilterKey = "ExecutionId"
	AutomationExecutionFilterKeyParentExecutionId  AutomationExecutionFilterKey = "ParentExecutionId"
	AutomationExecutionFilterKeyCurrentAction      AutomationExecutionFilterKey = "CurrentAction"
	AutomationExecutionFilterKeyStartTimeBefore    AutomationExecutionFilterKey = "StartTimeBefore"
	AutomationExecutionFilterKeyStartTimeAfter     AutomationExecutionFilterKey = "StartTimeAfter"
	AutomationExecutionFilterKeyAutomationType     AutomationExecutionFilterKey = "AutomationType"
	AutomationExecutionFilterKeyTagKey             AutomationExecutionFilterKey = "TagKey"
)

// Values returns all known values for AutomationExecutionFilterKey.
func (AutomationExecutionFilterKey) Values() []AutomationExecutionFilterKey {
	return []AutomationExecutionFilterKey{
		"DocumentNamePrefix",
		"ExecutionStatus",
		"ExecutionId",
		"ParentExecutionId",
		"CurrentAction",
		"StartTimeBefore",
		"StartTimeAfter",
		"AutomationType",
		"TagKey",
	}
}

type AutomationExecutionStatus string

// Enum values for AutomationExecutionStatus
const (
	AutomationExecutionStatusPending    AutomationExecutionStatus = "Pending"
	AutomationExecutionStatusInProgress AutomationExecutionStatus = "InProgress"
	AutomationExecutionStatusWaiting    AutomationExecutionStatus = "Waiting"
	AutomationExecutionStatusSuccess    AutomationExecutionStatus = "Success"
	AutomationExecutionStatusTimedOut   AutomationExecutionStatus = "TimedOut"
	AutomationExecutionStatusCancelling AutomationExecutionStatus = "Cancelling"
	AutomationExecutionStatusCancelled  AutomationExecutionStatus = "Cancelled"
	AutomationExecutionStatusFailed     AutomationExecutionStatus = "Failed"
)

// Values returns all known values for AutomationExecutionStatus.
func (AutomationExecutionStatus) Values() []AutomationExecutionStatus {
	return []AutomationExecutionStatus{
		"Pending",
		"InProgress",
		"Waiting",
		"Success",
		"TimedOut",
		"Cancelling",
		"Cancelled",
		"Failed",
	}
}

type AutomationType string

// Enum values for AutomationType
const (
	AutomationTypeCrossAccount AutomationType = "CrossAccount"
	AutomationTypeLocal        AutomationType = "Local"
)

// Values returns all known values for AutomationType.
func (AutomationType) Values() []AutomationType {
	return []AutomationType{
		"CrossAccount",
		"Local",
	}
}

type CommandFilterKey string

// Enum values for CommandFilterKey
const (
	CommandFilterKeyInvokedAfter   CommandFilterKey = "InvokedAfter"
	CommandFilterKeyInvokedBefore  CommandFilterKey = "InvokedBefore"
	CommandFilterKeyStatus         CommandFilterKey = "Status"
	CommandFilterKeyExecutionStage CommandFilterKey = "ExecutionStage"
	CommandFilterKeyDocumentName   CommandFilterKey = "DocumentName"
)

// Values returns all known values for CommandFilterKey.
func (CommandFilterKey) Values() []CommandFilterKey {
	return []CommandFilterKey{
		"InvokedAfter",
		"InvokedBefore",
		"Status",
		"ExecutionStage",
		"DocumentName",
	}
}

type CommandInvocationStatus string

// Enum values for CommandInvocationStatus
const (
	CommandInvocationStatusPending    CommandInvocationStatus = "Pending"
	CommandInvocationStatusInProgress CommandInvocationStatus = "InProgress"
	CommandInvocationStatusDelayed    CommandInvocationStatus = "Delayed"
	CommandInvocationStatusSuccess    CommandInvocationStatus = "Success"
	CommandInvocationStatusCancelled  CommandInvocationStatus = "Cancelled"
	CommandInvocationStatusTimedOut   CommandInvocationStatus = "TimedOut"
	CommandInvocationStatusFailed     CommandInvocationStatus = "Failed"
	CommandInvocationStatusCancelling CommandInvocationStatus = "Cancelling"
)

// Values returns all known values for CommandInvocationStatus.
func (CommandInvocationStatus) Values() []CommandInvocationStatus {
	return []CommandInvocationStatus{
		"Pending",
		"InProgress",
		"Delayed",
		"Success",
		"Cancelled",
		"TimedOut",
		"Failed",
		"Cancelling",
	}
}

type CommandPluginStatus string

// Enum values for CommandPluginStatus
const (
	CommandPluginStatusPending    CommandPluginStatus = "Pending"
	CommandPluginStatusInProgress CommandPluginStatus = "InProgress"
	CommandPluginStatusSuccess    CommandPluginStatus = "Success"
	CommandPluginStatusTimedOut   CommandPluginStatus = "TimedOut"
	CommandPluginStatusCancelled  CommandPluginStatus = "Cancelled"
	CommandPluginStatusFailed     CommandPluginStatus = "Failed"
)

// Values returns all known values for CommandPluginStatus.
func (CommandPluginStatus) Values() []CommandPluginStatus {
	return []CommandPluginStatus{
		"Pending",
		"InProgress",
		"Success",
		"TimedOut",
		"Cancelled",
		"Failed",
	}
}

type CommandStatus string

// Enum values for CommandStatus
const (
	CommandStatusPending    CommandStatus = "Pending"
	CommandStatusInProgress CommandStatus = "InProgress"
	CommandStatusSuccess    CommandStatus = "Success"
	CommandStatusCancelled  CommandStatus = "Cancelled"
	CommandStatusFailed     CommandStatus = "Failed"
	CommandStatusTimedOut   CommandStatus = "TimedOut"
	CommandStatusCancelling CommandStatus = "Cancelling"
)

// Values returns all known values for CommandStatus.
func (CommandStatus) Values() []CommandStatus {
	return []CommandStatus{
		"Pending",
		"InProgress",
		"Success",
		"Cancelled",
		"Failed",
		"TimedOut",
		"Cancelling",
	}
}

type DocumentFormat string

// Enum values for DocumentFormat
const (
	DocumentFormatYaml DocumentFormat = "YAML"
	DocumentFormatJson DocumentFormat = "JSON"
	DocumentFormatText DocumentFormat = "TEXT"
)

// Values returns all known values for DocumentFormat.
func (DocumentFormat) Values() []DocumentFormat {
	return []DocumentFormat{
		"YAML",
		"JSON",
		"TEXT",
	}
}

type DocumentHashType string

// Enum values for DocumentHashType
const (
	DocumentHashTypeSha256 DocumentHashType = "Sha256"
	DocumentHashTypeSha1   DocumentHashType = "Sha1"
)

// Values returns all known values for DocumentHashType.
func (DocumentHashType) Values() []DocumentHashType {
	return []DocumentHashType{
		"Sha256",
		"Sha1",
	}
}

type DocumentParameterType string

// Enum values for DocumentParameterType
const (
	DocumentParameterTypeString     DocumentParameterType = "String"
	DocumentParameterTypeStringList DocumentParameterType = "StringList"
)

// Values returns all known values for DocumentParameterType.
func (DocumentParameterType) Values() []DocumentParameterType {
	return []DocumentParameterType{
		"String",
		"StringList",
	}
}

type DocumentStatus string

// Enum values for DocumentStatus
const (
	DocumentStatusCreating DocumentStatus = "Creating"
	DocumentStatusActive   DocumentStatus = "Active"
	DocumentStatusUpdating DocumentStatus = "Updating"
	DocumentStatusDeleting DocumentStatus = "Deleting"
	DocumentStatusFailed   DocumentStatus = "Failed"
)

// Values returns all known values for DocumentStatus.
func (DocumentStatus) Values() []DocumentStatus {
	return []DocumentStatus{
		"Creating",
		"Active",
		"Updating",
		"Deleting",
		"Failed",
	}
}

type DocumentType string

// Enum values for DocumentType
const (
	DocumentTypeCommand                        DocumentType = "Command"
	DocumentTypePolicy                         DocumentType = "Policy"
	DocumentTypeAutomation                     DocumentType = "Automation"
	DocumentTypeSession                        DocumentType = "Session"
	DocumentTypePackage                        DocumentType = "Package"
	DocumentTypeApplicationConfiguration       DocumentType = "ApplicationConfiguration"
	DocumentTypeApplicationConfigurationSchema DocumentType = "ApplicationConfigurationSchema"
	DocumentTypeDeploymentStrategy             DocumentType = "DeploymentStrategy"
	DocumentTypeChangeCalendar                 DocumentType = "ChangeCalendar"
)

// Values returns all known values for DocumentType.
func (DocumentType) Values() []DocumentType {
	return []DocumentType{
		"Command",
		"Policy",
		"Automation",
		"Session",
		"Package",
		"ApplicationConfiguration",
		"ApplicationConfigurationSchema",
		"DeploymentStrategy",
		"ChangeCalendar",
	}
}

type ExecutionMode string

// Enum values for ExecutionMode
const (
	ExecutionModeAuto        ExecutionMode = "Auto"
	ExecutionModeInteractive ExecutionMode = "Interactive"
)

// Values returns all known values for ExecutionMode.
func (ExecutionMode) Values() []ExecutionMode {
	return []ExecutionMode{
		"Auto",
		"Interactive",
	}
}

type Fault string

// Enum values for Fault
const (
	FaultClient  Fault = "Client"
	FaultServer  Fault = "Server"
	FaultUnknown Fault = "Unknown"
)

// Values returns all known values for Fault.
func (Fault) Values() []Fault {
	return []Fault{
		"Client",
		"Server",
		"Unknown",
	}
}

type NotificationEvent string

// Enum values for NotificationEvent
const (
	NotificationEventAll        NotificationEvent = "All"
	NotificationEventInProgress NotificationEvent = "InProgress"
	NotificationEventSuccess    NotificationEvent = "Success"
	NotificationEventTimedOut   NotificationEvent = "TimedOut"
	NotificationEventCancelled  NotificationEvent = "Cancelled"
	NotificationEventFailed     NotificationEvent = "Failed"
)

// Values returns all known values for NotificationEvent.
func (NotificationEvent) Values() []NotificationEvent {
	return []NotificationEvent{
		"All",
		"InProgress",
		"Success",
		"TimedOut",
		"Cancelled",
		"Failed",
	}
}

type NotificationType string

// Enum values for NotificationType
const (
	NotificationTypeCommand    NotificationType = "Command"
	NotificationTypeInvocation NotificationType = "Invocation"
)

// Values returns all known values for NotificationType.
func (NotificationType) Values() []NotificationType {
	return []NotificationType{
		"Command",
		"Invocation",
	}
}

type ParameterTier string

// Enum values for ParameterTier
const (
	ParameterTierStandard           ParameterTier = "Standard"
	ParameterTierAdvanced           ParameterTier = "Advanced"
	ParameterTierIntelligentTiering ParameterTier = "Intelligent-Tiering"
)

// Values returns all known values for ParameterTier.
func (ParameterTier) Values() []ParameterTier {
	return []ParameterTier{
		"Standard",
		"Advanced",
		"Intelligent-Tiering",
	}
}

type ParameterType string

// Enum values for ParameterType
const (
	ParameterTypeString       ParameterType = "String"
	ParameterTypeStringList   ParameterType = "StringList"
	ParameterTypeSecureString ParameterType = "SecureString"
)

// Values returns all known values for ParameterType.
func (ParameterType) Values() []ParameterType {
	return []ParameterType{
		"String",
		"StringList",
		"SecureString",
	}
}

type PlatformType string

// Enum values for PlatformType
const (
	PlatformTypeWindows PlatformType = "Windows"
	PlatformTypeLinux   PlatformType = "Linux"
)

// Values returns all known values for PlatformType.
func (PlatformType) Values() []PlatformType {
	return []PlatformType{
		"Windows",
		"Linux",
	}
}

var enumValues = map[string]func() []string{
	"AssociationComplianceSeverity": func() []string { return enumStrings(AssociationComplianceSeverity("").Values()) },
	"AssociationExecutionFilterKey": func() []string { return enumStrings(AssociationExecutionFilterKey("").Values()) },
	"AssociationFilterOperatorType": func() []string { return enumStrings(AssociationFilterOperatorType("").Values()) },
	"AssociationStatusName":         func() []string { return enumStrings(AssociationStatusName("").Values()) },
	"AssociationSyncCompliance":     func() []string { return enumStrings(AssociationSyncCompliance("").Values()) },
	"AutomationExecutionFilterKey":  func() []string { return enumStrings(AutomationExecutionFilterKey("").Values()) },
	"AutomationExecutionStatus":     func() []string { return enumStrings(AutomationExecutionStatus("").Values()) },
	"AutomationType":                func() []string { return enumStrings(AutomationType("").Values()) },
	"CommandFilterKey":              func() []string { return enumStrings(CommandFilterKey("").Values()) },
	"CommandInvocationStatus":       func() []string { return enumStrings(CommandInvocationStatus("").Values()) },
	"CommandPluginStatus":           func() []string { return enumStrings(CommandPluginStatus("").Values()) },
	"CommandStatus":                 func() []string { return enumStrings(CommandStatus("").Values()) },
	"DocumentFormat":                func() []string { return enumStrings(DocumentFormat("").Values()) },
	"DocumentHashType":              func() []string { return enumStrings(DocumentHashType("").Values()) },
	"DocumentParameterType":         func() []string { return enumStrings(DocumentParameterType("").Values()) },
	"DocumentStatus":                func() []string { return enumStrings(DocumentStatus("").Values()) },
	"DocumentType":                  func() []string { return enumStrings(DocumentType("").Values()) },
	"ExecutionMode":                 func() []string { return enumStrings(ExecutionMode("").Values()) },
	"Fault":                         func() []string { return enumStrings(Fault("").Values()) },
	"NotificationEvent":             func() []string { return enumStrings(NotificationEvent("").Values()) },
	"NotificationType":              func() []string { return enumStrings(NotificationType("").Values()) },
	"ParameterTier":                 func() []string { return enumStrings(ParameterTier("").Values()) },
	"ParameterType":                 func() []string { return enumStrings(ParameterType("").Values()) },
	"PlatformType":                  func() []string { return enumStrings(PlatformType("").Values()) },
}

func enumStrings[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// EnumNames returns the names of all enumerations, sorted.
func EnumNames() []string {
	names := make([]string, 0, len(enumValues))
	for name := range enumValues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnumValues returns the wire values of the named enumeration in API order.
func EnumValues(name string) ([]string, bool) {
	values, ok := enumValues[name]
	if !ok {
		return nil, false
	}
	return values(), true
}
