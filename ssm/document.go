package ssm

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/wadahiro/ssmshapes/internal/shapeutil"
)

// DescribeDocumentInput is the request shape of DescribeDocument.
type DescribeDocumentInput struct {
	Name            *string `json:"Name,omitempty"`
	DocumentVersion *string `json:"DocumentVersion,omitempty"`
	VersionName     *string `json:"VersionName,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DescribeDocumentInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DescribeDocumentInput) Equal(other *DescribeDocumentInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DescribeDocumentInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *DescribeDocumentInput) SetName(v string) *DescribeDocumentInput {
	s.Name = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *DescribeDocumentInput) SetDocumentVersion(v string) *DescribeDocumentInput {
	s.DocumentVersion = &v
	return s
}

// SetVersionName sets the VersionName field's value.
func (s *DescribeDocumentInput) SetVersionName(v string) *DescribeDocumentInput {
	s.VersionName = &v
	return s
}

// DescribeDocumentOutput is the response shape of DescribeDocument.
type DescribeDocumentOutput struct {
	Document *DocumentDescription `json:"Document,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DescribeDocumentOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DescribeDocumentOutput) Equal(other *DescribeDocumentOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DescribeDocumentOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetDocument sets the Document field's value.
func (s *DescribeDocumentOutput) SetDocument(v *DocumentDescription) *DescribeDocumentOutput {
	s.Document = v
	return s
}

// DocumentDescription describes an SSM document.
type DocumentDescription struct {
	// Sha1 is deprecated; use Hash.
	Sha1 *string `json:"Sha1,omitempty"`

	Hash                   *string                 `json:"Hash,omitempty"`
	HashType               DocumentHashType        `json:"HashType,omitempty"`
	Name                   *string                 `json:"Name,omitempty"`
	VersionName            *string                 `json:"VersionName,omitempty"`
	Owner                  *string                 `json:"Owner,omitempty"`
	CreatedDate            *time.Time              `json:"CreatedDate,omitempty"`
	Status                 DocumentStatus          `json:"Status,omitempty"`
	StatusInformation      *string                 `json:"StatusInformation,omitempty"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	Description            *string                 `json:"Description,omitempty"`
	Parameters             []DocumentParameter     `json:"Parameters,omitempty"`
	PlatformTypes          []PlatformType          `json:"PlatformTypes,omitempty"`
	DocumentType           DocumentType            `json:"DocumentType,omitempty"`
	SchemaVersion          *string                 `json:"SchemaVersion,omitempty"`
	LatestVersion          *string                 `json:"LatestVersion,omitempty"`
	DefaultVersion         *string                 `json:"DefaultVersion,omitempty"`
	DocumentFormat         DocumentFormat          `json:"DocumentFormat,omitempty"`
	TargetType             *string                 `json:"TargetType,omitempty"`
	Tags                   []Tag                   `json:"Tags,omitempty"`
	AttachmentsInformation []AttachmentInformation `json:"AttachmentsInformation,omitempty"`
	Requires               []DocumentRequires      `json:"Requires,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DocumentDescription) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DocumentDescription) Equal(other *DocumentDescription) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DocumentDescription) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetSha1 sets the Sha1 field's value.
func (s *DocumentDescription) SetSha1(v string) *DocumentDescription {
	s.Sha1 = &v
	return s
}

// SetHash sets the Hash field's value.
func (s *DocumentDescription) SetHash(v string) *DocumentDescription {
	s.Hash = &v
	return s
}

// SetHashType sets the HashType field's value.
func (s *DocumentDescription) SetHashType(v DocumentHashType) *DocumentDescription {
	s.HashType = v
	return s
}

// SetName sets the Name field's value.
func (s *DocumentDescription) SetName(v string) *DocumentDescription {
	s.Name = &v
	return s
}

// SetVersionName sets the VersionName field's value.
func (s *DocumentDescription) SetVersionName(v string) *DocumentDescription {
	s.VersionName = &v
	return s
}

// SetOwner sets the Owner field's value.
func (s *DocumentDescription) SetOwner(v string) *DocumentDescription {
	s.Owner = &v
	return s
}

// SetCreatedDate sets the CreatedDate field's value.
func (s *DocumentDescription) SetCreatedDate(v time.Time) *DocumentDescription {
	s.CreatedDate = &v
	return s
}

// SetStatus sets the Status field's value.
func (s *DocumentDescription) SetStatus(v DocumentStatus) *DocumentDescription {
	s.Status = v
	return s
}

// SetStatusInformation sets the StatusInformation field's value.
func (s *DocumentDescription) SetStatusInformation(v string) *DocumentDescription {
	s.StatusInformation = &v
	return s
}

// SetDocumentVersion sets the DocumentVersion field's value.
func (s *DocumentDescription) SetDocumentVersion(v string) *DocumentDescription {
	s.DocumentVersion = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *DocumentDescription) SetDescription(v string) *DocumentDescription {
	s.Description = &v
	return s
}

// SetParameters sets the Parameters field's value.
func (s *DocumentDescription) SetParameters(v []DocumentParameter) *DocumentDescription {
	s.Parameters = v
	return s
}

// SetPlatformTypes sets the PlatformTypes field's value.
func (s *DocumentDescription) SetPlatformTypes(v []PlatformType) *DocumentDescription {
	s.PlatformTypes = v
	return s
}

// SetDocumentType sets the DocumentType field's value.
func (s *DocumentDescription) SetDocumentType(v DocumentType) *DocumentDescription {
	s.DocumentType = v
	return s
}

// SetSchemaVersion sets the SchemaVersion field's value.
func (s *DocumentDescription) SetSchemaVersion(v string) *DocumentDescription {
	s.SchemaVersion = &v
	return s
}

// SetLatestVersion sets the LatestVersion field's value.
func (s *DocumentDescription) SetLatestVersion(v string) *DocumentDescription {
	s.LatestVersion = &v
	return s
}

// SetDefaultVersion sets the DefaultVersion field's value.
func (s *DocumentDescription) SetDefaultVersion(v string) *DocumentDescription {
	s.DefaultVersion = &v
	return s
}

// SetDocumentFormat sets the DocumentFormat field's value.
func (s *DocumentDescription) SetDocumentFormat(v DocumentFormat) *DocumentDescription {
	s.DocumentFormat = v
	return s
}

// SetTargetType sets the TargetType field's value.
func (s *DocumentDescription) SetTargetType(v string) *DocumentDescription {
	s.TargetType = &v
	return s
}

// SetTags sets the Tags field's value.
func (s *DocumentDescription) SetTags(v []Tag) *DocumentDescription {
	s.Tags = v
	return s
}

// SetAttachmentsInformation sets the AttachmentsInformation field's value.
func (s *DocumentDescription) SetAttachmentsInformation(v []AttachmentInformation) *DocumentDescription {
	s.AttachmentsInformation = v
	return s
}

// SetRequires sets the Requires field's value.
func (s *DocumentDescription) SetRequires(v []DocumentRequires) *DocumentDescription {
	s.Requires = v
	return s
}

// MarshalJSON encodes the timestamp members as epoch seconds.
func (s DocumentDescription) MarshalJSON() ([]byte, error) {
	type alias DocumentDescription
	return json.Marshal(struct {
		alias
		CreatedDate *epochTime `json:"CreatedDate,omitempty"`
	}{
		alias:       alias(s),
		CreatedDate: toEpoch(s.CreatedDate),
	})
}

// UnmarshalJSON decodes epoch-second timestamp members.
func (s *DocumentDescription) UnmarshalJSON(b []byte) error {
	type alias DocumentDescription
	aux := struct {
		alias
		CreatedDate *epochTime `json:"CreatedDate,omitempty"`
	}{alias: alias(*s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = DocumentDescription(aux.alias)
	s.CreatedDate = aux.CreatedDate.asTime()
	return nil
}

// DocumentParameter declares one parameter of an SSM document.
type DocumentParameter struct {
	Name         *string               `json:"Name,omitempty"`
	Type         DocumentParameterType `json:"Type,omitempty"`
	Description  *string               `json:"Description,omitempty"`
	DefaultValue *string               `json:"DefaultValue,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DocumentParameter) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DocumentParameter) Equal(other *DocumentParameter) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DocumentParameter) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *DocumentParameter) SetName(v string) *DocumentParameter {
	s.Name = &v
	return s
}

// SetType sets the Type field's value.
func (s *DocumentParameter) SetType(v DocumentParameterType) *DocumentParameter {
	s.Type = v
	return s
}

// SetDescription sets the Description field's value.
func (s *DocumentParameter) SetDescription(v string) *DocumentParameter {
	s.Description = &v
	return s
}

// SetDefaultValue sets the DefaultValue field's value.
func (s *DocumentParameter) SetDefaultValue(v string) *DocumentParameter {
	s.DefaultValue = &v
	return s
}

// AttachmentInformation names a document attachment.
type AttachmentInformation struct {
	Name *string `json:"Name,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *AttachmentInformation) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *AttachmentInformation) Equal(other *AttachmentInformation) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *AttachmentInformation) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *AttachmentInformation) SetName(v string) *AttachmentInformation {
	s.Name = &v
	return s
}

// DocumentRequires is a document that must exist before this one is used.
type DocumentRequires struct {
	Name    *string `json:"Name,omitempty"`
	Version *string `json:"Version,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *DocumentRequires) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *DocumentRequires) Equal(other *DocumentRequires) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *DocumentRequires) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *DocumentRequires) SetName(v string) *DocumentRequires {
	s.Name = &v
	return s
}

// SetVersion sets the Version field's value.
func (s *DocumentRequires) SetVersion(v string) *DocumentRequires {
	s.Version = &v
	return s
}

// Validate checks the documented constraints of DescribeDocumentInput.
func (s *DescribeDocumentInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("DescribeDocumentInput")
	v.required("Name", s.Name != nil)
	v.pattern("Name", s.Name, documentARNPattern)
	v.documentVersion(s.DocumentVersion)
	v.pattern("VersionName", s.VersionName, versionNamePattern)
	return v.err()
}
