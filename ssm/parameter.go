package ssm

import (
	"github.com/wadahiro/ssmshapes/internal/shapeutil"
)

// PutParameterInput is the request shape of PutParameter.
type PutParameterInput struct {
	// Name is the fully qualified parameter name, at most 2048 characters. Required.
	Name *string `json:"Name,omitempty"`

	Description *string `json:"Description,omitempty"`

	// Value is the parameter value. Required.
	Value *string `json:"Value,omitempty"`

	Type ParameterType `json:"Type,omitempty"`

	// KeyId is the KMS key used to encrypt a SecureString.
	KeyId *string `json:"KeyId,omitempty"`

	Overwrite      *bool         `json:"Overwrite,omitempty"`
	AllowedPattern *string       `json:"AllowedPattern,omitempty"`
	Tags           []Tag         `json:"Tags,omitempty"`
	Tier           ParameterTier `json:"Tier,omitempty"`
	Policies       *string       `json:"Policies,omitempty"`
	DataType       *string       `json:"DataType,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *PutParameterInput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *PutParameterInput) Equal(other *PutParameterInput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *PutParameterInput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetName sets the Name field's value.
func (s *PutParameterInput) SetName(v string) *PutParameterInput {
	s.Name = &v
	return s
}

// SetDescription sets the Description field's value.
func (s *PutParameterInput) SetDescription(v string) *PutParameterInput {
	s.Description = &v
	return s
}

// SetValue sets the Value field's value.
func (s *PutParameterInput) SetValue(v string) *PutParameterInput {
	s.Value = &v
	return s
}

// SetType sets the Type field's value.
func (s *PutParameterInput) SetType(v ParameterType) *PutParameterInput {
	s.Type = v
	return s
}

// SetKeyId sets the KeyId field's value.
func (s *PutParameterInput) SetKeyId(v string) *PutParameterInput {
	s.KeyId = &v
	return s
}

// SetOverwrite sets the Overwrite field's value.
func (s *PutParameterInput) SetOverwrite(v bool) *PutParameterInput {
	s.Overwrite = &v
	return s
}

// SetAllowedPattern sets the AllowedPattern field's value.
func (s *PutParameterInput) SetAllowedPattern(v string) *PutParameterInput {
	s.AllowedPattern = &v
	return s
}

// SetTags sets the Tags field's value.
func (s *PutParameterInput) SetTags(v []Tag) *PutParameterInput {
	s.Tags = v
	return s
}

// SetTier sets the Tier field's value.
func (s *PutParameterInput) SetTier(v ParameterTier) *PutParameterInput {
	s.Tier = v
	return s
}

// SetPolicies sets the Policies field's value.
func (s *PutParameterInput) SetPolicies(v string) *PutParameterInput {
	s.Policies = &v
	return s
}

// SetDataType sets the DataType field's value.
func (s *PutParameterInput) SetDataType(v string) *PutParameterInput {
	s.DataType = &v
	return s
}

// PutParameterOutput is the response shape of PutParameter.
type PutParameterOutput struct {
	Version *int64        `json:"Version,omitempty"`
	Tier    ParameterTier `json:"Tier,omitempty"`
}

// String returns the string representation. A nil shape renders as null.
func (s *PutParameterOutput) String() string {
	if s == nil {
		return "null"
	}
	return shapeutil.Prettify(s)
}

// Equal reports whether s and other hold the same field values.
func (s *PutParameterOutput) Equal(other *PutParameterOutput) bool {
	return shapeutil.Equal(s, other)
}

// HashCode returns a field-wise hash that is consistent with Equal.
func (s *PutParameterOutput) HashCode() uint64 {
	if s == nil {
		return 0
	}
	return shapeutil.Hash(s)
}

// SetVersion sets the Version field's value.
func (s *PutParameterOutput) SetVersion(v int64) *PutParameterOutput {
	s.Version = &v
	return s
}

// SetTier sets the Tier field's value.
func (s *PutParameterOutput) SetTier(v ParameterTier) *PutParameterOutput {
	s.Tier = v
	return s
}

// Validate checks the documented constraints of PutParameterInput.
func (s *PutParameterInput) Validate() error {
	if s == nil {
		return nil
	}
	v := newValidator("PutParameterInput")
	v.required("Name", s.Name != nil)
	v.length("Name", s.Name, 1, 2048)
	v.length("Description", s.Description, 0, 1024)
	v.required("Value", s.Value != nil)
	v.length("KeyId", s.KeyId, 1, 256)
	v.pattern("KeyId", s.KeyId, kmsKeyIDPattern)
	v.length("AllowedPattern", s.AllowedPattern, 0, 1024)
	v.count("Tags", s.Tags != nil, len(s.Tags), 0, 1000)
	validateList(v, "Tags", s.Tags)
	v.length("Policies", s.Policies, 1, 4096)
	v.length("DataType", s.DataType, 0, 128)
	return v.err()
}
