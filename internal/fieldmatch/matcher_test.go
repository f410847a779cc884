package fieldmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactMatcher(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"same path", "SendCommandInput.Comment", "SendCommandInput.Comment", true},
		{"nested member", "SendCommandInput.Targets", "SendCommandInput.Targets[0].Key", true},
		{"longer member name", "SendCommandInput.OutputS3", "SendCommandInput.OutputS3BucketName", false},
		{"child struct", "CreateAssociationInput.OutputLocation", "CreateAssociationInput.OutputLocation.S3Location.OutputS3Region", true},
		{"shared prefix", "SendCommandInput.Target", "SendCommandInput.Targets", false},
		{"case sensitive", "sendcommandinput.comment", "SendCommandInput.Comment", false},
		{"other shape", "Tag.Key", "Tag.Value", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewExactMatcher(tt.pattern).Match(tt.path))
		})
	}
}

func TestGlobMatcher(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"any depth", "*.Key", "SendCommandInput.Targets[0].Key", true},
		{"any depth top", "*.Key", "Tag.Key", true},
		{"no match", "*.Key", "Tag.Value", false},
		{"shape wildcard", "SendCommandInput.*", "SendCommandInput.TimeoutSeconds", true},
		{"other shape", "SendCommandInput.*", "PutParameterInput.Name", false},
		{"single char", "SendCommandInput.Targets[?].Key", "SendCommandInput.Targets[3].Key", true},
		{"single char too long", "SendCommandInput.Targets[?].Key", "SendCommandInput.Targets[10].Key", false},
		{"double star", "**", "Anything.At.All", true},
		{"whole path", "*Input", "SendCommandInput.Comment", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGlobMatcher(tt.pattern).Match(tt.path))
		})
	}
}

func TestParseMatcher(t *testing.T) {
	assert.IsType(t, &GlobMatcher{}, ParseMatcher("*.Key"))
	assert.IsType(t, &GlobMatcher{}, ParseMatcher("Targets[?]"))
	assert.IsType(t, &ExactMatcher{}, ParseMatcher("Tag.Key"))
}

func TestSet(t *testing.T) {
	s := NewSet([]string{"", "  ", "Tag.Key", "*.DocumentVersion"})
	assert.Len(t, s, 2)

	assert.True(t, s.Match("Tag.Key"))
	assert.True(t, s.Match("SendCommandInput.DocumentVersion"))
	assert.False(t, s.Match("Tag.Value"))

	assert.False(t, NewSet(nil).Match("Tag.Key"))
}
