// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// Chdir switches the working directory to dir for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// Request bodies in AWS JSON 1.1 form.
const (
	SendCommandJSON = `{
  "DocumentName": "AWS-RunShellScript",
  "DocumentVersion": "$LATEST",
  "Targets": [{"Key": "tag:Env", "Values": ["prod"]}],
  "Parameters": {"commands": ["uptime"]},
  "TimeoutSeconds": 600,
  "MaxConcurrency": "10%",
  "MaxErrors": "1",
  "DocumentHashType": "Sha256"
}`

	InvalidSendCommandJSON = `{
  "DocumentVersion": "latest",
  "TimeoutSeconds": 5,
  "Targets": [{"Key": "", "Values": ["prod"]}]
}`

	PutParameterJSON = `{
  "Name": "/app/db/password",
  "Value": "s3cr3t",
  "Type": "SecureString",
  "Tier": "Standard",
  "Tags": [{"Key": "team", "Value": "platform"}]
}`

	CommandOutputJSON = `{
  "Command": {
    "CommandId": "0b6c5d1e-1111-2222-3333-444455556666",
    "DocumentName": "AWS-RunShellScript",
    "Status": "Success",
    "RequestedDateTime": 1700000000,
    "ExpiresAfter": 1700003600.5,
    "TargetCount": 2,
    "CompletedCount": 2
  }
}`
)
