// ABOUTME: Tests for serve command
// ABOUTME: Verifies command structure and port flag

package commands

import (
	"testing"
)

func TestNewServeCmd(t *testing.T) {
	cmd := NewServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	portFlag := cmd.Flags().Lookup("port")
	if portFlag == nil {
		t.Fatal("--port flag not found")
	}
	if portFlag.Shorthand != "p" {
		t.Errorf("--port shorthand = %q, want %q", portFlag.Shorthand, "p")
	}
}
