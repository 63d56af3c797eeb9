// ABOUTME: Tests for search command
// ABOUTME: Verifies search command structure and flag defaults

package commands

import (
	"testing"
)

func TestNewSearchCmd(t *testing.T) {
	cmd := NewSearchCmd()

	if cmd.Use != "search <vibe>" {
		t.Errorf("Use = %q, want %q", cmd.Use, "search <vibe>")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestSearchCmd_Flags(t *testing.T) {
	cmd := NewSearchCmd()

	limitFlag := cmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("--limit flag not found")
	}
	if limitFlag.DefValue != "3" {
		t.Errorf("--limit default = %q, want %q", limitFlag.DefValue, "3")
	}

	thresholdFlag := cmd.Flags().Lookup("threshold")
	if thresholdFlag == nil {
		t.Fatal("--threshold flag not found")
	}
	if thresholdFlag.DefValue != "0.7" {
		t.Errorf("--threshold default = %q, want %q", thresholdFlag.DefValue, "0.7")
	}
}

func TestSearchCmd_ArgsValidation(t *testing.T) {
	cmd := NewSearchCmd()

	// Should require exactly 1 argument
	if cmd.Args == nil {
		t.Error("Args validator should be set")
	}

	if err := cmd.Args(cmd, []string{}); err == nil {
		t.Error("search should reject zero arguments")
	}
	if err := cmd.Args(cmd, []string{"cozy"}); err != nil {
		t.Errorf("search should accept one argument, got error: %v", err)
	}
	if err := cmd.Args(cmd, []string{"cozy", "extra"}); err == nil {
		t.Error("search should reject two arguments")
	}
}
