// ABOUTME: Tests for products command group
// ABOUTME: Verifies subcommand registration and clear safety flag

package commands

import (
	"bytes"
	"testing"
)

func TestNewProductsCmd(t *testing.T) {
	cmd := NewProductsCmd()

	if cmd.Use != "products" {
		t.Errorf("Use = %q, want %q", cmd.Use, "products")
	}

	expected := []string{"list", "clear"}
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			for _, sub := range cmd.Commands() {
				if sub.Name() == name {
					return
				}
			}
			t.Errorf("subcommand %q not registered", name)
		})
	}
}

func TestProductsClearCmd_RequiresForce(t *testing.T) {
	cmd := newProductsClearCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("clear without --force should fail")
	}
}

func TestProductsClearCmd_ForceFlag(t *testing.T) {
	cmd := newProductsClearCmd()

	forceFlag := cmd.Flags().Lookup("force")
	if forceFlag == nil {
		t.Fatal("--force flag not found")
	}
	if forceFlag.Shorthand != "f" {
		t.Errorf("--force shorthand = %q, want %q", forceFlag.Shorthand, "f")
	}
	if forceFlag.DefValue != "false" {
		t.Errorf("--force default = %q, want %q", forceFlag.DefValue, "false")
	}
}
