package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestCLI_Structure(t *testing.T) {
	// Compile-time check that the expected commands exist.
	var cli CLI
	_ = cli.Organize
	_ = cli.Categories
}

func TestKongParsing_OrganizeCommand(t *testing.T) {
	testDir := t.TempDir()

	testCases := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{
			name:        "Organize with directory",
			args:        []string{"organize", testDir},
			expectError: false,
		},
		{
			name:        "Organize with dry-run flag",
			args:        []string{"organize", "--dry-run", testDir},
			expectError: false,
		},
		{
			name:        "Organize with workers flag",
			args:        []string{"organize", "--workers", "8", testDir},
			expectError: false,
		},
		{
			name:        "Organize without directory",
			args:        []string{"organize"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cli CLI
			parser := kong.Must(&cli)

			ctx, err := parser.Parse(tc.args)

			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v, but parsing succeeded", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for args %v: %v", tc.args, err)
			}
			if !strings.Contains(ctx.Command(), "organize") {
				t.Errorf("Expected 'organize' command, got %q", ctx.Command())
			}
		})
	}
}

func TestKongParsing_OrganizeDefaults(t *testing.T) {
	var cli CLI
	parser := kong.Must(&cli)

	if _, err := parser.Parse([]string{"organize", t.TempDir()}); err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	if cli.Organize.Workers != 4 {
		t.Errorf("Expected default Workers to be 4, got %d", cli.Organize.Workers)
	}
	if cli.Organize.DryRun {
		t.Error("Expected DryRun to default to false")
	}
	if cli.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cli.LogLevel)
	}
	if cli.LogFormat != "console" {
		t.Errorf("Expected default log format console, got %q", cli.LogFormat)
	}
}

func TestKongParsing_CategoriesCommand(t *testing.T) {
	var cli CLI
	parser := kong.Must(&cli)

	ctx, err := parser.Parse([]string{"categories"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(ctx.Command(), "categories") {
		t.Errorf("Expected 'categories' command, got %q", ctx.Command())
	}
}
