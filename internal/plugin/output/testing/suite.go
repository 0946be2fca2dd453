// Package testing provides shared test utilities for output plugins.
package testing

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/theme"
	"github.com/jmylchreest/tonal/pkg/tokens"
)

// TestSeed is the seed colour of CreateTestData.
const TestSeed uint32 = 0xFF769CDF

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with various scenarios.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestData(t, tokens.ProjectOptions{}))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			if len(files[expectedFile]) == 0 {
				t.Errorf("Generate() did not return %s", expectedFile)
			}
		}
	})

	t.Run("GenerateNilData", func(t *testing.T) {
		if _, err := p.Generate(nil); err == nil {
			t.Error("Generate() with nil data should return error")
		}
	})

	t.Run("GenerateDark", func(t *testing.T) {
		files, err := p.Generate(CreateTestData(t, tokens.ProjectOptions{Dark: true, BrightnessVariants: true}))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(files) == 0 {
			t.Error("Generate() returned no files")
		}
	})
}

// TestFlags tests that plugin flags use the plugin name as prefix.
func TestFlags(t *testing.T, p output.Plugin, expectedFlag string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		p.RegisterFlags(cmd)

		if expectedFlag == "" {
			return
		}
		if cmd.Flags().Lookup(expectedFlag) == nil {
			t.Errorf("RegisterFlags() did not register %s flag", expectedFlag)
		}
	})
}

// CreateTestData builds exporter input from TestSeed with one custom colour.
func CreateTestData(t *testing.T, opts tokens.ProjectOptions) *output.Data {
	t.Helper()

	o := theme.DefaultOptions()
	o.SourceColor = colour.ARGB(TestSeed)
	o.StaticColors = []theme.CustomColor{{Name: "Electric Leaf", Value: colour.Hex("#3fd13f")}}
	th, err := theme.CreateTheme(o)
	if err != nil {
		t.Fatalf("CreateTheme() error = %v", err)
	}

	data, err := output.NewData(th, opts, ":root")
	if err != nil {
		t.Fatalf("NewData() error = %v", err)
	}
	return data
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName)
	TestGeneration(t, p, config.ExpectedFiles)
	TestFlags(t, p, config.ExpectedFlag)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName  string   // Plugin name
	ExpectedFiles []string // Files that Generate() should return
	ExpectedFlag  string   // Optional flag RegisterFlags must add
}
