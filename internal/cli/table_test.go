package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})
	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	if len(table.rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("padded column = %q, want empty", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"ROLE", "HEX"})
	table.AddRow([]string{"primary", "#415f91"})
	table.AddRow([]string{"onPrimaryContainer", "#001b3f"})

	want := "" +
		"ROLE                HEX\n" +
		"------------------  -------\n" +
		"primary             #415f91\n" +
		"onPrimaryContainer  #001b3f\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() with no headers = %q, want empty", got)
	}

	got := NewTable([]string{"A"}).Render()
	if got != "A\n-\n" {
		t.Errorf("Render() with no rows = %q", got)
	}
}

func TestTableMultibyteWidth(t *testing.T) {
	table := NewTable([]string{"STATUS", "NAME"})
	table.AddRow([]string{"✓ ok", "css"})
	table.AddRow([]string{"✗ failed", "json"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if !strings.HasPrefix(lines[2], "✓ ok      css") {
		t.Errorf("multi-byte cell misaligned: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "✗ failed  json") {
		t.Errorf("multi-byte cell misaligned: %q", lines[3])
	}
}

func TestTableWrap(t *testing.T) {
	table := NewTable([]string{"NAME", "DESCRIPTION"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"css", "custom properties for the web"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	want := []string{
		"NAME  DESCRIPTION",
		"----  -----------",
		"css   custom",
		"      properties",
		"      for the",
		"      web",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"no limit", "a long line of text", 0, []string{"a long line of text"}},
		{"words", "one two three", 7, []string{"one two", "three"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "ab cdefgh", 4, []string{"ab", "cdef", "gh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
