package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	path := writeTestFile(t, "first\nsecond\nthird\n")

	tests := []struct {
		name     string
		line     int
		expected string
	}{
		{name: "first line", line: 1, expected: "first"},
		{name: "middle line", line: 2, expected: "second"},
		{name: "last line", line: 3, expected: "third"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := readLine(path, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestReadLine_OutOfRange(t *testing.T) {
	path := writeTestFile(t, "first\nsecond\nthird\n")

	for _, line := range []int{0, 4, 100} {
		_, err := readLine(path, line)

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, line, oor.Requested)
		assert.Equal(t, 3, oor.Total)
		assert.Contains(t, err.Error(), "1..3")
	}
}

func TestReadLine_MissingNewlineAtEOF(t *testing.T) {
	path := writeTestFile(t, "first\nsecond")

	line, err := readLine(path, 2)
	require.NoError(t, err)
	assert.Equal(t, "second", line)
}

func TestReadLine_MissingFile(t *testing.T) {
	_, err := readLine(filepath.Join(t.TempDir(), "absent.txt"), 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}
