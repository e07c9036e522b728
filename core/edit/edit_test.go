package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	content := "line one\nline two\nline three\n"

	tests := []struct {
		name     string
		edits    []Edit
		expected string
	}{
		{
			name:     "no edits",
			edits:    nil,
			expected: content,
		},
		{
			name:     "delete middle line",
			edits:    []Edit{Delete(9, 18)},
			expected: "line one\nline three\n",
		},
		{
			name:     "insert at start",
			edits:    []Edit{Insert(0, "header\n")},
			expected: "header\nline one\nline two\nline three\n",
		},
		{
			name: "delete two spans and insert",
			edits: []Edit{
				Delete(0, 9),
				Delete(18, 29),
				Insert(0, "only\n"),
			},
			expected: "only\nline two\n",
		},
		{
			name:     "replacement",
			edits:    []Edit{{Start: 5, End: 8, Text: "1"}},
			expected: "line 1\nline two\nline three\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(content, tt.edits)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyInsertionsKeepOrder(t *testing.T) {
	got, err := Apply("body", []Edit{
		Insert(0, "first\n"),
		Insert(0, "second\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nbody", got)
}

func TestApplyInsertionBeforeDeletionAtSameOffset(t *testing.T) {
	got, err := Apply("old\nkept\n", []Edit{
		Delete(0, 4),
		Insert(0, "new\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new\nkept\n", got)
}

func TestApplyRejectsOverlap(t *testing.T) {
	_, err := Apply("abcdef", []Edit{
		Delete(0, 4),
		Delete(2, 6),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlapping")
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	_, err := Apply("abc", []Edit{Delete(1, 10)})
	require.Error(t, err)

	_, err = Apply("abc", []Edit{Delete(-1, 2)})
	require.Error(t, err)
}
