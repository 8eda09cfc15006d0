package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Command
	}{
		{"Export", ":export", Command{Kind: KindExport}},
		{"Clear", ":clear", Command{Kind: KindClear}},
		{"Query", "student A", Command{Kind: KindQuery, Query: "student A"}},
		{"QueryEmpty", "", Command{Kind: KindQuery, Query: ""}},
		{"QueryColonInside", "a:b", Command{Kind: KindQuery, Query: "a:b"}},
		{"Marks", "anything=1 2 3", Command{Kind: KindAssignMarks, Marks: []uint32{1, 2, 3}}},
		{"MarksPadded", "x= 10  0 7 ", Command{Kind: KindAssignMarks, Marks: []uint32{10, 0, 7}}},
		{"MarksEmptyRHS", "x=", Command{Kind: KindAssignMarks, Marks: []uint32{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Run("UnknownEscape", func(t *testing.T) {
		_, err := Parse(":quit")
		var ue *UnknownCommandError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, ":quit", ue.Input)
	})

	t.Run("DoubleEquals", func(t *testing.T) {
		_, err := Parse("a=1=2")
		var me *MarksParseError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, "a=1=2", me.Input)
	})

	t.Run("NonInteger", func(t *testing.T) {
		_, err := Parse("a=1 two 3")
		var me *MarksParseError
		require.ErrorAs(t, err, &me)
		assert.NotNil(t, errors.Unwrap(me))
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := Parse("a=-1")
		var me *MarksParseError
		require.ErrorAs(t, err, &me)
	})
}
