package duallist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{}},
		{name: "blank tokens only", input: " , ,,  ", expected: []string{}},
		{name: "trims", input: "A, B ,  C", expected: []string{"A", "B", "C"}},
		{name: "keeps duplicates", input: "A,A,B", expected: []string{"A", "A", "B"}},
		{name: "inner spaces kept", input: "New York, Los Angeles", expected: []string{"New York", "Los Angeles"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSource(tt.input))
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	labels := []string{"B", "A", "New York"}
	out := Serialize(labels)
	require.Equal(t, "B,A,New York", out)
	require.Equal(t, labels, ParseSource(out))
	require.Equal(t, "", Serialize(nil))
}

func TestParseSide(t *testing.T) {
	for _, raw := range []string{"available", "LEFT", " l "} {
		side, err := ParseSide(raw)
		require.NoError(t, err)
		require.Equal(t, Available, side)
	}
	for _, raw := range []string{"selected", "Right", "r"} {
		side, err := ParseSide(raw)
		require.NoError(t, err)
		require.Equal(t, Selected, side)
	}
	_, err := ParseSide("middle")
	require.Error(t, err)

	require.Equal(t, Selected, Available.Other())
	require.Equal(t, Available, Selected.Other())
	require.Equal(t, "side(9)", Side(9).String())
}
