// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireParser(t *testing.T) *kong.Kong {
	var cmd Convert
	parser, err := NewParser(&cmd)
	require.NoError(t, err)
	return parser
}

func TestPositionalArgs(t *testing.T) {
	parser := requireParser(t)

	cases := []struct {
		args     []string
		expected []string
	}{
		{nil, nil},
		{[]string{"24 mb"}, []string{"--", "24 mb"}},
		{[]string{"-1 kb"}, []string{"--", "-1 kb"}},
		{[]string{"-1 kb", "--format=json"}, []string{"--format=json", "--", "-1 kb"}},
		{[]string{"--format", "summary", "-0 b"}, []string{"--format", "summary", "--", "-0 b"}},
		{[]string{"--log-level", "debug", "--profiling=cpu", "5 b"}, []string{"--log-level", "debug", "--profiling=cpu", "--", "5 b"}},
		{[]string{"--help"}, []string{"--help"}},
		{[]string{"-h", "-2 gb"}, []string{"-h", "--", "-2 gb"}},
		{[]string{"--", "--format"}, []string{"--", "--format"}},
		{[]string{"-1 kb", "extra"}, []string{"--", "-1 kb", "extra"}},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, PositionalArgs(parser, c.args), "%v", c.args)
	}
}

func TestPositionalArgsLeadingDashReachesCommand(t *testing.T) {
	for _, input := range []string{"-1 kb", "-0 b", "-.5 gb"} {
		var cmd Convert
		parser, err := NewParser(&cmd)
		require.NoError(t, err)

		_, err = parser.Parse(PositionalArgs(parser, []string{input}))
		require.NoError(t, err, input)
		assert.Equal(t, input, cmd.Size)
	}
}
