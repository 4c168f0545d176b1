package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjdelisle/pkt-checksig/pkg/checksig"
)

const (
	testPrivateKey = "aFMZowhWGibSVLz88KHKjZ4hwafHeVdCS5US9WhFSY9yUxAQNRbC"
	testAddress    = "pGKemQBhkQY4yce9tPnAiq4c27m1k38s2i"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"signmsg"}, args...))
	return stdout.String(), err
}

func TestSignmsg_Args(t *testing.T) {
	out, err := run(t, "", testPrivateKey, "hello world")
	require.NoError(t, err)

	signature := strings.TrimSuffix(out, "\n")
	assert.NoError(t, checksig.NewClient().VerifyMessage(testAddress, signature, "hello world"))
}

func TestSignmsg_Stdin(t *testing.T) {
	fromArgs, err := run(t, "", testPrivateKey, "hello world")
	require.NoError(t, err)

	fromStdin, err := run(t, "  "+testPrivateKey+" hello world \n", "-")
	require.NoError(t, err)

	assert.Equal(t, fromArgs, fromStdin)
}

func TestSignmsg_Failures(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  error
	}{
		{"no arguments", "", nil, checksig.ErrArgument},
		{"missing message", "", []string{testPrivateKey}, checksig.ErrArgument},
		{"too many arguments", "", []string{testPrivateKey, "hello", "world"}, checksig.ErrArgument},
		{"stdin without message", testPrivateKey + "\n", []string{"-"}, checksig.ErrArgument},
		{"bad key checksum", "", []string{testPrivateKey[:51] + "D", "hello"}, checksig.ErrDecode},
		{"address instead of key", "", []string{testAddress, "hello"}, checksig.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, out)
		})
	}
}
