package remote

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/rileyhilliard/rmac/internal/errors"
	sshmock "github.com/rileyhilliard/rmac/pkg/sshutil/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParsesStdout(t *testing.T) {
	mock := newProbedMock().
		Respond(`'nproc'`, sshmock.Response{Stdout: "8\n"})
	s := openTestSession(t, mock)

	got, err := Run(context.Background(), s, "nproc", nil, func(stdout string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(stdout))
	})
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestRunWrapsParserRejection(t *testing.T) {
	mock := newProbedMock().
		Respond(`'nproc'`, sshmock.Response{Stdout: "not a number\n"})
	s := openTestSession(t, mock)

	_, err := Run(context.Background(), s, "nproc", nil, func(stdout string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(stdout))
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrParse))

	// The raw result rides along so callers can see what the parser saw.
	result, ok := errors.ResultOf(err)
	require.True(t, ok)
	assert.Equal(t, "not a number\n", result.Stdout)
}

func TestRunFailedCommandNeverReachesParser(t *testing.T) {
	mock := newProbedMock().
		Respond(`'false'`, sshmock.Response{ExitCode: 1, Stderr: "boom"})
	s := openTestSession(t, mock)

	parserCalled := false
	_, err := Run(context.Background(), s, "false", nil, func(stdout string) (int, error) {
		parserCalled = true
		return 0, fmt.Errorf("should not run")
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCommand))
	assert.False(t, parserCalled)
}
