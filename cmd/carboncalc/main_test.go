package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carboncalc/internal/cli"
	"github.com/rshade/carboncalc/internal/report"
	"github.com/rshade/carboncalc/pkg/version"
)

func TestRun(t *testing.T) {
	t.Run("run function exists", func(_ *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "carboncalc", root.Use)

		names := make([]string, 0, len(root.Commands()))
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		for _, want := range []string{"report", "completeness", "lifecycle", "circularity", "cost", "config"} {
			assert.Contains(t, names, want)
		}
	})
}

// main exits with the code carried by an ExitError and 1 for anything else.
func TestExitCodeFromError(t *testing.T) {
	insufficient := fmt.Errorf("%w: completeness score 12.0 is below the minimum of 30.0",
		report.ErrInsufficientData)

	tests := []struct {
		name         string
		err          error
		wantExitCode int
		wantIsExit   bool
	}{
		{
			name:         "insufficient data",
			err:          &cli.ExitError{ExitCode: cli.ExitCodeInsufficientData, Reason: "refused", Err: insufficient},
			wantExitCode: 2,
			wantIsExit:   true,
		},
		{
			name:         "custom exit code",
			err:          &cli.ExitError{ExitCode: 42, Reason: "custom"},
			wantExitCode: 42,
			wantIsExit:   true,
		},
		{
			name:         "wrapped ExitError",
			err:          errors.Join(errors.New("outer"), &cli.ExitError{ExitCode: 3, Reason: "wrapped"}),
			wantExitCode: 3,
			wantIsExit:   true,
		},
		{
			name:         "plain error falls through",
			err:          errors.New("generic error"),
			wantExitCode: cli.ExitCodeError,
			wantIsExit:   false,
		},
		{
			name:         "bare sentinel is not an ExitError",
			err:          insufficient,
			wantExitCode: cli.ExitCodeError,
			wantIsExit:   false,
		},
		{
			name:         "nil error returns 0",
			err:          nil,
			wantExitCode: 0,
			wantIsExit:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitErr *cli.ExitError
			assert.Equal(t, tt.wantIsExit, errors.As(tt.err, &exitErr))
			assert.Equal(t, tt.wantExitCode, cli.ExitCode(tt.err))
		})
	}
}
