package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/droidspec/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectCode     int
		expectedConfig *app.Config
	}{
		{
			name: "positional path with defaults",
			args: []string{"android/app.hcl"},
			expectedConfig: &app.Config{
				DescriptorPath: "android/app.hcl",
				Emit:           app.EmitNone,
				LogFormat:      "text",
				LogLevel:       "info",
			},
		},
		{
			name: "flags override positional path",
			args: []string{"-d", "descriptors", "-pubspec", "pubspec.yaml", "-google-services", "gs.json", "-emit", "GRADLE", "-log-level", "DEBUG", "-log-format", "json", "ignored.hcl"},
			expectedConfig: &app.Config{
				DescriptorPath:     "descriptors",
				PubspecPath:        "pubspec.yaml",
				GoogleServicesPath: "gs.json",
				Emit:               app.EmitGradle,
				LogFormat:          "json",
				LogLevel:           "debug",
			},
		},
		{
			name:       "help",
			args:       []string{"-h"},
			expectExit: true,
		},
		{
			name:       "no path prints usage",
			args:       []string{},
			expectExit: true,
		},
		{
			name:       "unknown flag",
			args:       []string{"-nope"},
			expectCode: 2,
		},
		{
			name:       "bad log format",
			args:       []string{"-log-format", "xml", "app.hcl"},
			expectCode: 2,
		},
		{
			name:       "bad log level",
			args:       []string{"-log-level", "trace", "app.hcl"},
			expectCode: 2,
		},
		{
			name:       "bad emit format",
			args:       []string{"-emit", "yaml", "app.hcl"},
			expectCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
				assert.Equal(t, tc.expectCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, shouldExit)
			if tc.expectExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.expectedConfig, cfg)
		})
	}
}
