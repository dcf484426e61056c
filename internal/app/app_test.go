package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/droidspec/internal/descriptor"
	"github.com/vk/droidspec/internal/googleservices"
)

const testDescriptor = `
plugin "com.android.application" {}
plugin "com.google.gms.google-services" {}

android {
  namespace   = "com.example.ai_assistant_app"
  compile_sdk = 35

  default_config {
    application_id = "com.example.ai_assistant_app"
    min_sdk        = MIN_SDK
    target_sdk     = 34
    version_code   = flutter.version_code
    version_name   = flutter.version_name
  }

  build_type "release" {
    signing_config = "debug"
  }
}

dependencies {
  dependency "implementation" "com.google.firebase:firebase-bom:34.5.0" {
    platform = true
  }
  dependency "implementation" "com.google.firebase:firebase-auth" {}
}
`

const testGoogleServices = `{
  "project_info": { "project_id": "ai-assistant-app" },
  "client": [
    {
      "client_info": {
        "mobilesdk_app_id": "1:1:android:1",
        "android_client_info": { "package_name": "com.example.ai_assistant_app" }
      }
    }
  ]
}`

type testEnv struct {
	dir    string
	out    *bytes.Buffer
	logs   *bytes.Buffer
	config Config
}

func newTestEnv(t *testing.T, minSDK string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	src := strings.Replace(testDescriptor, "MIN_SDK", minSDK, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.hcl"), []byte(src), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pubspec.yaml"), []byte("name: ai_assistant_app\nversion: 2.3.1+17\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google-services.json"), []byte(testGoogleServices), 0600))

	return &testEnv{
		dir:  dir,
		out:  &bytes.Buffer{},
		logs: &bytes.Buffer{},
		config: Config{
			DescriptorPath: filepath.Join(dir, "app.hcl"),
			PubspecPath:    filepath.Join(dir, "pubspec.yaml"),
			Emit:           EmitNone,
			LogLevel:       "debug",
			LogFormat:      "text",
		},
	}
}

func (e *testEnv) run(t *testing.T) error {
	t.Helper()
	cfg, err := NewConfig(e.config)
	require.NoError(t, err)
	return NewApp(e.out, e.logs, cfg).Run(context.Background())
}

func TestRun_ValidDescriptor(t *testing.T) {
	env := newTestEnv(t, "23")

	require.NoError(t, env.run(t))
	assert.Empty(t, env.out.String())
	assert.Contains(t, env.logs.String(), "Descriptor is valid.")
	assert.Contains(t, env.logs.String(), "Release build type is signed with the debug identity")
}

func TestRun_OrderingViolation(t *testing.T) {
	env := newTestEnv(t, "36")

	err := env.run(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, descriptor.ErrSDKOrdering)
	var verr *descriptor.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestRun_EmitGradle(t *testing.T) {
	env := newTestEnv(t, "23")
	env.config.Emit = EmitGradle

	require.NoError(t, env.run(t))
	out := env.out.String()
	assert.Contains(t, out, "versionCode = 17")
	assert.Contains(t, out, `versionName = "2.3.1"`)
	assert.Contains(t, out, `implementation(platform("com.google.firebase:firebase-bom:34.5.0"))`)
	assert.NotContains(t, env.out.String(), "level=", "logs must not leak into emitted output")
}

func TestRun_EmitHCL(t *testing.T) {
	env := newTestEnv(t, "23")
	env.config.Emit = EmitHCL

	require.NoError(t, env.run(t))
	assert.Contains(t, env.out.String(), "version_code   = 17")
	assert.NotContains(t, env.out.String(), "flutter.version_code")
}

func TestRun_EmitJSON(t *testing.T) {
	env := newTestEnv(t, "23")
	env.config.Emit = EmitJSON

	require.NoError(t, env.run(t))

	var got struct {
		Descriptor struct {
			Identity descriptor.Identity `json:"identity"`
		} `json:"descriptor"`
		Resolved []struct {
			Version string `json:"version"`
			Source  string `json:"source"`
		} `json:"resolved_dependencies"`
	}
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
	assert.Equal(t, "com.example.ai_assistant_app", got.Descriptor.Identity.ApplicationID)
	assert.Equal(t, 17, got.Descriptor.Identity.VersionCode)
	require.Len(t, got.Resolved, 1)
	assert.Equal(t, "34.5.0", got.Resolved[0].Version)
	assert.Equal(t, descriptor.SourceBOM, got.Resolved[0].Source)
	assert.NotContains(t, env.out.String(), `"android"`, "keystore passwords are never emitted")
}

func TestRun_GoogleServices(t *testing.T) {
	env := newTestEnv(t, "23")
	env.config.GoogleServicesPath = filepath.Join(env.dir, "google-services.json")

	require.NoError(t, env.run(t))
	assert.Contains(t, env.logs.String(), "Firebase client found.")

	other := strings.Replace(testGoogleServices, "com.example.ai_assistant_app", "com.example.other", 1)
	require.NoError(t, os.WriteFile(env.config.GoogleServicesPath, []byte(other), 0600))

	err := env.run(t)
	require.ErrorIs(t, err, googleservices.ErrPackageNotRegistered)
}

func TestRun_LoadErrors(t *testing.T) {
	env := newTestEnv(t, "23")
	env.config.DescriptorPath = filepath.Join(env.dir, "missing")

	err := env.run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load descriptor")

	env = newTestEnv(t, "23")
	require.NoError(t, os.WriteFile(env.config.PubspecPath, []byte("version: 1.0.0+x\n"), 0600))
	err = env.run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pubspec version")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{DescriptorPath: "app.hcl", Emit: "yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid emit format")

	cfg, err := NewConfig(Config{DescriptorPath: "app.hcl"})
	require.NoError(t, err)
	assert.Equal(t, EmitNone, cfg.Emit)
}
