// Package googleservices checks a Firebase google-services.json file
// against an application id, the same check the Google services Gradle
// plugin performs before it generates resources.
package googleservices

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// PluginID is the Gradle plugin that consumes google-services.json.
const PluginID = "com.google.gms.google-services"

// ErrPackageNotRegistered is returned when no client entry matches the
// application id.
var ErrPackageNotRegistered = errors.New("no client registered for package")

// Config is the subset of google-services.json this package reads.
type Config struct {
	ProjectInfo struct {
		ProjectID     string `json:"project_id"`
		ProjectNumber string `json:"project_number"`
	} `json:"project_info"`
	Clients []Client `json:"client"`
}

// Client is one registered Android app.
type Client struct {
	ClientInfo struct {
		MobileSDKAppID    string `json:"mobilesdk_app_id"`
		AndroidClientInfo struct {
			PackageName string `json:"package_name"`
		} `json:"android_client_info"`
	} `json:"client_info"`
}

// PackageName returns the client's Android package name.
func (c Client) PackageName() string {
	return c.ClientInfo.AndroidClientInfo.PackageName
}

// Load reads and decodes the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes google-services.json content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode google-services.json: %w", err)
	}
	if cfg.ProjectInfo.ProjectID == "" {
		return nil, errors.New("google-services.json has no project_info.project_id")
	}
	return &cfg, nil
}

// Check returns the client registered for applicationID.
func (c *Config) Check(applicationID string) (*Client, error) {
	for i := range c.Clients {
		if c.Clients[i].PackageName() == applicationID {
			return &c.Clients[i], nil
		}
	}
	return nil, fmt.Errorf("%w %q in project %q", ErrPackageNotRegistered, applicationID, c.ProjectInfo.ProjectID)
}
