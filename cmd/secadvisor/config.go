package main

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultProfile = "default"

// config is one profile of the config file.
type config struct {
	APIToken  string `yaml:"api_token"`
	AccountID string `yaml:"account_id"`
	Region    string `yaml:"region"`
	URL       string `yaml:"url"`
}

// configFile is the on-disk layout:
//
//	profiles:
//	  default:
//	    api_token: ...
//	    account_id: ...
//	    region: us-south
type configFile struct {
	Profiles map[string]config `yaml:"profiles"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "secadvisor", "config.yaml")
}

// loadConfig reads profile from path and applies environment overrides. A
// missing file is only an error when path was given explicitly.
func loadConfig(path, profile string, getenv func(string) string) (*config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	profile = cmp.Or(profile, defaultProfile)

	var cfg config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var file configFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			p, ok := file.Profiles[profile]
			if !ok && (explicit || profile != defaultProfile) {
				return nil, fmt.Errorf("profile %q not found in %s", profile, path)
			}
			cfg = p
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.APIToken = cmp.Or(getenv("SECADVISOR_API_TOKEN"), cfg.APIToken)
	cfg.AccountID = cmp.Or(getenv("SECADVISOR_ACCOUNT_ID"), cfg.AccountID)
	cfg.Region = cmp.Or(getenv("SECADVISOR_REGION"), cfg.Region)
	cfg.URL = cmp.Or(getenv("SECADVISOR_URL"), cfg.URL)
	return &cfg, nil
}
