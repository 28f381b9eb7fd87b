package config

import (
	"github.com/awaller/nab/internal/action"
)

// Config represents the .nab.yaml configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Dir is the download directory; Root, when set, is the ancestor
	// directory whose structure rooted moves preserve.
	Dir  string `yaml:"dir,omitempty"`
	Root string `yaml:"root,omitempty"`

	Algorithm string `yaml:"algorithm,omitempty"` // sha256, sha1, md5, blake3
	MaxSize   int64  `yaml:"max_size,omitempty"`  // bytes, 0 = no limit
	UserAgent string `yaml:"user_agent,omitempty"`

	// Action is the post-download disposition applied to processed files.
	Action action.Action `yaml:"action,omitempty"`
}
