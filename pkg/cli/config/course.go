package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Course holds the course-specific validation settings. Values can come from
// flags, environment variables, or an optional TOML file; explicit flags win
// over file values.
type Course struct {
	Deadline  string `toml:"deadline"`
	EventPath string `toml:"-"`
	Org       string `toml:"org"`
	BaseLabel string `toml:"base_label"`

	ConfigPath string `toml:"-"`
}

// Flags returns CLI flags for course configuration
func (c *Course) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "deadline",
			Aliases:     []string{"d"},
			Usage:       "Submission deadline (MM/DD/YYYY HH:MM:SS in UTC, or ISO-8601 with offset)",
			Destination: &c.Deadline,
			Sources:     cli.EnvVars("SUBMITCHECK_DEADLINE"),
		},
		&cli.StringFlag{
			Name:        "event",
			Aliases:     []string{"e"},
			Usage:       "Path to the webhook event payload JSON",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("SUBMITCHECK_EVENT_PATH", "GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "course-org",
			Usage:       "Course organization login, ignored in repository references",
			Destination: &c.Org,
			Sources:     cli.EnvVars("SUBMITCHECK_COURSE_ORG"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML file with course settings",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("SUBMITCHECK_CONFIG"),
		},
	}
}

// Load merges settings from the TOML file, if one is configured, into unset
// fields and validates that the required settings are present
func (c *Course) Load() error {
	if c.ConfigPath != "" {
		data, err := os.ReadFile(c.ConfigPath)
		if err != nil {
			return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigPath))
		}

		var file Course
		if err := toml.Unmarshal(data, &file); err != nil {
			return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigPath))
		}

		if c.Deadline == "" {
			c.Deadline = file.Deadline
		}
		if c.Org == "" {
			c.Org = file.Org
		}
		if c.BaseLabel == "" {
			c.BaseLabel = file.BaseLabel
		}
	}

	if c.Deadline == "" {
		return goerr.New("no deadline provided")
	}
	if c.EventPath == "" {
		return goerr.New("no event payload path provided")
	}

	return nil
}
