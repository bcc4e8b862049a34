package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Allow-list validation: this is the trust boundary, so reject
	// anything that would weaken the prefix comparison.
	if len(c.Commands.AllowedPrefixes) == 0 {
		errs = append(errs, "commands.allowed_prefixes must not be empty")
	}
	for _, prefix := range c.Commands.AllowedPrefixes {
		if !strings.HasPrefix(prefix, "/") {
			errs = append(errs, fmt.Sprintf("commands.allowed_prefixes entry %q must be absolute", prefix))
		}
		if !strings.HasSuffix(prefix, "/") {
			errs = append(errs, fmt.Sprintf("commands.allowed_prefixes entry %q must end with a slash", prefix))
		}
		if strings.Contains(prefix, "..") {
			errs = append(errs, fmt.Sprintf("commands.allowed_prefixes entry %q must not contain parent references", prefix))
		}
	}

	if c.Commands.LocalDir == "" {
		errs = append(errs, "commands.local_dir must not be empty")
	}
	if strings.ContainsAny(c.Commands.LocalDir, `/\`) {
		errs = append(errs, "commands.local_dir must be a bare directory name")
	}

	if c.Commands.MaxCommandOutputSize < 1 {
		errs = append(errs, "commands.max_command_output_size must be >= 1")
	}
	if c.Commands.MaxAggregateSize < 1 {
		errs = append(errs, "commands.max_aggregate_size must be >= 1")
	}

	if c.Logging.Dir == "" {
		errs = append(errs, "logging.dir must not be empty")
	}
	if strings.ContainsAny(c.Logging.Dir, `/\`) {
		errs = append(errs, "logging.dir must be a bare directory name")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
