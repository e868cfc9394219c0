package config

import (
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/airlift-sh/airlift/internal/messages"
)

const constraintsBaseURL = "https://raw.githubusercontent.com/apache/airflow"

// ConstraintsReference returns the configured git reference for the
// published constraints, deriving one from the version pin when unset:
// "constraints-<version>" for pinned installs, "constraints-main" otherwise.
func (c *Config) ConstraintsReference() string {
	if ref := strings.TrimSpace(c.Constraints.Reference); ref != "" {
		return ref
	}
	if pin := c.PinnedVersion(); pin != "" {
		return "constraints-" + pin
	}
	return "constraints-main"
}

// ConstraintsLocation resolves the effective constraints location: the
// explicit override when set (with ~ expanded), otherwise the URL the
// Airflow project publishes constraints under for the given python
// MAJOR.MINOR version.
func (c *Config) ConstraintsLocation(pythonVersion string) (string, error) {
	if loc := strings.TrimSpace(c.Constraints.Location); loc != "" {
		expanded, err := homedir.Expand(loc)
		if err != nil {
			return "", fmt.Errorf(messages.ConfigExpandHomeFmt, loc, err)
		}
		return expanded, nil
	}
	return fmt.Sprintf("%s/%s/%s-%s.txt", constraintsBaseURL, c.ConstraintsReference(), c.Constraints.Mode, pythonVersion), nil
}
