package doctor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/messages"
	"github.com/airlift-sh/airlift/internal/pytool"
)

var (
	loadLenientFunc = config.LoadLenient
	discoverFunc    = pytool.Discover
)

// CheckConfig validates that the effective configuration loads cleanly.
// When validation fails but lenient loading succeeds (e.g., a typoed
// installation method), CheckConfig returns a FAIL result with the
// validation error AND the leniently-loaded config so downstream checks
// still run.
func CheckConfig(opts config.LoadOptions) ([]Result, *config.Config) {
	var results []Result
	cfg, err := config.Load(opts)
	if err != nil {
		if !errors.Is(err, config.ErrConfigValidation) {
			// Filesystem or TOML syntax failure; lenient loading would
			// not help.
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameConfig,
				Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
				Recommendation: messages.DoctorConfigLoadRecommend,
			})
			return results, nil
		}

		lenientCfg, lenientErr := loadLenientFunc(opts)
		if lenientErr != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameConfig,
				Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, lenientErr),
				Recommendation: messages.DoctorConfigLoadRecommend,
			})
			return results, nil
		}

		// Report the validation error but hand back the partial config so
		// the tooling and python checks can still run.
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		})
		return results, lenientCfg
	}

	results = append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   messages.DoctorConfigLoaded,
	})
	return results, cfg
}

// CheckTooling resolves the packaging tool from PATH.
func CheckTooling(cfg *config.Config) (Result, *pytool.Tool) {
	tool, err := discoverFunc(cfg.Tools.UseUV)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTooling,
			Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, err),
			Recommendation: messages.DoctorToolMissingRecommend,
		}, nil
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTooling,
		Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, tool.Name, tool.Executable()),
	}, tool
}

// CheckPython probes the target interpreter. The returned version names
// the constraints file the install would use.
func CheckPython(ctx context.Context, tool *pytool.Tool, runner pytool.Runner) (Result, string) {
	version, err := tool.PythonVersion(ctx, runner)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePython,
			Message:        fmt.Sprintf(messages.DoctorPythonMissingFmt, err),
			Recommendation: messages.DoctorPythonMissingRecommend,
		}, ""
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePython,
		Message:   fmt.Sprintf(messages.DoctorPythonFoundFmt, version, tool.Python),
	}, version
}

// CheckConstraints resolves the constraints location and verifies that a
// URL is well-formed or a local file exists. Reachability of remote
// constraints is left to the install itself.
func CheckConstraints(cfg *config.Config, pythonVersion string) Result {
	location, err := cfg.ConstraintsLocation(pythonVersion)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConstraints,
			Message:        fmt.Sprintf(messages.DoctorConstraintsUnreachableFmt, err),
			Recommendation: messages.DoctorConstraintsUnreachableRecommend,
		}
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		parsed, err := url.Parse(location)
		if err != nil || parsed.Host == "" {
			return Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameConstraints,
				Message:        fmt.Sprintf(messages.DoctorConstraintsUnreachableFmt, location),
				Recommendation: messages.DoctorConstraintsUnreachableRecommend,
			}
		}
	} else if _, err := os.Stat(location); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConstraints,
			Message:        fmt.Sprintf(messages.DoctorConstraintsUnreachableFmt, location),
			Recommendation: messages.DoctorConstraintsUnreachableRecommend,
		}
	}

	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConstraints,
		Message:   fmt.Sprintf(messages.DoctorConstraintsOKFmt, location),
	}
}

// CheckConsistency runs the dependency-consistency check against the
// installed distributions.
func CheckConsistency(ctx context.Context, tool *pytool.Tool, runner pytool.Runner) Result {
	if err := tool.Check(ctx, runner); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConsistency,
			Message:        fmt.Sprintf(messages.DoctorConsistencyFailedFmt, err),
			Recommendation: messages.DoctorConsistencyRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConsistency,
		Message:   messages.DoctorConsistencyOK,
	}
}
