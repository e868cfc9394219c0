package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/doctor"
	"github.com/airlift-sh/airlift/internal/messages"
)

var getwd = os.Getwd

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cwd, err := getwd()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, cwd)

			allResults, cfg := doctor.CheckConfig(flags.loadOptions())
			if cfg != nil {
				toolResult, tool := doctor.CheckTooling(cfg)
				allResults = append(allResults, toolResult)
				if tool != nil {
					runner := newRunnerFunc(cmd)
					pythonResult, pythonVersion := doctor.CheckPython(cmd.Context(), tool, runner)
					allResults = append(allResults, pythonResult)
					if pythonVersion != "" {
						allResults = append(allResults, doctor.CheckConstraints(cfg, pythonVersion))
					}
					allResults = append(allResults, doctor.CheckConsistency(cmd.Context(), tool, runner))
				}
				allResults = append(allResults, checkRelease(cmd, cfg))
			}

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// checkRelease compares the configured version pin against the latest
// release on PyPI. Network failures degrade to a warning; doctor stays
// usable offline.
func checkRelease(cmd *cobra.Command, cfg *config.Config) doctor.Result {
	result := doctor.Result{CheckName: messages.DoctorCheckNameRelease}

	pin := cfg.PinnedVersion()
	if pin == "" {
		result.Status = doctor.StatusWarn
		result.Message = messages.DoctorReleaseUnpinned
		return result
	}

	release, err := checkReleaseFunc(cmd.Context(), pin)
	switch {
	case err != nil:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorReleaseCheckFailedFmt, err)
	case release.Outdated:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorReleaseOutdatedFmt, release.Latest, release.Pinned)
	default:
		result.Status = doctor.StatusOK
		result.Message = fmt.Sprintf(messages.DoctorReleaseCurrentFmt, release.Pinned)
	}
	return result
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		for _, line := range strings.Split(r.Recommendation, "\n") {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
		}
	}
}
