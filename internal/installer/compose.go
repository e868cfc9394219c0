package installer

import (
	"fmt"
	"strings"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/messages"
	"github.com/airlift-sh/airlift/internal/pytool"
)

// BuildPlan composes the full invocation plan for the effective
// configuration. pythonVersion is the target interpreter's MAJOR.MINOR,
// used when the constraints location has to be derived.
func BuildPlan(cfg *config.Config, tool *pytool.Tool, pythonVersion string) (*Plan, error) {
	specs, err := installationSpecifiers(cfg)
	if err != nil {
		return nil, err
	}

	repin := Command{
		Name: "repin packaging tools",
		Argv: tool.Command("install", repinSpecifiers(cfg, tool)...),
	}
	check := Command{
		Name: "dependency consistency check",
		Argv: []string{tool.Python, "-m", "pip", "check"},
	}

	if cfg.EagerUpgrade() {
		args := []string{"--upgrade", "--upgrade-strategy", "eager"}
		args = append(args, cfg.AdditionalPipFlagList()...)
		args = append(args, specs...)
		args = append(args, cfg.EagerUpgradeRequirementList()...)
		return &Plan{
			Eager:          true,
			UninstallFirst: true,
			Install:        Command{Name: "eager upgrade install", Argv: tool.Command("install", args...)},
			Repin:          repin,
			Check:          check,
		}, nil
	}

	constraints, err := cfg.ConstraintsLocation(pythonVersion)
	if err != nil {
		return nil, err
	}

	installArgs := append([]string{}, cfg.AdditionalPipFlagList()...)
	installArgs = append(installArgs, specs...)
	installArgs = append(installArgs, "--constraint", constraints)

	fallbackArgs := []string{"--upgrade"}
	fallbackArgs = append(fallbackArgs, cfg.AdditionalPipFlagList()...)
	fallbackArgs = append(fallbackArgs, specs...)
	fallback := Command{Name: "unconstrained fallback install", Argv: tool.Command("install", fallbackArgs...)}

	return &Plan{
		ConstraintsLocation: constraints,
		Install:             Command{Name: "constrained install", Argv: tool.Command("install", installArgs...)},
		Fallback:            &fallback,
		Repin:               repin,
		Check:               check,
	}, nil
}

// installationSpecifiers builds the package specifiers for the configured
// installation method.
func installationSpecifiers(cfg *config.Config) ([]string, error) {
	extras := extrasSuffix(cfg.ExtrasList())

	switch {
	case cfg.Install.Method == config.MethodLocalSources:
		return editableSpecifiers(cfg, extras)
	case cfg.Install.Method == config.MethodRegistry:
		return []string{"apache-airflow" + extras + strings.TrimSpace(cfg.Install.VersionSpecification)}, nil
	case strings.HasPrefix(cfg.Install.Method, config.MethodURLPrefix):
		return []string{"apache-airflow" + extras + " @ " + cfg.URLSpecifier()}, nil
	}
	return nil, fmt.Errorf(messages.ConfigUnsupportedMethodFmt+" "+messages.ConfigSupportedMethods, cfg.Install.Method)
}

// extrasSuffix renders the bracketed extras list, or "" when none remain
// after client filtering.
func extrasSuffix(extras []string) string {
	if len(extras) == 0 {
		return ""
	}
	return "[" + strings.Join(extras, ",") + "]"
}

// repinSpecifiers returns the post-install re-pinning requirement set.
// Unpinned tools are skipped.
func repinSpecifiers(cfg *config.Config, tool *pytool.Tool) []string {
	var specs []string
	add := func(name, version string) {
		if strings.TrimSpace(version) != "" {
			specs = append(specs, name+"=="+version)
		}
	}
	add("pip", cfg.Tools.PipVersion)
	add("setuptools", cfg.Tools.SetuptoolsVersion)
	add("wheel", cfg.Tools.WheelVersion)
	if tool.Name == "uv" {
		add("uv", cfg.Tools.UVVersion)
	}
	return specs
}
