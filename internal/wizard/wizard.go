package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/fsutil"
	"github.com/airlift-sh/airlift/internal/messages"
)

var (
	loadLenientFunc    = config.LoadLenient
	errWizardCancelled = errors.New("wizard cancelled")
)

// noLookup hides the process environment from the wizard. The wizard edits
// the config file; environment variables stay runtime overlays.
func noLookup(string) (string, bool) { return "", false }

// Run walks the user through the installation choices and rewrites the
// config file at configPath. A missing file starts from the defaults.
func Run(configPath string, ui UI, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	cfg := config.Default()
	if _, err := os.Stat(configPath); err == nil {
		loaded, loadErr := loadLenientFunc(config.LoadOptions{ConfigPath: configPath, LookupEnv: noLookup})
		if loadErr != nil {
			return fmt.Errorf(messages.WizardLoadConfigFailedFmt, loadErr)
		}
		cfg = loaded
	} else if !os.IsNotExist(err) {
		return err
	}

	choices := choicesFromConfig(cfg)
	if err := promptFlow(ui, choices); err != nil {
		if errors.Is(err, errWizardCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}

	if err := confirmAndApply(configPath, ui, cfg, choices, out); err != nil {
		if errors.Is(err, errWizardCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}
	return nil
}

func promptFlow(ui UI, choices *Choices) error {
	label := methodLabelForValue(choices.Method)
	if err := ui.Select(messages.WizardMethodTitle, methodLabels(), &label); err != nil {
		return err
	}

	switch label {
	case messages.WizardMethodLocal:
		choices.Method = config.MethodLocalSources
		choices.VersionSpecification = ""
	case messages.WizardMethodRegistry:
		choices.Method = config.MethodRegistry
		spec := choices.VersionSpecification
		if strings.HasPrefix(spec, config.MethodURLPrefix) {
			spec = ""
		}
		if err := ui.Input(messages.WizardVersionTitle, &spec); err != nil {
			return err
		}
		choices.VersionSpecification = strings.TrimSpace(spec)
	case messages.WizardMethodURL:
		url := strings.TrimSpace(strings.TrimPrefix(choices.VersionSpecification, config.MethodURLPrefix))
		if err := ui.Input(messages.WizardURLTitle, &url); err != nil {
			return err
		}
		full := config.MethodURLPrefix + strings.TrimSpace(url)
		choices.Method = full
		choices.VersionSpecification = full
	}

	if err := ui.MultiSelect(messages.WizardExtrasTitle, extrasOptions(choices.Extras), &choices.Extras); err != nil {
		return err
	}
	if err := ui.Confirm(messages.WizardMySQLTitle, &choices.MySQLClient); err != nil {
		return err
	}
	if err := ui.Confirm(messages.WizardPostgresTitle, &choices.PostgresClient); err != nil {
		return err
	}
	return ui.Confirm(messages.WizardUseUVTitle, &choices.UseUV)
}

func confirmAndApply(configPath string, ui UI, cfg *config.Config, choices *Choices, out io.Writer) error {
	current, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	choices.apply(cfg)
	proposed, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	preview := strings.TrimSpace(udiff.Unified(
		configPath+" (current)",
		configPath+" (proposed)",
		string(current),
		string(proposed),
	))
	if preview == "" {
		_, _ = fmt.Fprintln(out, messages.WizardNoChanges)
		return nil
	}
	if err := ui.Note(fmt.Sprintf(messages.WizardPreviewTitleFmt, configPath), preview); err != nil {
		return err
	}

	confirm := true
	if err := ui.Confirm(messages.WizardConfirmWrite, &confirm); err != nil {
		return err
	}
	if !confirm {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	if err := fsutil.WriteFileAtomic(configPath, proposed, 0o644); err != nil {
		return err
	}
	_, _ = color.New(color.FgGreen).Fprintf(out, messages.WizardWroteConfigFmt, configPath)
	return nil
}
