package wizard

import (
	"sort"
	"strings"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/messages"
)

// Choices holds the wizard's working state between prompts.
type Choices struct {
	Method               string
	VersionSpecification string
	Extras               []string
	MySQLClient          bool
	PostgresClient       bool
	UseUV                bool
}

func choicesFromConfig(cfg *config.Config) *Choices {
	var extras []string
	for _, extra := range strings.Split(cfg.Install.Extras, ",") {
		if extra = strings.TrimSpace(extra); extra != "" {
			extras = append(extras, extra)
		}
	}
	return &Choices{
		Method:               cfg.Install.Method,
		VersionSpecification: cfg.Install.VersionSpecification,
		Extras:               extras,
		MySQLClient:          cfg.Install.MySQLClient,
		PostgresClient:       cfg.Install.PostgresClient,
		UseUV:                cfg.Tools.UseUV,
	}
}

func (c *Choices) apply(cfg *config.Config) {
	cfg.Install.Method = c.Method
	cfg.Install.VersionSpecification = c.VersionSpecification
	cfg.Install.Extras = strings.Join(c.Extras, ",")
	cfg.Install.MySQLClient = c.MySQLClient
	cfg.Install.PostgresClient = c.PostgresClient
	cfg.Tools.UseUV = c.UseUV
}

// extrasOptions merges the known extras with any already-configured ones so
// a hand-edited config never loses entries in the multiselect.
func extrasOptions(current []string) []string {
	options := config.KnownExtras()
	known := make(map[string]bool, len(options))
	for _, extra := range options {
		known[extra] = true
	}
	for _, extra := range current {
		if !known[extra] {
			options = append(options, extra)
		}
	}
	sort.Strings(options)
	return options
}

func methodLabels() []string {
	return []string{
		messages.WizardMethodLocal,
		messages.WizardMethodRegistry,
		messages.WizardMethodURL,
	}
}

func methodLabelForValue(method string) string {
	switch {
	case method == config.MethodLocalSources:
		return messages.WizardMethodLocal
	case strings.HasPrefix(method, config.MethodURLPrefix):
		return messages.WizardMethodURL
	default:
		return messages.WizardMethodRegistry
	}
}
