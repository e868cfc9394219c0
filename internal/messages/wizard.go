package messages

// Wizard messages for the interactive init flow.
const (
	WizardRequiresTerminal = "wizard requires an interactive terminal"

	WizardMethodTitle        = "How should Airflow be installed?"
	WizardMethodLocal        = "Editable install from local sources"
	WizardMethodRegistry     = "Released package from PyPI"
	WizardMethodURL          = "Package archive from a URL"
	WizardVersionTitle       = "Version specification (for example ==3.0.2; leave empty for latest)"
	WizardURLTitle           = "Archive URL"
	WizardExtrasTitle        = "Select the extras to install"
	WizardMySQLTitle         = "Install the MySQL client extra?"
	WizardPostgresTitle      = "Install the Postgres client extra?"
	WizardUseUVTitle         = "Use uv instead of pip?"
	WizardPreviewTitleFmt    = "Review %s"
	WizardConfirmWrite       = "Write this configuration?"
	WizardExitWithoutChanges = "Exiting without changes."

	WizardLoadConfigFailedFmt = "load configuration: %w"
	WizardNoChanges           = "No rewrite needed. The current configuration already matches the selected choices."
	WizardWroteConfigFmt      = "Wrote %s.\n"
)
