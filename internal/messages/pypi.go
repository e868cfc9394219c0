package messages

// PyPI release check messages.
const (
	PypiCreateRequestErrFmt   = "create release request: %w"
	PypiFetchReleaseErrFmt    = "fetch latest release: %w"
	PypiFetchStatusFmt        = "fetch latest release: unexpected status %s"
	PypiDecodeReleaseErrFmt   = "decode release metadata: %w"
	PypiReleaseMissingVersion = "release metadata missing version"
	PypiInvalidReleaseFmt     = "invalid release version %q: %w"
	PypiInvalidPinFmt         = "invalid configured version %q: %w"
)
