package config

// Layout constants.
const (
	// MinContentWidth is the narrowest usable page width.
	MinContentWidth = 40

	// MaxContentWidth caps page width on wide terminals.
	MaxContentWidth = 96

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ProgressBarWidth is the default width of progress meters.
	ProgressBarWidth = 30
)

// Display limits.
const (
	// MaxVisibleRows limits list rows shown per card before scrolling.
	MaxVisibleRows = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxNameLength is the maximum profile name length.
	MaxNameLength = 60

	// MaxBioLength is the maximum profile bio length.
	MaxBioLength = 280

	// MaxAmountDigits is the maximum digits accepted for a swap amount.
	MaxAmountDigits = 9
)
