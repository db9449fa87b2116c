package errors

import (
	"fmt"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if classified, ok := AsClassified(err); ok {
		return a.exitCodeFromClassified(classified)
	}

	// Fallback for unclassified errors
	return 1
}

// exitCodeFromClassified maps ClassifiedError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromClassified(err *ClassifiedError) int {
	switch err.Category() {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryModel:
		return 9 // Doc model error
	case CategoryGeneration, CategoryFileSystem:
		return 11 // Generation error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if classified, ok := AsClassified(err); ok {
		return a.formatClassified(classified)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatClassified formats a ClassifiedError for display.
func (a *CLIErrorAdapter) formatClassified(err *ClassifiedError) string {
	msg := fmt.Sprintf("Error: %s", err.Message())
	if a.verbose {
		if cause := err.Cause(); cause != nil {
			msg += fmt.Sprintf("\nCaused by: %v", cause)
		}
		if ctx := err.Context(); len(ctx) > 0 {
			msg += fmt.Sprintf("\nContext: %v", map[string]any(ctx))
		}
		msg += fmt.Sprintf("\nCategory: %s, Severity: %s", err.Category(), err.Severity())
	}
	return msg
}

// LogError logs an error at the level implied by its severity.
func (a *CLIErrorAdapter) LogError(err error) {
	if err == nil {
		return
	}
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Command failed", "error", err)
		return
	}
	attrs := []any{"category", string(classified.Category()), "error", err}
	switch classified.Severity() {
	case SeverityWarning:
		a.logger.Warn(classified.Message(), attrs...)
	case SeverityInfo:
		a.logger.Info(classified.Message(), attrs...)
	default:
		a.logger.Error(classified.Message(), attrs...)
	}
}
