package config

import (
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
	"github.com/Gaurav-Gosain/ctxkey/internal/classify"
	"github.com/Gaurav-Gosain/ctxkey/internal/inject"
	"github.com/Gaurav-Gosain/ctxkey/internal/wm"
)

// ValidationIssue describes one problem found in the config.
type ValidationIssue struct {
	Field   string // Config section, e.g. "dispatch" or "rules"
	Key     string // Offending key or value
	Message string
}

// ValidationResult collects errors (fatal) and warnings (non-fatal).
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether validation found fatal problems.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether validation found non-fatal problems.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) addError(field, key, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Key: key, Message: message})
}

func (r *ValidationResult) addWarning(field, key, message string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Field: field, Key: key, Message: message})
}

// ValidateConfig checks a loaded configuration. Unknown backends,
// injectors, actions and unparseable chords are errors; empty rule
// patterns are warnings because they can never match.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	validateName(result, "dispatch", "backend", cfg.Dispatch.Backend, wm.Backends())
	validateName(result, "dispatch", "injector", cfg.Dispatch.Injector, inject.Injectors())

	for i, r := range cfg.Rules {
		key := fmt.Sprintf("rules[%d]", i)
		if r.Pattern == "" {
			result.addWarning("rules", key, "empty pattern can never match")
		}
		if !classify.Action(r.Action).Valid() {
			result.addError("rules", key,
				fmt.Sprintf("unknown action %q (valid: %s, %s)", r.Action, classify.ActionTerminal, classify.ActionDefault))
		}
	}

	validateChords(result, "chords.terminal", cfg.Chords.Terminal)
	validateChords(result, "chords.default", cfg.Chords.Default)

	return result
}

func validateName(result *ValidationResult, field, key, value string, valid []string) {
	if value == "" || value == "auto" {
		return
	}
	for _, v := range valid {
		if value == v {
			return
		}
	}
	result.addError(field, key,
		fmt.Sprintf("unknown value %q (valid: auto, %s)", value, strings.Join(valid, ", ")))
}

func validateChords(result *ValidationResult, field string, chords OperationChords) {
	for key, spec := range map[string]string{OpCopy: chords.Copy, OpPaste: chords.Paste} {
		if spec == "" {
			continue
		}
		if _, err := chord.Parse(spec); err != nil {
			result.addError(field, key, err.Error())
		}
	}
}
