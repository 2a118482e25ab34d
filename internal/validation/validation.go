package validation

import (
	"fmt"
	"sort"

	"github.com/julianstephens/dailyworkout/internal/constants"
	"github.com/julianstephens/dailyworkout/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyCatalog       ConflictType = "empty_catalog"
	ConflictMissingKey         ConflictType = "missing_key"
	ConflictDuplicateKey       ConflictType = "duplicate_key"
	ConflictInvalidType        ConflictType = "invalid_type"
	ConflictInvalidIntensity   ConflictType = "invalid_intensity"
	ConflictNoLowIntensity     ConflictType = "no_low_intensity"
	ConflictSeasonalOnlyLow    ConflictType = "seasonal_only_low_intensity"
	ConflictMissingDisplayName ConflictType = "missing_display_name"
)

// Conflict represents a detected problem in the activity catalog
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// ValidateCatalog checks a list of activities for everything selection relies
// on. Unlike catalog.New it reports every problem instead of the first.
func (v *Validator) ValidateCatalog(activities []models.Activity) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if len(activities) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyCatalog,
			Description: "Catalog has no activities",
		})
		return result
	}

	// Check for duplicate keys
	keyCount := make(map[string]int)
	for i, a := range activities {
		if a.Key == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingKey,
				Description: fmt.Sprintf("Activity #%d has no key", i+1),
				Items:       []string{a.Name},
			})
			continue
		}
		keyCount[a.Key]++
	}

	duplicates := make([]string, 0)
	for key, n := range keyCount {
		if n > 1 {
			duplicates = append(duplicates, key)
		}
	}
	sort.Strings(duplicates)
	for _, key := range duplicates {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateKey,
			Description: fmt.Sprintf("Duplicate activity key: \"%s\" (%d entries)", key, keyCount[key]),
			Items:       []string{key},
		})
	}

	// Check types and intensities
	hasLow, hasYearRoundLow := false, false
	for _, a := range activities {
		switch a.Type {
		case constants.ActivityCardio, constants.ActivityStrength, constants.ActivityRecovery:
		default:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidType,
				Description: fmt.Sprintf("Activity \"%s\" has invalid type: %q", a.Key, a.Type),
				Items:       []string{a.Key},
			})
		}

		switch a.Intensity {
		case constants.IntensityLow:
			hasLow = true
			if !a.Seasonal {
				hasYearRoundLow = true
			}
		case constants.IntensityHigh:
		default:
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidIntensity,
				Description: fmt.Sprintf("Activity \"%s\" has invalid intensity: %q", a.Key, a.Intensity),
				Items:       []string{a.Key},
			})
		}

		if a.Name == "" && a.Key != "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingDisplayName,
				Description: fmt.Sprintf("Activity \"%s\" has no display name", a.Key),
				Items:       []string{a.Key},
			})
		}
	}

	if !hasLow {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNoLowIntensity,
			Description: "Catalog needs at least one low-intensity activity for recovery days",
		})
	} else if !hasYearRoundLow {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictSeasonalOnlyLow,
			Description: "Every low-intensity activity is seasonal; recovery days have no candidate outside summer",
		})
	}

	return result
}
