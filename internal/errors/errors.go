package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/dailyworkout/internal/logger"
)

var (
	// ErrInvalidDate is returned when user input is not a valid YYYY-MM-DD date
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD or 'today'")
	// ErrNoLocation is returned when a forecast is requested before a location is saved
	ErrNoLocation = errors.New("no weather location configured")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
