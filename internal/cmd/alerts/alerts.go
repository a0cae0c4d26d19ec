// Package alerts provides a structured system for status notifications.
package alerts

import (
	"fmt"

	"github.com/agentstation/bookshelf/pkg/library"
)

// Alert is a one-line status message printed after a command runs.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{
		Level:   level,
		Message: message,
	}
}

// NewError creates a new error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a new warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates a new info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a new success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds additional context details to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns a string representation of the alert.
func (a *Alert) String() string {
	message := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// Writer handles alert output to different formats and destinations.
type Writer interface {
	WriteAlert(alert *Alert) error
}

// BookAdded reports a book stored under id.
func BookAdded(id int) *Alert {
	return NewSuccess(fmt.Sprintf("Book added with ID %d", id))
}

// BookRemoved reports a removed book.
func BookRemoved(id int) *Alert {
	return NewSuccess(fmt.Sprintf("Book %d removed", id))
}

// StatusChanged reports the new status of a book.
func StatusChanged(id int, status library.Status) *Alert {
	return NewSuccess(fmt.Sprintf("Book %d is now %s", id, status))
}

// StatusUnchanged reports a status change that found the book already
// in that status.
func StatusUnchanged(id int, status library.Status) *Alert {
	return NewInfo(fmt.Sprintf("Book %d is already %s", id, status))
}

// Failed reports the error that ended a command.
func Failed(err error) *Alert {
	return NewError("Error").WithError(err)
}

// EmptyCatalog reports a catalog with no books.
func EmptyCatalog() *Alert {
	return NewInfo("The library is empty")
}

// NoMatches reports a search that found nothing.
func NoMatches(query string) *Alert {
	return NewInfo(fmt.Sprintf("No books match %q", query))
}
