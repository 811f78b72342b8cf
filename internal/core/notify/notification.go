// Package notify holds the session-lifetime notification list shared by every
// view in the shell.
package notify

import "time"

// Severity represents how a notification is presented.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid reports whether s is one of the supported severities.
func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// Category optionally classifies a notification. When set it takes
// precedence over the severity for icon selection.
type Category string

const (
	CategoryNone        Category = ""
	CategorySystem      Category = "system"
	CategoryCourse      Category = "course"
	CategorySocial      Category = "social"
	CategoryAchievement Category = "achievement"
)

// Action is a labelled callback attached to a notification. It holds a live
// function and is never serialized.
type Action struct {
	Label string
	Run   func()
}

// Notification is a single entry in the store.
type Notification struct {
	ID        string
	Severity  Severity
	Title     string
	Message   string
	Category  Category
	CreatedAt time.Time
	Read      bool
	Action    *Action
}

// HasAction reports whether the notification carries a runnable action.
func (n Notification) HasAction() bool {
	return n.Action != nil && n.Action.Run != nil
}

// Input is the caller-supplied part of a notification. The store fills in
// the identifier, creation time and read flag.
type Input struct {
	Severity Severity
	Title    string
	Message  string
	Category Category
	Action   *Action
}
