package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CreatedLayout is the local-time layout of Task.Created.
const CreatedLayout = "2006-01-02 15:04:05"

var (
	// ErrInvalidStatus is returned when a status name or code is not recognized.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidPriority is returned when a priority name or code is not recognized.
	ErrInvalidPriority = errors.New("invalid priority")
)

// Status is the completion state of a task. The zero value is not a valid status.
type Status int

const (
	StatusCompleted Status = iota + 1
	StatusNotCompleted
)

var statusNames = map[Status]string{
	StatusCompleted:    "Completed",
	StatusNotCompleted: "NotCompleted",
}

var statusLabels = map[Status]string{
	StatusCompleted:    "completed",
	StatusNotCompleted: "not completed",
}

// Priority is the importance level of a task. The zero value is not a valid priority.
type Priority int

const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

var priorityNames = map[Priority]string{
	PriorityHigh:   "High",
	PriorityMedium: "Medium",
	PriorityLow:    "Low",
}

// Task is a single todo record.
type Task struct {
	ID          uint32   `json:"id" yaml:"id" toml:"id" validate:"min=1"`
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Status      Status   `json:"status" yaml:"status" toml:"status" validate:"variant"`
	Priority    Priority `json:"priority" yaml:"priority" toml:"priority" validate:"variant"`
	Created     string   `json:"created" yaml:"created" toml:"created" validate:"required,datetime=2006-01-02 15:04:05"`
}

// NewTask builds a task stamped with the creation time formatted in local time.
func NewTask(id uint32, title, description string, status Status, priority Priority, now time.Time) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		Created:     now.Local().Format(CreatedLayout),
	}
}

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Label returns a human readable form, e.g. "Not Completed".
func (s Status) Label() string {
	return titleCase(statusLabels[s])
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusNotCompleted
	}
	return StatusCompleted
}

func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStatus parses a variant name such as "NotCompleted".
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

// ParseStatusCode maps the menu code ("0" completed, "1" not completed) to a status.
func ParseStatusCode(code string) (Status, error) {
	switch strings.TrimSpace(code) {
	case "0":
		return StatusCompleted, nil
	case "1":
		return StatusNotCompleted, nil
	}
	return 0, fmt.Errorf("%w: code %q", ErrInvalidStatus, strings.TrimSpace(code))
}

// Valid reports whether p is one of the defined priorities.
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Label returns a human readable form.
func (p Priority) Label() string {
	return titleCase(strings.ToLower(priorityNames[p]))
}

func (p Priority) MarshalText() ([]byte, error) {
	name, ok := priorityNames[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, int(p))
	}
	return []byte(name), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	v, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePriority parses a variant name such as "Medium".
func ParsePriority(name string) (Priority, error) {
	for p, n := range priorityNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, name)
}

// ParsePriorityCode maps the menu code ("1" high, "2" medium, "3" low) to a priority.
func ParsePriorityCode(code string) (Priority, error) {
	switch strings.TrimSpace(code) {
	case "1":
		return PriorityHigh, nil
	case "2":
		return PriorityMedium, nil
	case "3":
		return PriorityLow, nil
	}
	return 0, fmt.Errorf("%w: code %q", ErrInvalidPriority, strings.TrimSpace(code))
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("variant", validateVariant)
}

// validateVariant accepts closed enum fields that report themselves valid.
func validateVariant(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(interface{ Valid() bool })
	return ok && v.Valid()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}
