package normalizer

import "fmt"

// MissingPropertyError is the fatal configuration error raised when a
// mapping-shaped field entry lacks the mandatory "property" option. It
// aborts the configuration load; callers match it with [errors.As].
type MissingPropertyError struct {
	// Action is the lifecycle action whose fields list holds the entry.
	Action string
	// Class is the configured class of the offending entity.
	Class string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf(
		"one of the values of the \"fields\" option for the %q action of the %q entity does not define the mandatory \"property\" option",
		e.Action, e.Class,
	)
}

// InvalidFieldTypeError is the fatal configuration error raised when a
// field entry is neither a string nor a mapping. It aborts the
// configuration load; callers match it with [errors.As].
type InvalidFieldTypeError struct {
	// Action is the lifecycle action whose fields list holds the entry.
	Action string
	// Class is the configured class of the offending entity.
	Class string
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf(
		"the values of the \"fields\" option for the %q action of the %q entity can only be strings or mappings",
		e.Action, e.Class,
	)
}
