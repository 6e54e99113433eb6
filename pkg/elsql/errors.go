package elsql

import "fmt"

// ParseError reports a problem encountered while parsing a resource.
// FileIndex is the position of the offending resource within the list
// of layered resources passed to Parse; Line is 1-based.
type ParseError struct {
	FileIndex int
	Line      int
	Message   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("elsql: parse error in resource %d, line %d: %s", e.FileIndex, e.Line, e.Message)
}

// ResourceNotFoundError is returned by Of when the base resource for a
// bundle cannot be located.
type ResourceNotFoundError struct {
	Name string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("elsql: resource not found: %s", e.Name)
}

// UnknownFragmentError is returned when a named fragment is requested
// (via GetSQL or @INCLUDE) that does not exist in the bundle.
type UnknownFragmentError struct {
	Name string
}

func (e *UnknownFragmentError) Error() string {
	return fmt.Sprintf("elsql: unknown fragment: %s", e.Name)
}

// MissingVariableError is returned when rendering requires a parameter
// that the supplied ParamSource does not have.
type MissingVariableError struct {
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("elsql: missing variable: %s", e.Variable)
}

// TypeError is returned when a variable is used in a context that
// requires a particular type (e.g. @LOOP requires an integer) and the
// supplied value cannot be interpreted as that type.
type TypeError struct {
	Variable string
	Want     string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("elsql: variable %s is not a valid %s", e.Variable, e.Want)
}

// CyclicIncludeError is returned when rendering an @INCLUDE chain would
// revisit a fragment that is already being rendered.
type CyclicIncludeError struct {
	Name string
}

func (e *CyclicIncludeError) Error() string {
	return fmt.Sprintf("elsql: cyclic @INCLUDE detected at fragment: %s", e.Name)
}
