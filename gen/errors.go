package gen

import "fmt"

// FilterTooNarrowError reports that a Filter or BindFilter generator
// exceeded its retry budget: the predicate rejected every candidate the
// retry budget allowed. It is fatal for the run that hit it and is never
// itself shrunk — a different seed would not change the generator's shape.
type FilterTooNarrowError struct {
	Retries  int
	LastSeen any
}

func (e *FilterTooNarrowError) Error() string {
	return fmt.Sprintf("gen: filter too narrow: no value satisfied the predicate in %d tries (last rejected: %v)", e.Retries, e.LastSeen)
}

// TooManyDuplicatesError reports that UniqListOf could not find enough
// elements with distinct keys within its retry budget.
type TooManyDuplicatesError struct {
	Tries     int
	WantCount int
	GotCount  int
}

func (e *TooManyDuplicatesError) Error() string {
	return fmt.Sprintf("gen: too many duplicates: wanted %d unique elements, got %d after %d tries", e.WantCount, e.GotCount, e.Tries)
}

// EmptyEnumError reports that MemberOf or Frequency was built from an
// empty input.
type EmptyEnumError struct {
	Combinator string
}

func (e *EmptyEnumError) Error() string {
	return fmt.Sprintf("gen: %s: empty enumeration", e.Combinator)
}

// InvalidOptionError reports a malformed option passed to a generator
// constructor (e.g. a negative length bound).
type InvalidOptionError struct {
	Option string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("gen: invalid option %s: %s", e.Option, e.Reason)
}

// InvalidGeneratorError reports that a value supplied where a generator
// was expected could not be lifted into one (see GenInput in lift.go).
type InvalidGeneratorError struct {
	Value any
}

func (e *InvalidGeneratorError) Error() string {
	return fmt.Sprintf("gen: %v is not a generator and cannot be lifted into one", e.Value)
}
