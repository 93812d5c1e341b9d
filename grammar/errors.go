package grammar

import (
	"errors"
	"fmt"
)

// ErrNoRoot reports a compile of a grammar whose root rule was never
// defined.
var ErrNoRoot = errors.New("grammar: root rule not defined")

// UndefinedRuleError reports a reference to a rule that was never defined.
// Rule is the missing name; Referrer is the rule whose body holds the
// reference.
type UndefinedRuleError struct {
	Rule     string
	Referrer string
}

func (e *UndefinedRuleError) Error() string {
	return fmt.Sprintf("grammar: undefined rule %q referenced by %q", e.Rule, e.Referrer)
}

// UnknownFormatError reports a compile against a format identifier with no
// registered renderer.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("grammar: unknown format %q", e.Format)
}
