package advancement

import (
	"errors"
	"fmt"
)

// Rule sentinels. Every invalid result wraps exactly one of these.
var (
	ErrNoClass             = errors.New("no class selected")
	ErrAbilityNotAllowed   = errors.New("ability not available to class")
	ErrFocusNotAllowed     = errors.New("focus not available")
	ErrDoubleFocusTooEarly = errors.New("double focus requires level 11")
	ErrTripleFocus         = errors.New("focus already doubled")
	ErrAbilityCapped       = errors.New("ability score already at 3")
	ErrRollOutOfRange      = errors.New("roll outside dice range")
	ErrIllegalWeaponGroup  = errors.New("weapon group not offered")
	ErrDuplicateBenefit    = errors.New("benefit selected twice")
	ErrBenefitAfterDouble  = errors.New("second benefit after a benefit that counts as two")
	ErrInvalidRoll         = errors.New("roll has no table entry")
	ErrUnknownChoice       = errors.New("unknown choice")
)

// Violation is a broken rule together with what broke it.
type Violation struct {
	Rule    error
	Subject string
}

// Violate returns a *Violation of rule. subject may be empty.
func Violate(rule error, subject string) error {
	return &Violation{Rule: rule, Subject: subject}
}

// Violatef is Violate with a formatted subject.
func Violatef(rule error, format string, args ...any) error {
	return &Violation{Rule: rule, Subject: fmt.Sprintf(format, args...)}
}

func (v *Violation) Error() string {
	if v.Subject == "" {
		return v.Rule.Error()
	}
	return fmt.Sprintf("%s: %s", v.Subject, v.Rule)
}

func (v *Violation) Unwrap() error { return v.Rule }
