// Package errors provides the structured error type used across rpg-stats.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. Codes survive wrapping, so callers can branch on the
// kind of failure without string matching.
//
// # Basic Usage
//
//	err := errors.OutOfRangef("keep %d exceeds count %d", keep, count)
//	err := errors.InvalidArgumentf("stat value %d not in given array", v).
//	    WithMeta("value", v)
//
// Wrapping keeps the wrapped error's code:
//
//	if _, err := roller.RollKeepReroll(input); err != nil {
//	    return errors.Wrap(err, "failed to roll ability score")
//	}
//
// # Error Kinds
//
// The codes map onto the three failure classes of stat generation:
//   - InvalidArgument: a bad configuration (reported by Config.Validate) or
//     generated stats rejected by a validator
//   - OutOfRange: a roll requested outside the die's range, or keep > count
//   - NotFound: an unknown die kind or ruleset file
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if c.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	errors.ValidateMin("Count", c.Count, 1, vb)
//	return vb.Build()
//
// # CLI
//
// Code.ExitCode maps a code onto a sysexits(3) status for cmd/statroll.
package errors
