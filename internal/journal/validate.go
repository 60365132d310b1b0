package journal

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Reason is a stable validation failure code. Every failure maps to exactly
// one code so callers can distinguish outcomes without parsing messages.
type Reason string

const (
	ReasonValid    Reason = "VALID"
	ReasonEmpty    Reason = "EMPTY"
	ReasonTooShort Reason = "TOO_SHORT"
	ReasonTooLong  Reason = "TOO_LONG"
	ReasonUnsafe   Reason = "UNSAFE"
	ReasonType     Reason = "TYPE"
	ReasonRange    Reason = "RANGE"
	ReasonFuture   Reason = "FUTURE"
	ReasonTooOld   Reason = "TOO_OLD"
)

// Verdict is the outcome of one validation check.
type Verdict struct {
	OK      bool
	Code    Reason
	Message string
}

func valid() Verdict {
	return Verdict{OK: true, Code: ReasonValid, Message: "Valid"}
}

func invalid(code Reason, msg string) Verdict {
	return Verdict{OK: false, Code: code, Message: msg}
}

// ValidationError is a Verdict surfaced as an error from the builder.
type ValidationError struct {
	Code    Reason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// unsafePatterns match markup/script-injection content that must never
// enter the store, checked case-insensitively against the raw text.
var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script.*?>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
}

// ValidateText checks a dream narrative against the hard input constraints.
// Lengths are counted in characters (runes), not bytes; the minimum applies
// after trimming, the maximum to the raw text. Exactly MinTextLen and
// exactly MaxTextLen characters both pass.
func ValidateText(text string, lim Limits) Verdict {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return invalid(ReasonEmpty, "Dream text cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) < lim.MinTextLen {
		return invalid(ReasonTooShort,
			fmt.Sprintf("Dream description too short (minimum %d characters)", lim.MinTextLen))
	}
	if utf8.RuneCountInString(text) > lim.MaxTextLen {
		return invalid(ReasonTooLong,
			fmt.Sprintf("Dream description too long (maximum %d characters)", lim.MaxTextLen))
	}
	for _, p := range unsafePatterns {
		if p.MatchString(text) {
			return invalid(ReasonUnsafe, "Invalid characters detected")
		}
	}
	return valid()
}

// ValidateSleepQuality checks an already-integral sleep rating.
func ValidateSleepQuality(q int, lim Limits) Verdict {
	if q < lim.MinSleepQuality || q > lim.MaxSleepQuality {
		return invalid(ReasonRange,
			fmt.Sprintf("Sleep quality must be between %d and %d", lim.MinSleepQuality, lim.MaxSleepQuality))
	}
	return valid()
}

// ValidateSleepQualityNumber checks a sleep rating that arrived as a JSON
// number: non-integral values fail with TYPE before the range check runs.
func ValidateSleepQualityNumber(v float64, lim Limits) Verdict {
	if v != math.Trunc(v) {
		return invalid(ReasonType, "Sleep quality must be a whole number")
	}
	return ValidateSleepQuality(int(v), lim)
}

// now is a package-level var so tests can pin the current date.
var now = time.Now

// ValidateDate checks an entry date against the calendar constraints:
// today passes, tomorrow fails FUTURE, and exactly MaxDatePastDays days
// back passes while one more day fails TOO_OLD.
func ValidateDate(d Date, lim Limits) Verdict {
	today := DateOf(now())
	if d.After(today) {
		return invalid(ReasonFuture, "Dream date cannot be in the future")
	}
	if d.DaysBefore(today) > lim.MaxDatePastDays {
		return invalid(ReasonTooOld, "Dream date too far in the past")
	}
	return valid()
}
