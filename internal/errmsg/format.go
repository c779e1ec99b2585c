// Package errmsg turns errors into the one-line messages shown in the UI.
package errmsg

import "fmt"

// Op names the action that failed, phrased to follow "Failed to".
type Op string

const (
	OpFileLoad      Op = "load audio"
	OpFileValidate  Op = "accept file"
	OpPlaybackStart Op = "start playback"
	OpPlaybackRate  Op = "change playback rate"
	OpClassify      Op = "classify genre"
	OpInitialize    Op = "initialize application"
	OpConfigLoad    Op = "load config"
)

// Format renders err as a failure of op. A nil err renders as "".
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format with the subject of the operation quoted, usually a
// path or URI.
func FormatWith(op Op, subject string, err error) string {
	switch {
	case err == nil:
		return ""
	case subject == "":
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
	}
}
