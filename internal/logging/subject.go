package logging

import "strings"

// FormatSubject builds the "Track #id (pass)" subject used in console output.
func FormatSubject(trackID, pass string) string {
	trackID = strings.TrimSpace(trackID)
	pass = strings.TrimSpace(pass)
	switch {
	case trackID != "" && pass != "":
		return "Track #" + trackID + " (" + pass + ")"
	case trackID != "":
		return "Track #" + trackID
	default:
		return pass
	}
}
