package utils

import (
	"log"
	"strings"
)

// LogEvent writes the standard service log line. Keep message a short
// summary; never log file contents or credentials.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("%s.%s request_id=%s %s", strings.ToLower(module), action, req, message)
}
