// Package format renders log records in the two line formats the facade
// supports: a human-readable bracketed line for local development and
// line-delimited JSON for hosted environments.
package format

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// structuredRecord is the hosted-environment wire shape. Field order is
// fixed so key order in the encoded line stays deterministic.
type structuredRecord struct {
	Version   int    `json:"@version"`
	Timestamp string `json:"@timestamp"`
	Logger    string `json:"logger"`
	Thread    string `json:"thread"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	FinnApp   string `json:"finn_app"`
}

// Local renders the human-readable form: a single bracketed prefix followed
// by the message.
func Local(timestamp, level, target, message string) string {
	return fmt.Sprintf("[%s %s %s] %s", timestamp, level, target, message)
}

// Structured renders one JSON object on a single line.
func Structured(timestamp, level, target, message, app, thread string) (string, error) {
	encoded, err := json.Marshal(structuredRecord{
		Version:   1,
		Timestamp: timestamp,
		Logger:    target,
		Thread:    thread,
		Level:     level,
		Message:   message,
		FinnApp:   app,
	})
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
