package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripFences removes markdown code fences the model sometimes wraps around
// JSON replies despite instructions not to.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func decodeReply(text string, out any) error {
	if err := json.Unmarshal([]byte(stripFences(text)), out); err != nil {
		return fmt.Errorf("could not decode model reply as JSON: %w", err)
	}
	return nil
}
