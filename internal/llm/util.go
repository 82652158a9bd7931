package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSONBlock strips markdown code fences and any chatter around the
// outermost JSON object or array.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// language tag on the fence line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			first := text[:idx]
			if len(first) < 20 && !strings.ContainsAny(first, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closer := "}"
	if text[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(text, closer)
	if end < start {
		return text[start:]
	}
	return text[start : end+1]
}

// GenerateInto asks client for JSON and decodes it into out
func GenerateInto(ctx context.Context, client Client, prompt string, tier ModelTier, out any) error {
	raw, err := client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return err
	}
	raw = CleanJSONBlock(raw)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, truncate(raw, 200))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
