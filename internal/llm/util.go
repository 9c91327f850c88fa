package llm

import "strings"

// CleanJSONBlock strips a markdown code fence from a provider response.
// Even with JSON response mode requested, models sometimes return the
// career-suggestion or question-set object wrapped in ```json fences; the
// schema validator downstream rejects anything that is not a bare object,
// so the fence is removed here before the document is handed on.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	rest := text[3:]

	// A language tag may sit alone on the fence line ("```json\n{...")
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		tag := strings.TrimSpace(rest[:nl])
		if tag == "" || (len(tag) < 20 && !strings.ContainsAny(tag, " {")) {
			rest = rest[nl+1:]
		}
	}
	// or run straight into the payload ("```json{...")
	if i := strings.IndexAny(rest, "{["); i > 0 && i < 20 && !strings.ContainsAny(rest[:i], " \n") {
		rest = rest[i:]
	}

	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
