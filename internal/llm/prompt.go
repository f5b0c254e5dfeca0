package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/extract_v1.txt
var extractPromptV1 string

const resumeTextToken = "{{RESUME_TEXT}}"

// BuildExtractionPrompt embeds the resume text verbatim into the structured
// extraction instruction template. Pure string construction: no truncation or
// sanitization of the resume text happens here; provider limits are the
// client's concern.
func BuildExtractionPrompt(resumeText string) string {
	return strings.Replace(extractPromptV1, resumeTextToken, resumeText, 1)
}
