package llm

import (
	"strings"
	"testing"
)

func TestBuildExtractionPromptEmbedsTextVerbatim(t *testing.T) {
	resumeText := "Jane Doe\njane@x.com\nSkills: Go, SQL <with> \"odd\" characters & all"

	prompt := BuildExtractionPrompt(resumeText)
	if !strings.Contains(prompt, resumeText) {
		t.Fatal("prompt must contain the resume text verbatim")
	}
	if strings.Contains(prompt, resumeTextToken) {
		t.Fatal("placeholder token must be replaced")
	}
}

func TestBuildExtractionPromptIsDeterministic(t *testing.T) {
	a := BuildExtractionPrompt("same input")
	b := BuildExtractionPrompt("same input")
	if a != b {
		t.Fatal("prompt construction must be deterministic")
	}
}

func TestBuildExtractionPromptStatesContract(t *testing.T) {
	prompt := BuildExtractionPrompt("text")
	for _, want := range []string{
		"ONLY a JSON object",
		"resume_rating",
		"null or an empty array",
		"work_experience",
		"upskill_suggestions",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}
