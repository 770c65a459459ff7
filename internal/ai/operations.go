// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/paperdesk/pkg/types"
)

// maxExtractChars bounds the paper text sent for metadata extraction.
// The cut is a hard character cut, not a semantic boundary.
const maxExtractChars = 8000

const extractSystemPrompt = `You are an expert academic assistant. Your task is to extract metadata from the provided text of a research paper. Respond ONLY with a valid JSON object with the following keys: "title" (string), "authors" (array of strings), "abstract" (string), "doi" (string), "journal" (string), "date" (string). If a field cannot be found, return an empty string or array for it.`

const translateSystemPrompt = `You are a professional academic translator. Translate the given title and abstract into Chinese. Respond ONLY with a valid JSON object with keys: "translatedTitle" and "translatedAbstract".`

const summarizeSystemPrompt = `You are a research analyst. Based on the provided titles and abstracts, write a comprehensive and insightful review. Synthesize the key findings, methodologies, and conclusions. Structure your review logically and highlight any connections or contradictions between the papers.`

// Extract asks the model for paper metadata from raw text. The text is
// truncated to maxExtractChars before sending. A response that is not the
// expected JSON shape fails with MalformedResponseError.
func Extract(ctx context.Context, c Caller, text string) (types.PaperFields, error) {
	userPrompt := fmt.Sprintf("Here is the text from a research paper. Please extract the required metadata:\n\n---\n\n%s",
		truncate(text, maxExtractChars))

	raw, err := c.Call(ctx, extractSystemPrompt, userPrompt)
	if err != nil {
		return types.PaperFields{}, err
	}

	var fields types.PaperFields
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &fields); err != nil {
		return types.PaperFields{}, &MalformedResponseError{Raw: raw, Err: err}
	}
	return fields, nil
}

// Translation holds the two translated fields returned for one paper.
type Translation struct {
	TranslatedTitle    string `json:"translatedTitle"`
	TranslatedAbstract string `json:"translatedAbstract"`
}

// Translate asks the model for a Chinese translation of the paper's title
// and abstract.
func Translate(ctx context.Context, c Caller, paper types.Paper) (Translation, error) {
	userPrompt := fmt.Sprintf("Title: %q\n\nAbstract: %q", paper.Title, paper.Abstract)

	raw, err := c.Call(ctx, translateSystemPrompt, userPrompt)
	if err != nil {
		return Translation{}, err
	}

	var tr Translation
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &tr); err != nil {
		return Translation{}, &MalformedResponseError{Raw: raw, Err: err}
	}
	return tr, nil
}

// Summarize asks the model for a literature review over the given papers.
// The response is free-form prose and is returned untouched.
func Summarize(ctx context.Context, c Caller, papers []types.Paper) (string, error) {
	rendered := make([]string, len(papers))
	for i, p := range papers {
		rendered[i] = fmt.Sprintf("Paper %d:\nTitle: %s\nAuthors: %s\nAbstract: %s",
			i+1, p.Title, strings.Join(p.Authors, ", "), p.Abstract)
	}

	userPrompt := fmt.Sprintf("Please provide a summary and review of the following papers:\n\n%s",
		strings.Join(rendered, "\n\n---\n\n"))

	return c.Call(ctx, summarizeSystemPrompt, userPrompt)
}

// stripCodeFences removes markdown code-fence markers that models sometimes
// wrap around JSON output.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// truncate cuts s to at most max characters without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
