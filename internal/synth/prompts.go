// ABOUTME: Prompt templates and the shared description/close-notes calls.

package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/2389/recgen/internal/parse"
)

// Reply caps passed to GenerateText, in characters.
const (
	descriptionLength = 600
	closeNotesLength  = 200
	planLength        = 600
	titleLength       = 100
	articleLength     = 2000
	keywordsLength    = 100
)

const jsonInstructions = `Format your response as JSON with the following structure:
{
  "shortDescription": "Concise description of the issue",
  "description": "Detailed explanation including symptoms, error messages, and impact on the user's work"
}

Make both descriptions specific, realistic, and business-relevant. Do not include markdown formatting or code block markers.`

func incidentPrompt(category, subcategory, ci string) string {
	return fmt.Sprintf(`Generate both a short description (under 100 characters) and a detailed description (200-400 characters) for a ServiceNow incident with category "%s", subcategory "%s", and configuration item "%s".

%s`, category, subcategory, ci, jsonInstructions)
}

func casePrompt(account, caseType, category, subcategory string) string {
	return fmt.Sprintf(`Generate a realistic ServiceNow CSM case short description (under 100 characters) and detailed description (200-400 characters) for the following:
- Account: %s
- Case Type: %s
- Category: %s
- Subcategory: %s

%s`, account, caseType, category, subcategory, jsonInstructions)
}

func hrCasePrompt(category, serviceType, service string) string {
	return fmt.Sprintf(`Generate both a short description (under 100 characters) and a detailed description (200-400 characters) for a ServiceNow HR case in category "%s" with HR service type "%s" for the service "%s". Write it from the employee's point of view.

%s`, category, serviceType, service, jsonInstructions)
}

func changePrompt(category, service, ci string) string {
	return fmt.Sprintf(`Generate both a short description (under 100 characters) and a detailed description (200-400 characters) for a ServiceNow %s change request affecting the service "%s" and configuration item "%s".

%s`, category, service, ci, jsonInstructions)
}

func closeNotesPrompt(kind, short, closeCode string) string {
	return fmt.Sprintf(`Write realistic ServiceNow %s close notes for:
Issue: %s
Close Code: %s

Write 1-2 sentences explaining how this was resolved. Be specific and professional. Maximum 150 characters. Do not include quotes or extra formatting.`, kind, short, closeCode)
}

// describe runs one description prompt through the parser, falling back to
// the given defaults for any field the reply did not yield.
func (s *Synthesizer) describe(ctx context.Context, prompt, defShort, defLong string) (string, string) {
	reply := s.text.GenerateText(ctx, prompt, descriptionLength)
	return parse.Parse(reply, parse.Descriptions).Or(defShort, defLong)
}

// closeNotes asks for close notes, using fallback when the reply cleans to
// nothing.
func (s *Synthesizer) closeNotes(ctx context.Context, kind, short, closeCode, fallback string) string {
	notes := cleanNotes(s.text.GenerateText(ctx, closeNotesPrompt(kind, short, closeCode), closeNotesLength))
	if notes == "" {
		return fallback
	}
	return notes
}

// textOr trims a free-text reply and substitutes fallback when it is empty.
func (s *Synthesizer) textOr(ctx context.Context, prompt string, maxLength int, fallback string) string {
	if t := strings.TrimSpace(s.text.GenerateText(ctx, prompt, maxLength)); t != "" {
		return t
	}
	return fallback
}
