package synth

import (
	"context"
	"fmt"
	"strings"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/refdata"
)

func buildKnowledgeArticle(s *Synthesizer, ctx context.Context, number string) (record.Record, error) {
	refs := s.refs
	kb := refs.RandomEntity(refdata.PoolKnowledgeBase)
	author := refs.RandomEntity(refdata.PoolUser)
	category := refs.RandomChoice("kb_category")

	workflow := refs.RandomChoice("kb_workflow_state")
	if s.closedPct >= 0 {
		wantTerminal := rollPercent(s.closedPct)
		workflow = refs.RandomChoiceWhere("kb_workflow_state", func(st string) bool {
			return s.kind.Terminal(st) == wantTerminal
		})
	}

	title := cleanNotes(s.text.GenerateText(ctx,
		fmt.Sprintf("Create a knowledge article title for %s in the %s knowledge base. Make it concise and solution-oriented. Return only the title.", category, kb.Display),
		titleLength))
	if title == "" {
		title = fmt.Sprintf("How to resolve %s issues", category)
	}

	body := s.textOr(ctx,
		fmt.Sprintf("Create a comprehensive knowledge base article titled %q about %s. Include sections for Problem Description, Symptoms, Cause, Resolution Steps, Prevention, and Related Information. Format with HTML headings and lists.", title, category),
		articleLength, defaultArticle(category))

	keywords := s.textOr(ctx,
		fmt.Sprintf("Generate 5-7 relevant technical keywords for a knowledge article about %s. Return only keywords separated by commas.", category),
		keywordsLength, fmt.Sprintf("%s, troubleshooting, resolution, guide", strings.ToLower(category)))

	now := s.now()
	r := &record.KnowledgeArticleRecord{
		ID:               number,
		ShortDescription: title,
		Text:             body,
		KnowledgeBase:    kb.Display,
		Category:         category,
		Author:           author.Display,
		WorkflowState:    workflow,
		Active:           workflow != "retired",
		Meta:             keywords,
		CreatedOn:        s.openedAt(),
		UpdatedOn:        now.Format(DateLayout),
	}
	if r.Closed() {
		r.Published = now.Format(DayLayout)
		r.ValidTo = now.AddDate(2, 0, 0).Format(DayLayout)
	}
	return r, nil
}

func defaultArticle(category string) string {
	return fmt.Sprintf(`<h2>Problem Description</h2>
<p>This article covers common %s issues and their resolutions.</p>
<h2>Symptoms</h2>
<ul><li>Common symptoms related to %s</li></ul>
<h2>Resolution Steps</h2>
<ol><li>Identify the issue</li><li>Apply the solution</li><li>Verify the fix</li></ol>`, category, category)
}
