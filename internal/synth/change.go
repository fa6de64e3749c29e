package synth

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/refdata"
)

func buildChangeRequest(s *Synthesizer, ctx context.Context, number string) (record.Record, error) {
	refs := s.refs
	requestedBy := refs.RandomEntity(refdata.PoolUser)
	ci, service, _ := s.serviceChain()
	group, assignee := s.assignment()

	category := refs.RandomChoice("change_category")
	risk := refs.RandomChoice("change_risk")
	state := s.drawState("change_state")
	impact, _, priority := s.drawLevels()

	short, long := s.describe(ctx, changePrompt(category, service.Display, ci.Display),
		fmt.Sprintf("%s change request for %s", category, ci.Display),
		fmt.Sprintf("Change request to modify %s configuration for %s", category, service.Display),
	)

	start := s.now().AddDate(0, 0, rand.IntN(30)+1)
	end := start.AddDate(0, 0, rand.IntN(7)+1)

	r := &record.ChangeRequestRecord{
		ID:                number,
		ShortDescription:  short,
		Description:       long,
		RequestedBy:       requestedBy.Display,
		Category:          category,
		BusinessService:   service.Display,
		ConfigurationItem: ci.Display,
		Priority:          priority,
		Risk:              risk,
		Impact:            impact,
		AssignmentGroup:   group.Display,
		AssignedTo:        assignee.Display,
		Justification: s.textOr(ctx,
			fmt.Sprintf("Write a business justification for a %s change request affecting %s. Include business value and expected benefits.", category, service.Display),
			planLength, fmt.Sprintf("Business justification for %s change to improve system performance and reliability.", category)),
		ImplementationPlan: s.textOr(ctx,
			fmt.Sprintf("Create an implementation plan for a %s change request on %s. Include specific steps, timing, and ownership.", category, ci.Display),
			planLength, fmt.Sprintf("Implementation plan for %s change with step-by-step procedures.", category)),
		RiskImpactAnalysis: s.textOr(ctx,
			fmt.Sprintf("Analyze risks and impacts for a %s change request rated %s risk. Include mitigation strategies.", category, risk),
			planLength, fmt.Sprintf("Risk analysis for %s change with identified mitigation strategies.", category)),
		BackoutPlan: s.textOr(ctx,
			fmt.Sprintf("Create a backout plan for a %s change request on %s. Include specific rollback steps.", category, ci.Display),
			planLength, fmt.Sprintf("Backout plan for %s change with rollback procedures.", category)),
		TestPlan: s.textOr(ctx,
			fmt.Sprintf("Develop a test plan for a %s change request. Include test cases and success criteria.", category),
			planLength, fmt.Sprintf("Test plan for %s change with validation procedures.", category)),
		StartDate: start.Format(DayLayout),
		EndDate:   end.Format(DayLayout),
		State:     state,
		OpenedAt:  s.openedAt(),
		OpenedBy:  requestedBy.Display,
	}

	if r.Closed() {
		r.CloseCode = refs.RandomChoice("change_close_code")
		r.CloseNotes = s.closeNotes(ctx, "change request", short, r.CloseCode,
			fmt.Sprintf("Change request completed with status: %s", r.CloseCode))
	}
	return r, nil
}
