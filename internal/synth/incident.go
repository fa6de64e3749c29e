package synth

import (
	"context"
	"fmt"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/refdata"
)

func buildIncident(s *Synthesizer, ctx context.Context, number string) (record.Record, error) {
	refs := s.refs
	caller := refs.RandomEntity(refdata.PoolUser)
	ci, service, offering := s.serviceChain()
	group, assignee := s.assignment()

	category := refs.RandomChoice("category")
	subcategory := refs.RandomSubcategory(category)
	channel := refs.RandomChoice("contact_type")
	state := s.drawState("state")
	impact, urgency, priority := s.drawLevels()

	short, long := s.describe(ctx, incidentPrompt(category, subcategory, ci.Display),
		fmt.Sprintf("%s - %s issue with %s", category, subcategory, ci.Display),
		fmt.Sprintf("Detailed information about the %s - %s issue with %s. The configuration item is affected. User is unable to perform normal work functions.", category, subcategory, ci.Display),
	)

	r := &record.IncidentRecord{
		ID:                number,
		Caller:            caller.Display,
		Category:          category,
		Subcategory:       subcategory,
		Service:           service.Display,
		ServiceOffering:   offering.Display,
		ConfigurationItem: ci.Display,
		ShortDescription:  short,
		Description:       long,
		Channel:           channel,
		Opened:            s.openedAt(),
		State:             state,
		Impact:            impact,
		Urgency:           urgency,
		Priority:          priority,
		AssignmentGroup:   group.Display,
		AssignedTo:        assignee.Display,
	}

	if r.Closed() {
		r.CloseCode = refs.RandomChoice("close_code")
		r.CloseNotes = s.closeNotes(ctx, "incident", short, r.CloseCode,
			fmt.Sprintf("Incident closed with code: %s", r.CloseCode))
	}
	return r, nil
}
