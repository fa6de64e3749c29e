package synth

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/refdata"
)

func buildHRCase(s *Synthesizer, ctx context.Context, number string) (record.Record, error) {
	refs := s.refs
	openedFor := refs.RandomEntity(refdata.PoolUser)
	subject := refs.RandomEntity(refdata.PoolUser)
	openedBy := refs.RandomEntity(refdata.PoolUser)
	service := refs.RandomEntity(refdata.PoolHRService)
	group, assignee := s.assignment()

	serviceType := refs.RandomChoice("hr_service_type")
	category := refs.RandomChoice("hr_category")
	state := s.drawState("hr_state")
	_, _, priority := s.drawLevels()

	short, long := s.describe(ctx, hrCasePrompt(category, serviceType, service.Display),
		fmt.Sprintf("HR %s - %s request", category, serviceType),
		fmt.Sprintf("HR case regarding %s - %s for employee assistance", category, serviceType),
	)

	r := &record.HRCaseRecord{
		ID:               number,
		ShortDescription: short,
		Description:      long,
		OpenedFor:        openedFor.Display,
		HRService:        service.Display,
		SubjectPerson:    subject.Display,
		AssignmentGroup:  group.Display,
		HRServiceType:    serviceType,
		Category:         category,
		DueDate:          s.now().AddDate(0, 0, rand.IntN(14)+1).Format(DayLayout),
		OpenedBy:         openedBy.Display,
		State:            state,
		Priority:         priority,
		OpenedAt:         s.openedAt(),
		AssignedTo:       assignee.Display,
	}

	if r.Closed() {
		r.ResolvedBy = assignee.Display
		r.ClosedBy = refs.RandomLinked(refdata.PoolUser, refdata.PoolGroup, group.ID).Display
		r.ResolvedAt, r.ClosedAt = s.resolution()
		r.CloseCode = refs.RandomChoice("hr_close_code")
		r.CloseNotes = s.closeNotes(ctx, "HR case", short, r.CloseCode,
			fmt.Sprintf("HR case resolved with code: %s", r.CloseCode))
	}
	return r, nil
}
