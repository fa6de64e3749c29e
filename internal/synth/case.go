package synth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2389/recgen/internal/record"
	"github.com/2389/recgen/internal/refdata"
)

func buildCase(s *Synthesizer, ctx context.Context, number string) (record.Record, error) {
	refs := s.refs
	account := refs.RandomEntity(refdata.PoolAccount)
	contact := refs.RandomLinked(refdata.PoolContact, refdata.PoolAccount, account.ID)
	group, assignee := s.assignment()

	caseType := refs.RandomChoice("case_type")
	category := refs.RandomChoice("case_category")
	subcategory := refs.RandomSubcategoryIn("case_subcategory", category)
	state := s.drawState("case_state")
	_, _, priority := s.drawLevels()

	short, long := s.describe(ctx, casePrompt(account.Display, caseType, category, subcategory),
		fmt.Sprintf("%s: %s - %s issue", account.Display, category, subcategory),
		fmt.Sprintf("%s case from %s regarding %s - %s", caseType, account.Display, category, subcategory),
	)

	r := &record.CaseRecord{
		ID:                            number,
		Channel:                       refs.RandomChoice("contact_type"),
		Account:                       account.Display,
		Contact:                       contact.Display,
		Consumer:                      gofakeit.Name(),
		RequestingServiceOrganization: gofakeit.Company() + " " + gofakeit.BuzzWord(),
		Product:                       gofakeit.ProductName(),
		Asset:                         strings.ToUpper(gofakeit.LetterN(8)),
		InstallBase:                   strings.ToUpper(gofakeit.LetterN(10)),
		PartnerContact:                gofakeit.Name(),
		CaseType:                      caseType,
		Category:                      category,
		Subcategory:                   subcategory,
		ShortDescription:              short,
		Description:                   long,
		NeedsAttention:                rand.Float64() > 0.7,
		Opened:                        s.openedAt(),
		Priority:                      priority,
		AssignmentGroup:               group.Display,
		AssignedTo:                    assignee.Display,
		ServiceOrganization:           gofakeit.Company() + " Services",
		Contract:                      fmt.Sprintf("CNTR%07d", rand.IntN(numberSpace)),
		Entitlement:                   refs.RandomChoice("entitlement"),
		Partner:                       gofakeit.Company() + " Partners",
		State:                         state,
	}
	if rand.Float64() > 0.8 {
		r.Parent = fmt.Sprintf("%s%07d", record.Case.Prefix(), rand.IntN(numberSpace))
	}

	if r.Closed() {
		r.ResolvedBy = assignee.Display
		r.ClosedBy = refs.RandomLinked(refdata.PoolUser, refdata.PoolGroup, group.ID).Display
		r.ResolvedAt, r.ClosedAt = s.resolution()
		r.ResolutionCode = refs.RandomChoice("resolution_code")
		r.Cause = refs.RandomChoice("cause")
		r.NotesToComments = rand.Float64() > 0.5
		r.CloseCode = refs.RandomChoice("case_close_code")
		r.CloseNotes = s.closeNotes(ctx, "customer service case", short, r.CloseCode,
			fmt.Sprintf("Case closed with code: %s. The customer's request was addressed according to standard procedures.", r.CloseCode))
	}
	return r, nil
}
