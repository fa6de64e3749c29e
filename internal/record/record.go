// ABOUTME: Typed record variants produced by the synthesizer, one struct per kind.
// ABOUTME: Each variant renders a column-ordered row matching Columns(kind).

package record

// Record is one synthetic row. Records are immutable once returned by the
// synthesizer.
type Record interface {
	Kind() Kind
	Number() string
	// Closed reports whether the record is in a terminal state. Split output
	// routes on it.
	Closed() bool
	// Row returns values in the order of Columns(Kind()).
	Row() []any
}

// IncidentRecord is an IT service-desk incident.
type IncidentRecord struct {
	ID                string
	Caller            string
	Category          string
	Subcategory       string
	Service           string
	ServiceOffering   string
	ConfigurationItem string
	ShortDescription  string
	Description       string
	Channel           string
	Opened            string
	State             string
	Impact            int
	Urgency           int
	Priority          int
	AssignmentGroup   string
	AssignedTo        string
	CloseCode         string
	CloseNotes        string
}

func (r *IncidentRecord) Kind() Kind     { return Incident }
func (r *IncidentRecord) Number() string { return r.ID }
func (r *IncidentRecord) Closed() bool   { return Incident.Terminal(r.State) }

func (r *IncidentRecord) Row() []any {
	return []any{
		r.ID, r.Caller, r.Category, r.Subcategory, r.Service, r.ServiceOffering,
		r.ConfigurationItem, r.ShortDescription, r.Description, r.Channel, r.Opened,
		r.State, LevelLabel(r.Impact), LevelLabel(r.Urgency), PriorityLabel(r.Priority),
		r.AssignmentGroup, r.AssignedTo, r.CloseCode, r.CloseNotes,
	}
}

// CaseRecord is a customer-service case raised against an account.
type CaseRecord struct {
	ID                            string
	Channel                       string
	Account                       string
	Contact                       string
	Consumer                      string
	RequestingServiceOrganization string
	Product                       string
	Asset                         string
	InstallBase                   string
	PartnerContact                string
	Parent                        string
	CaseType                      string
	Category                      string
	Subcategory                   string
	ShortDescription              string
	Description                   string
	NeedsAttention                bool
	Opened                        string
	Priority                      int
	AssignmentGroup               string
	AssignedTo                    string
	ServiceOrganization           string
	Contract                      string
	Entitlement                   string
	Partner                       string
	State                         string
	ResolvedBy                    string
	ResolvedAt                    string
	ClosedBy                      string
	ClosedAt                      string
	ResolutionCode                string
	Cause                         string
	CloseCode                     string
	CloseNotes                    string
	NotesToComments               bool
}

func (r *CaseRecord) Kind() Kind     { return Case }
func (r *CaseRecord) Number() string { return r.ID }
func (r *CaseRecord) Closed() bool   { return Case.Terminal(r.State) }

func (r *CaseRecord) Row() []any {
	return []any{
		r.ID, r.Channel, r.Account, r.Contact, r.Consumer, r.RequestingServiceOrganization,
		r.Product, r.Asset, r.InstallBase, r.PartnerContact, r.Parent, r.CaseType,
		r.Category, r.Subcategory, r.ShortDescription, r.Description, r.NeedsAttention,
		r.Opened, PriorityLabel(r.Priority), r.AssignmentGroup, r.AssignedTo,
		r.ServiceOrganization, r.Contract, r.Entitlement, r.Partner, r.State,
		r.ResolvedBy, r.ResolvedAt, r.ClosedBy, r.ClosedAt, r.ResolutionCode, r.Cause,
		r.CloseCode, r.CloseNotes, r.NotesToComments,
	}
}

// HRCaseRecord is an employee-facing HR case.
type HRCaseRecord struct {
	ID               string
	ShortDescription string
	Description      string
	OpenedFor        string
	HRService        string
	SubjectPerson    string
	AssignmentGroup  string
	HRServiceType    string
	Category         string
	DueDate          string
	OpenedBy         string
	State            string
	Priority         int
	OpenedAt         string
	AssignedTo       string
	ResolvedBy       string
	ResolvedAt       string
	ClosedBy         string
	ClosedAt         string
	CloseCode        string
	CloseNotes       string
}

func (r *HRCaseRecord) Kind() Kind     { return HRCase }
func (r *HRCaseRecord) Number() string { return r.ID }
func (r *HRCaseRecord) Closed() bool   { return HRCase.Terminal(r.State) }

func (r *HRCaseRecord) Row() []any {
	return []any{
		r.ID, r.ShortDescription, r.Description, r.OpenedFor, r.HRService, r.SubjectPerson,
		r.AssignmentGroup, r.HRServiceType, r.Category, r.DueDate, r.OpenedBy, r.State,
		PriorityLabel(r.Priority), r.OpenedAt, r.AssignedTo, r.ResolvedBy, r.ResolvedAt,
		r.ClosedBy, r.ClosedAt, r.CloseCode, r.CloseNotes,
	}
}

// ChangeRequestRecord is a planned change against a service and CI.
type ChangeRequestRecord struct {
	ID                 string
	ShortDescription   string
	Description        string
	RequestedBy        string
	Category           string
	BusinessService    string
	ConfigurationItem  string
	Priority           int
	Risk               string
	Impact             int
	AssignmentGroup    string
	AssignedTo         string
	Justification      string
	ImplementationPlan string
	RiskImpactAnalysis string
	BackoutPlan        string
	TestPlan           string
	StartDate          string
	EndDate            string
	State              string
	OpenedAt           string
	OpenedBy           string
	CloseCode          string
	CloseNotes         string
}

func (r *ChangeRequestRecord) Kind() Kind     { return ChangeRequest }
func (r *ChangeRequestRecord) Number() string { return r.ID }
func (r *ChangeRequestRecord) Closed() bool   { return ChangeRequest.Terminal(r.State) }

func (r *ChangeRequestRecord) Row() []any {
	return []any{
		r.ID, r.ShortDescription, r.Description, r.RequestedBy, r.Category, r.BusinessService,
		r.ConfigurationItem, PriorityLabel(r.Priority), r.Risk, LevelLabel(r.Impact),
		r.AssignmentGroup, r.AssignedTo, r.Justification, r.ImplementationPlan,
		r.RiskImpactAnalysis, r.BackoutPlan, r.TestPlan, r.StartDate, r.EndDate, r.State,
		r.OpenedAt, r.OpenedBy, r.CloseCode, r.CloseNotes,
	}
}

// KnowledgeArticleRecord is a knowledge-base article.
type KnowledgeArticleRecord struct {
	ID               string
	ShortDescription string
	Text             string
	KnowledgeBase    string
	Category         string
	Author           string
	WorkflowState    string
	Published        string
	ValidTo          string
	Active           bool
	Meta             string
	CreatedOn        string
	UpdatedOn        string
}

func (r *KnowledgeArticleRecord) Kind() Kind     { return KnowledgeArticle }
func (r *KnowledgeArticleRecord) Number() string { return r.ID }

// Closed treats articles that left the authoring workflow as terminal.
func (r *KnowledgeArticleRecord) Closed() bool {
	return KnowledgeArticle.Terminal(r.WorkflowState)
}

func (r *KnowledgeArticleRecord) Row() []any {
	return []any{
		r.ID, r.ShortDescription, r.Text, r.KnowledgeBase, r.Category, r.Author,
		r.WorkflowState, r.Published, r.ValidTo, r.Active, r.Meta, r.CreatedOn, r.UpdatedOn,
	}
}
