// ABOUTME: Fixed column schemas per record kind for CSV, Excel and the store.
// ABOUTME: Column order must match each variant's Row() method.

package record

// Column pairs a human-readable header with the platform field name.
type Column struct {
	Header string
	Key    string
}

var columns = map[Kind][]Column{
	Incident: {
		{"Number", "number"},
		{"Caller", "caller_id"},
		{"Category", "category"},
		{"Subcategory", "subcategory"},
		{"Service", "business_service"},
		{"Service offering", "service_offering"},
		{"Configuration item", "cmdb_ci"},
		{"Short description", "short_description"},
		{"Description", "description"},
		{"Channel", "contact_type"},
		{"Opened", "opened_at"},
		{"State", "state"},
		{"Impact", "impact"},
		{"Urgency", "urgency"},
		{"Priority", "priority"},
		{"Assignment group", "assignment_group"},
		{"Assigned to", "assigned_to"},
		{"Close code", "close_code"},
		{"Close notes", "close_notes"},
	},
	Case: {
		{"Number", "number"},
		{"Channel", "contact_type"},
		{"Account", "account"},
		{"Contact", "contact"},
		{"Consumer", "consumer"},
		{"Requesting service organization", "requesting_service_organization"},
		{"Product", "product"},
		{"Asset", "asset"},
		{"Install base", "install_base"},
		{"Partner contact", "partner_contact"},
		{"Parent", "parent"},
		{"Case type", "case_type"},
		{"Category", "category"},
		{"Subcategory", "subcategory"},
		{"Short description", "short_description"},
		{"Description", "description"},
		{"Needs attention", "needs_attention"},
		{"Opened", "opened_at"},
		{"Priority", "priority"},
		{"Assignment group", "assignment_group"},
		{"Assigned to", "assigned_to"},
		{"Service organization", "service_organization"},
		{"Contract", "contract"},
		{"Entitlement", "entitlement"},
		{"Partner", "partner"},
		{"State", "state"},
		{"Resolved by", "resolved_by"},
		{"Resolved at", "resolved_at"},
		{"Closed by", "closed_by"},
		{"Closed at", "closed_at"},
		{"Resolution code", "resolution_code"},
		{"Cause", "cause"},
		{"Close code", "close_code"},
		{"Close notes", "close_notes"},
		{"Notes to comments", "notes_to_comments"},
	},
	HRCase: {
		{"Number", "number"},
		{"Short description", "short_description"},
		{"Description", "description"},
		{"Opened for", "opened_for"},
		{"HR service", "hr_service"},
		{"Subject person", "subject_person"},
		{"Assignment group", "assignment_group"},
		{"HR service type", "hr_service_type"},
		{"Category", "category"},
		{"Due date", "due_date"},
		{"Opened by", "opened_by"},
		{"State", "state"},
		{"Priority", "priority"},
		{"Opened", "opened_at"},
		{"Assigned to", "assigned_to"},
		{"Resolved by", "resolved_by"},
		{"Resolved at", "resolved_at"},
		{"Closed by", "closed_by"},
		{"Closed at", "closed_at"},
		{"Close code", "close_code"},
		{"Close notes", "close_notes"},
	},
	ChangeRequest: {
		{"Number", "number"},
		{"Short description", "short_description"},
		{"Description", "description"},
		{"Requested by", "requested_by"},
		{"Category", "category"},
		{"Service", "business_service"},
		{"Configuration item", "cmdb_ci"},
		{"Priority", "priority"},
		{"Risk", "risk"},
		{"Impact", "impact"},
		{"Assignment group", "assignment_group"},
		{"Assigned to", "assigned_to"},
		{"Justification", "justification"},
		{"Implementation plan", "implementation_plan"},
		{"Risk and impact analysis", "risk_impact_analysis"},
		{"Backout plan", "backout_plan"},
		{"Test plan", "test_plan"},
		{"Planned start date", "start_date"},
		{"Planned end date", "end_date"},
		{"State", "state"},
		{"Opened", "opened_at"},
		{"Opened by", "opened_by"},
		{"Close code", "close_code"},
		{"Close notes", "close_notes"},
	},
	KnowledgeArticle: {
		{"Number", "number"},
		{"Short description", "short_description"},
		{"Article body", "text"},
		{"Knowledge base", "kb_knowledge_base"},
		{"Category", "kb_category"},
		{"Author", "author"},
		{"Workflow", "workflow_state"},
		{"Published", "published"},
		{"Valid to", "valid_to"},
		{"Active", "active"},
		{"Meta", "meta"},
		{"Created", "sys_created_on"},
		{"Updated", "sys_updated_on"},
	},
}

// Columns returns the column schema for kind, or nil for an unknown kind.
func Columns(kind Kind) []Column {
	return columns[kind]
}

// Headers returns just the header names for kind.
func Headers(kind Kind) []string {
	cols := columns[kind]
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	return headers
}

// Fields zips a record's row with its column keys.
func Fields(r Record) map[string]any {
	cols := columns[r.Kind()]
	row := r.Row()
	fields := make(map[string]any, len(cols))
	for i, c := range cols {
		if i < len(row) {
			fields[c.Key] = row[i]
		}
	}
	return fields
}
