// ABOUTME: Built-in reference pools and choice sets modelled on a demo instance.
// ABOUTME: Used whenever no reference data file is supplied.

package refdata

// Default returns a Store over the built-in data.
func Default() *Store {
	return New(DefaultData())
}

func user(id, display string, groups ...string) Entity {
	return Entity{ID: id, Display: display, Links: map[string][]string{PoolGroup: groups}}
}

func linked(id, display, pool string, ids ...string) Entity {
	return Entity{ID: id, Display: display, Links: map[string][]string{pool: ids}}
}

const (
	grpHardware    = "8a5055c9c61122780043563ef53438e3"
	grpMFA         = "3ccb62b67fb30210674d91fadc8665c2"
	grpProblem     = "0c4e7b573b331300ad3cc9bb34efc461"
	grpNYDB        = "5f74727dc0a8010e01efe33a251993f9"
	grpChange      = "a715cd759f2002002920bde8132e7018"
	grpOpenspace   = "36c741fa731313005754660c4cf6a70d"
	grpAppDev      = "0a52d3dcd7011200f2d224837e6103f2"
	grpCapacity    = "aaccc971c0a8001500fe1ff4302de101"
	grpNetwork     = "287ebd7da9fe198100f92cc8d1d2154e"
	grpProject     = "aacb62e2c0a80015007f67f752c2b12c"
	grpCustomerSvc = "b1ff30ac0a0a0b2c00aad0c66d673aa8"
	grpTechSupport = "b2ff30ac0a0a0b2c00aad0c66d673aa9"
	grpAccountMgmt = "b3ff30ac0a0a0b2c00aad0c66d673aa0"
	grpHR          = "b4ff30ac0a0a0b2c00aad0c66d673ab1"

	svcBondTrading = "451047c6c0a8016400de0ae6df9b9d76"
	svcSAPPayroll  = "26e540d80a0a0bb400660482030d04d8"
	svcJobvite     = "d278f28f933a31003b4bb095e57ffb8a"
	svcPeopleSoft  = "2fd0eab90a0a0bb40061cf732d32967c"
	svcSAPControl  = "26e46e5b0a0a0bb4005d1146846c429c"
	svcSAPSales    = "26e494480a0a0bb400ad175538708ad9"
	svcWorkday     = "6a78f28f933a31003b4bb095e57ffb8a"
	svcECommerce   = "28c2c50cc0a8000b001c50f77c1cdf47"
	svcSAPMaterial = "26e44e8a0a0a0bb40095ff953f9ee520"
	svcRetailPts   = "28c273fcc0a8000b00a86416d360cc7d"

	acctAcme     = "c1c1c1c1c0a8016400b98a06818d5c11"
	acctGlobex   = "c2c2c2c2c0a8016400b98a06818d5c22"
	acctInitech  = "c3c3c3c3c0a8016400b98a06818d5c33"
	acctUmbrella = "c4c4c4c4c0a8016400b98a06818d5c44"
	acctStark    = "c5c5c5c5c0a8016400b98a06818d5c55"
	acctWayne    = "c6c6c6c6c0a8016400b98a06818d5c66"
	acctCyber    = "c7c7c7c7c0a8016400b98a06818d5c77"
	acctMassive  = "c8c8c8c8c0a8016400b98a06818d5c88"
	acctSoylent  = "c9c9c9c9c0a8016400b98a06818d5c99"
	acctWeyland  = "c0c0c0c0c0a8016400b98a06818d5c00"
)

// DefaultData returns a fresh copy of the built-in reference data.
func DefaultData() Data {
	return Data{
		Pools: map[string][]Entity{
			PoolGroup: {
				{ID: grpHardware, Display: "Hardware"},
				{ID: grpMFA, Display: "MFA Exempted User Group"},
				{ID: grpProblem, Display: "Problem Analyzers"},
				{ID: grpNYDB, Display: "NY DB"},
				{ID: grpChange, Display: "Change Management"},
				{ID: grpOpenspace, Display: "Openspace"},
				{ID: grpAppDev, Display: "Application Development"},
				{ID: grpCapacity, Display: "Capacity Mgmt"},
				{ID: grpNetwork, Display: "Network"},
				{ID: grpProject, Display: "Project Mgmt"},
				{ID: grpCustomerSvc, Display: "Customer Service"},
				{ID: grpTechSupport, Display: "Technical Support"},
				{ID: grpAccountMgmt, Display: "Account Management"},
				{ID: grpHR, Display: "HR Tier 1"},
			},
			PoolUser: {
				user("5137153cc611227c000bbd1bd8cd2005", "Fred Luddy", grpHardware, grpNetwork, grpProject),
				user("f8588956937002002dcef157b67ffb98", "Change Manager", grpChange),
				user("5137153cc611227c000bbd1bd8cd2007", "David Loo", grpHardware, grpNYDB, grpCapacity, grpNetwork),
				user("1832fbe1d701120035ae23c7ce610369", "Manifah Masood", grpAppDev),
				user("62526fa1d701120035ae23c7ce6103c6", "Guillermo Frohlich", grpAppDev),
				user("f298d2d2c611227b0106c6be7f154bc8", "Bow Ruggeri", grpHardware, grpNetwork),
				user("38cb3f173b331300ad3cc9bb34efc4d6", "Problem Coordinator B", grpProblem),
				user("73ab3f173b331300ad3cc9bb34efc4df", "Problem Coordinator A", grpProblem),
				user("7e3bbb173b331300ad3cc9bb34efc4a8", "Problem Task Analyst A", grpProblem),
				user("681b365ec0a80164000fb0b05854a0cd", "ITIL User", grpHardware, grpNetwork),
				user("46d44a23a9fe19810012d100cca80666", "Beth Anglin", grpCustomerSvc, grpAccountMgmt),
				user("62826bf03710200044e0bfc8bcbe5df1", "Abel Tuter", grpTechSupport, grpCustomerSvc),
				user("a8f98bb0eb32010045e1a5115206fe3a", "Abraham Lincoln", grpHR, grpMFA),
				user("06826bf03710200044e0bfc8bcbe5d8a", "Adela Cervantsz", grpHR, grpOpenspace),
			},
			PoolService: {
				{ID: svcBondTrading, Display: "Bond Trading"},
				{ID: svcSAPPayroll, Display: "SAP Payroll"},
				{ID: svcJobvite, Display: "Jobvite Enterprise Recruitment Services"},
				{ID: svcPeopleSoft, Display: "PeopleSoft Governance"},
				{ID: svcSAPControl, Display: "SAP Controlling"},
				{ID: svcSAPSales, Display: "SAP Sales and Distribution"},
				{ID: svcWorkday, Display: "Workday Enterprise Services"},
				{ID: svcECommerce, Display: "E-Commerce"},
				{ID: svcSAPMaterial, Display: "SAP Materials Management"},
				{ID: svcRetailPts, Display: "Retail Adding Points"},
			},
			PoolServiceOffering: {
				linked("46fb0230a9fe198101a23f6712475e11", "Standard Email", PoolService, svcECommerce),
				linked("46fb0230a9fe198101a23f6712475e12", "Premium Email", PoolService, svcECommerce),
				linked("46fb0230a9fe198101a23f6712475e13", "Basic VPN", PoolService, svcBondTrading),
				linked("46fb0230a9fe198101a23f6712475e14", "Secure VPN", PoolService, svcBondTrading),
				linked("46fb0230a9fe198101a23f6712475e15", "CRM Basic", PoolService, svcSAPSales, svcRetailPts),
				linked("46fb0230a9fe198101a23f6712475e16", "CRM Premium", PoolService, svcSAPSales),
				linked("46fb0230a9fe198101a23f6712475e17", "ERP Core", PoolService, svcSAPMaterial, svcSAPControl, svcSAPPayroll),
				linked("46fb0230a9fe198101a23f6712475e18", "ERP Advanced", PoolService, svcSAPMaterial, svcSAPControl),
				linked("46fb0230a9fe198101a23f6712475e19", "HR Self-Service", PoolService, svcWorkday, svcPeopleSoft, svcJobvite),
				linked("46fb0230a9fe198101a23f6712475e20", "HR Full Service", PoolService, svcWorkday, svcPeopleSoft),
			},
			PoolCI: {
				linked("3a6b9e16c0a8ce0100e154dd7e6353c2", "SAP LoadBal01", PoolService, svcSAPMaterial),
				linked("3a27f1520a0a0bb400ecd6ff7afcf036", "PS Apache02", PoolService, svcPeopleSoft),
				linked("55c3578bc0a8010e0117f727897d0011", "bond_trade_ny", PoolService, svcBondTrading),
				linked("53958ff0c0a801640171ec76aa0c8f86", "lnux100", PoolService, svcBondTrading),
				linked("28c2131fc0a8000b0020787c5d6816f0", "Retail Client Registration", PoolService, svcECommerce),
				linked("3a6bc0d9c0a8ce01004a1b154049d4d2", "SAP LoadBal02", PoolService, svcSAPMaterial),
				linked("63036c18c0a8010e01bac272daed2e2c", "Bond Trading - DR", PoolService, svcBondTrading),
				linked("3a172e820a0a0bb40034228e9f65f1be", "PS LoadBal01", PoolService, svcPeopleSoft),
				linked("55c38564c0a8010e00596302eb0d26bc", "bond_trade_uk", PoolService, svcBondTrading),
				linked("26da329f0a0a0bb400f69d8159bc753d", "SAP Enterprise Services", PoolService, svcSAPPayroll, svcSAPControl, svcSAPSales, svcSAPMaterial),
				linked("27eabc4bc0a8000b0089fd512b3e8934", "INSIGHT-NY-03", PoolService, svcRetailPts),
				linked("5397fa53c0a8016400f562cb29027855", "apache linux ny 100", PoolService, svcBondTrading),
				linked("2216daf0d7820200c1ed0fbc5e6103ca", "bond_trade_aus", PoolService, svcSAPPayroll),
				linked("3a2810c20a0a0bb400268337d6e942ca", "PS Apache03", PoolService, svcPeopleSoft),
				linked("281a4d5fc0a8000b00e4ba489a83eedc", "IT Services", PoolService, svcBondTrading),
				linked("28c1db1dc0a8000b001224d1cdaf1425", "Retail POS (Point of Sale)", PoolService, svcRetailPts),
				linked("2fc86c650a0a0bb4003698b5331640df", "PeopleSoft Enterprise Services", PoolService, svcPeopleSoft),
				linked("5f9b83bfc0a8010e005a2b3212c9dc07", "dbaix901nyc", PoolService, svcRetailPts),
				linked("53979c53c0a801640116ad2044643fb2", "unix201", PoolService, svcBondTrading),
				linked("3a27d4370a0a0bb4006316812bf45439", "PS Apache01", PoolService, svcPeopleSoft),
			},
			PoolAccount: {
				{ID: acctAcme, Display: "Acme Corporation"},
				{ID: acctGlobex, Display: "Globex Industries"},
				{ID: acctInitech, Display: "Initech Technologies"},
				{ID: acctUmbrella, Display: "Umbrella Corporation"},
				{ID: acctStark, Display: "Stark Industries"},
				{ID: acctWayne, Display: "Wayne Enterprises"},
				{ID: acctCyber, Display: "Cyberdyne Systems"},
				{ID: acctMassive, Display: "Massive Dynamic"},
				{ID: acctSoylent, Display: "Soylent Corp"},
				{ID: acctWeyland, Display: "Weyland-Yutani Corp"},
			},
			PoolContact: {
				linked("d1d1d1d1c0a8016400b98a06818d5d11", "John Smith", PoolAccount, acctAcme),
				linked("d2d2d2d2c0a8016400b98a06818d5d22", "Jane Doe", PoolAccount, acctAcme),
				linked("d3d3d3d3c0a8016400b98a06818d5d33", "Robert Johnson", PoolAccount, acctGlobex),
				linked("d4d4d4d4c0a8016400b98a06818d5d44", "Emily Williams", PoolAccount, acctGlobex),
				linked("d5d5d5d5c0a8016400b98a06818d5d55", "Michael Brown", PoolAccount, acctInitech),
				linked("d6d6d6d6c0a8016400b98a06818d5d66", "Sarah Miller", PoolAccount, acctUmbrella),
				linked("d7d7d7d7c0a8016400b98a06818d5d77", "David Wilson", PoolAccount, acctStark),
				linked("d8d8d8d8c0a8016400b98a06818d5d88", "Jennifer Taylor", PoolAccount, acctWayne),
				linked("d9d9d9d9c0a8016400b98a06818d5d99", "Thomas Anderson", PoolAccount, acctCyber),
				linked("d0d0d0d0c0a8016400b98a06818d5d00", "Lisa Martinez", PoolAccount, acctMassive),
			},
			PoolHRService: {
				{ID: "e1e1e1e1c0a8016400b98a06818d5e11", Display: "Benefits Enrollment"},
				{ID: "e2e2e2e2c0a8016400b98a06818d5e22", Display: "Payroll Inquiry"},
				{ID: "e3e3e3e3c0a8016400b98a06818d5e33", Display: "Leave of Absence"},
				{ID: "e4e4e4e4c0a8016400b98a06818d5e44", Display: "Employee Onboarding"},
				{ID: "e5e5e5e5c0a8016400b98a06818d5e55", Display: "Employee Offboarding"},
				{ID: "e6e6e6e6c0a8016400b98a06818d5e66", Display: "Employment Verification"},
			},
			PoolKnowledgeBase: {
				{ID: "a7e8a78bff0221009b20ffffffffff17", Display: "IT"},
				{ID: "bb0370019f22120047a2d126c42e7073", Display: "Human Resources General Knowledge"},
				{ID: "dfc19531bf2021003f07e2c1ac0739ab", Display: "Customer Service"},
			},
		},
		Lists: map[string][]string{
			"category": {
				"Network", "Hardware", "Software", "Database", "Security",
				"Email", "Telephony", "Authentication", "Storage", "Web",
			},
			"contact_type": {
				"Email", "Phone", "Self-service", "Walk-in", "Chat",
				"Automated", "Virtual Agent", "Social Media",
			},
			"close_code": {
				"Known error", "Resolved by problem", "User error", "No resolution provided",
				"Resolved by request", "Resolved by caller", "Solution provided", "Duplicate",
			},
			"case_category": {
				"Account", "Billing", "Product", "Service", "Technical",
				"Order", "Shipping", "Returns", "Warranty", "General",
			},
			"case_type": {
				"Question", "Issue", "Feature Request", "Complaint",
				"Compliment", "Service Request", "Order", "Return",
			},
			"case_close_code": {
				"Solved (Permanently)", "Solved (Work Around)", "Solved (Knowledge Article)",
				"Not Solved (Not Reproducible)", "Not Solved (Too Costly)", "Not Solved (Not Supported)",
			},
			"resolution_code": {
				"Fixed by Vendor", "Fixed by Customer", "Fixed by Support",
				"Workaround Provided", "Configuration Change", "Software Update", "Hardware Replacement",
			},
			"cause": {
				"User Error", "Software Bug", "Hardware Failure", "Network Issue",
				"Configuration Error", "Third-party Integration", "Environmental Factor",
			},
			"entitlement": {
				"24/7 Support", "Business Hours Support", "Premium Support",
				"Standard Warranty", "Extended Warranty", "10-year product warranty on inverters",
			},
			"hr_category": {
				"Benefits", "Payroll", "Time Off", "Performance", "Training",
				"Compliance", "Employee Relations", "Onboarding", "Offboarding",
			},
			"hr_service_type": {
				"employee_relations", "benefits", "payroll", "recruitment",
				"performance_management", "training", "compliance", "onboarding",
			},
			"hr_close_code": {
				"Resolved", "Closed Complete", "Closed Incomplete",
				"Cancelled", "Duplicate", "Resolved by Caller",
			},
			"change_category": {
				"Software", "Hardware", "Network", "Security", "Database",
				"Application", "Infrastructure", "Emergency", "Standard", "Normal",
			},
			"change_risk": {"Low", "Moderate", "High", "Very High"},
			"change_close_code": {
				"Successful", "Successful with Issues", "Unsuccessful",
				"Cancelled", "Backed Out", "Partially Successful",
			},
			"kb_category": {
				"IT Services", "Hardware", "Software", "Network", "Security",
				"Troubleshooting", "How-To", "FAQ", "Best Practices", "Procedures",
			},
			"kb_workflow_state": {"draft", "review", "published", "retired"},
		},
		Values: map[string][]Choice{
			"state": {
				{1, "New"}, {2, "In Progress"}, {3, "On Hold"},
				{6, "Resolved"}, {7, "Closed"}, {8, "Canceled"},
			},
			"case_state": {
				{1, "New"}, {10, "Open"}, {18, "Awaiting Info"}, {6, "Resolved"},
				{3, "Closed"}, {7, "Cancelled"},
			},
			"hr_state": {
				{1, "New"}, {10, "Ready"}, {18, "Work in Progress"},
				{20, "Awaiting Acceptance"}, {24, "Suspended"}, {6, "Resolved"}, {3, "Closed"},
			},
			"change_state": {
				{-5, "New"}, {-4, "Assess"}, {-3, "Authorize"}, {-2, "Scheduled"},
				{-1, "Implement"}, {0, "Review"}, {3, "Closed"}, {4, "Canceled"},
			},
			"impact": {{1, "High"}, {2, "Medium"}, {3, "Low"}},
			"urgency": {{1, "High"}, {2, "Medium"}, {3, "Low"}},
		},
		Nested: map[string]map[string][]string{
			"subcategory": {
				"Network":        {"Connectivity", "VPN", "Wireless", "DNS", "DHCP"},
				"Hardware":       {"Desktop", "Laptop", "Printer", "Mobile Device", "Server"},
				"Software":       {"Operating System", "Application", "Update", "License", "Installation"},
				"Database":       {"Performance", "Backup", "Recovery", "Query", "Permissions"},
				"Security":       {"Access", "Virus", "Firewall", "Encryption", "Policy"},
				"Email":          {"Delivery", "Spam", "Configuration", "Mailbox", "Distribution List"},
				"Telephony":      {"Desk Phone", "Voicemail", "Conference", "Mobile", "Fax"},
				"Authentication": {"Password Reset", "Account Lockout", "MFA", "SSO", "Permissions"},
				"Storage":        {"File Share", "Quota", "Backup", "Recovery", "Performance"},
				"Web":            {"Access", "Performance", "Functionality", "Error", "Content"},
			},
			"case_subcategory": {
				"Account":   {"Access", "Creation", "Modification", "Deletion", "Permissions"},
				"Billing":   {"Invoice", "Payment", "Refund", "Subscription", "Pricing"},
				"Product":   {"Defect", "Feature Request", "Documentation", "Compatibility", "Installation"},
				"Service":   {"Availability", "Quality", "Modification", "Cancellation", "Upgrade"},
				"Technical": {"Error", "Performance", "Configuration", "Integration", "Security"},
				"Order":     {"Status", "Modification", "Cancellation", "Missing Items", "Pricing"},
				"Shipping":  {"Delay", "Damage", "Tracking", "Address Change", "Lost Package"},
				"Returns":   {"Authorization", "Label", "Refund Status", "Exchange", "Restocking Fee"},
				"Warranty":  {"Claim", "Coverage", "Extension", "Repair", "Replacement"},
				"General":   {"Feedback", "Inquiry", "Complaint", "Compliment", "Other"},
			},
		},
	}
}
