package application

// StageInfo describes one fixed checkpoint in loan processing.
type StageInfo struct {
	Key      Stage  `json:"key"`
	Order    int    `json:"order"`
	Label    string `json:"label"`
	Progress int    `json:"progress"`
}

// StageTable is the fixed, ordered processing pipeline. Not user-editable.
var StageTable = []StageInfo{
	{Key: StageApplicationSubmitted, Order: 1, Label: "Application Submitted", Progress: 10},
	{Key: StageDocumentVerification, Order: 2, Label: "Document Verification", Progress: 30},
	{Key: StageCreditCheck, Order: 3, Label: "Credit Check", Progress: 50},
	{Key: StageBankReview, Order: 4, Label: "Bank Review", Progress: 70},
	{Key: StageSanction, Order: 5, Label: "Sanction", Progress: 90},
	{Key: StageDisbursement, Order: 6, Label: "Disbursement", Progress: 100},
}

// StageLookup returns the stage table entry for key, or ok=false for an
// unknown stage.
func StageLookup(key Stage) (StageInfo, bool) {
	for _, s := range StageTable {
		if s.Key == key {
			return s, true
		}
	}
	return StageInfo{}, false
}

// ChecklistItem is one required-or-optional document slot for a loan type.
type ChecklistItem struct {
	DocType    string `json:"docType"`
	DocName    string `json:"docName"`
	IsRequired bool   `json:"isRequired"`
}

var requiredDocuments = map[LoanType][]ChecklistItem{
	LoanEducation: {
		{DocType: "identity_proof", DocName: "Identity Proof (Aadhar/Passport)", IsRequired: true},
		{DocType: "address_proof", DocName: "Address Proof", IsRequired: true},
		{DocType: "photo", DocName: "Passport Size Photo", IsRequired: true},
		{DocType: "admission_letter", DocName: "Admission Letter", IsRequired: true},
		{DocType: "fee_structure", DocName: "Fee Structure", IsRequired: true},
		{DocType: "academic_records", DocName: "10th & 12th Marksheets", IsRequired: true},
		{DocType: "income_proof", DocName: "Co-Applicant Income Proof", IsRequired: false},
		{DocType: "bank_statement", DocName: "Bank Statements (6 months)", IsRequired: false},
	},
	LoanHome: {
		{DocType: "identity_proof", DocName: "Identity Proof (Aadhar/PAN)", IsRequired: true},
		{DocType: "address_proof", DocName: "Address Proof", IsRequired: true},
		{DocType: "income_proof", DocName: "Income Proof", IsRequired: true},
		{DocType: "bank_statement", DocName: "Bank Statements (6 months)", IsRequired: true},
		{DocType: "property_documents", DocName: "Property Documents", IsRequired: true},
		{DocType: "salary_slips", DocName: "Salary Slips (3 months)", IsRequired: true},
	},
	LoanPersonal: {
		{DocType: "identity_proof", DocName: "Identity Proof (Aadhar/PAN)", IsRequired: true},
		{DocType: "address_proof", DocName: "Address Proof", IsRequired: true},
		{DocType: "income_proof", DocName: "Income Proof", IsRequired: true},
		{DocType: "bank_statement", DocName: "Bank Statements (3 months)", IsRequired: true},
	},
	LoanBusiness: {
		{DocType: "identity_proof", DocName: "Identity Proof (Aadhar/PAN)", IsRequired: true},
		{DocType: "address_proof", DocName: "Business Address Proof", IsRequired: true},
		{DocType: "business_registration", DocName: "Business Registration", IsRequired: true},
		{DocType: "financial_statements", DocName: "Financial Statements", IsRequired: true},
		{DocType: "bank_statement", DocName: "Bank Statements (12 months)", IsRequired: true},
		{DocType: "itr", DocName: "ITR (3 years)", IsRequired: true},
	},
	LoanVehicle: {
		{DocType: "identity_proof", DocName: "Identity Proof (Aadhar/PAN)", IsRequired: true},
		{DocType: "address_proof", DocName: "Address Proof", IsRequired: true},
		{DocType: "income_proof", DocName: "Income Proof", IsRequired: true},
		{DocType: "bank_statement", DocName: "Bank Statements (3 months)", IsRequired: true},
		{DocType: "vehicle_quotation", DocName: "Vehicle Quotation", IsRequired: true},
	},
}

// ChecklistFor returns the document checklist for a loan type. Unknown loan
// types fall back to the personal checklist.
func ChecklistFor(lt LoanType) []ChecklistItem {
	if docs, ok := requiredDocuments[lt]; ok {
		return docs
	}
	return requiredDocuments[LoanPersonal]
}

var numberPrefixes = map[LoanType]string{
	LoanEducation: "EDU",
	LoanHome:      "HME",
	LoanPersonal:  "PRS",
	LoanBusiness:  "BUS",
	LoanVehicle:   "VEH",
}

// NumberPrefix returns the application-number prefix for a loan type,
// "APP" for unknown types.
func NumberPrefix(lt LoanType) string {
	if p, ok := numberPrefixes[lt]; ok {
		return p
	}
	return "APP"
}
