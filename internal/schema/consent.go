package schema

// ConsentSchema describes the single-page consent/authority form that
// accompanies the examiner's report. It is a second document type with its
// own field set; consent extractions do not feed the five grouped tables.
var ConsentSchema = PageSchema{
	Index:   0,
	Title:   "Consent form",
	Context: "This is a one-page consent form with a reference number, the insured person's details, and two signed authority sections.",
	Fields: []FieldDef{
		{Name: "reference_number", Kind: KindText, Group: GroupPersonalInfo, Required: true},
		{Name: "life_to_be_insured_name", Kind: KindText, Group: GroupPersonalInfo},
		{Name: "life_to_be_insured_dob", Kind: KindDate, Group: GroupPersonalInfo},
		{Name: "authority1_name", Kind: KindText, Group: GroupPersonalInfo},
		{Name: "authority1_signature_date", Kind: KindDate, Group: GroupPersonalInfo},
		{Name: "authority2_name", Kind: KindText, Group: GroupPersonalInfo},
		{Name: "authority2_signature_date", Kind: KindDate, Group: GroupPersonalInfo},
	},
}
