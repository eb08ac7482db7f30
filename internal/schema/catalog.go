package schema

import "github.com/joseph-ayodele/claims-extract/constants"

// Question is one entry of the fixed question catalogs: a stable id, the
// question text printed on the form, and the field/column it stores to.
type Question struct {
	ID        int
	Text      string
	FieldName string
}

// MedicalHistoryQuestions is the fixed catalog of the form's 27 medical
// history questions. IDs match the printed numbering; never reordered.
var MedicalHistoryQuestions = []Question{
	{1, "Any disease, disorder or condition relating to the heart and circulatory system including high blood pressure, raised cholesterol, heart murmur, stroke, brain haemorrhage, or embolism, chest pain or palpitations?", "has_circulatory_system_disorder"},
	{2, "Diabetes or raised blood sugar levels?", "has_diabetes_or_high_blood_sugar"},
	{3, "Any disorder of the kidney, bladder or genitourinary system including prostate disorders, urinary tract infections, kidney stones, blood or protein in the urine?", "has_genitourinary_disorder"},
	{4, "Any disorder of the digestive system, liver, oesophagus, stomach, gall bladder, pancreas or bowel including reflux, hernia, ulcers, haemochromatosis, colitis or Crohn's disease?", "has_digestive_system_disorder"},
	{5, "Any cancer, leukaemia or tumour, lump, cyst or growth either malignant or benign (non-malignant)?", "has_cancer_or_tumour"},
	{6, "Asthma, sleep apnoea, or any other respiratory, lung or breathing disorder?", "has_respiratory_disorder"},
	{7, "Head injury, epilepsy, fits, convulsions or chronic headaches?", "has_neurological_condition"},
	{8, "Numbness, tingling, altered sensation, tremor, fainting attacks, problems with balance or co-ordination, or any form of paralysis or multiple sclerosis?", "has_neurological_symptoms"},
	{9, "Any disorder of the eyes or ears, including blindness, blurred or double vision (other than sight problems corrected by glasses or contact lenses) or impaired hearing or tinnitus?", "has_eye_or_ear_disorder"},
	{10, "Eczema, dermatitis, psoriasis or any other skin condition?", "has_skin_condition"},
	{11, "Back or neck pain including muscular pain, strain, whiplash and sciatica?", "has_back_or_neck_pain"},
	{12, "Any joint (eg wrist, elbow, shoulder, ankle, knee, hip), bone or muscle pain or disorder including RSI?", "has_joint_bone_or_muscle_disorder"},
	{13, "Rheumatoid arthritis, other forms of arthritis, osteoporosis or gout?", "has_arthritis_or_osteoporosis_or_gout"},
	{14, "Any blood disorder including anaemia?", "has_blood_disorder"},
	{15, "Any thyroid disorder or lupus?", "has_thyroid_disorder_or_lupus"},
	{16, "Depression, anxiety, panic attacks, stress, psychosis, schizophrenia, bipolar disorder, chronic fatigue, post natal depression or any other mental or nervous condition?", "has_mental_or_nervous_condition"},
	{17, "Any disorder of the cervix (including abnormal Pap smear), ovary, uterus, breast or endometrium, or are you currently pregnant?", "has_female_reproductive_disorder_or_pregnancy"},
	{18, "Any complications of pregnancy or childbirth or a child with congenital abnormalities?", "has_pregnancy_complications"},
	{19, "Have you ever injected, smoked or otherwise taken recreational or non-prescription drugs, taken any drug other than as medically directed or received advice and/or counselling for excess alcohol consumption from any health professional?", "has_substance_or_alcohol_use_history"},
	{20, "Have you ever tested positive for HIV/AIDS, Hepatitis B or C, or are you awaiting the results of such a test (other than for this application)?", "has_positive_hiv_or_hepatitis_test"},
	{21, "In the last 5 years have you engaged in any activity reasonably expected to having an increased risk or exposure to the HIV/AIDS virus?", "has_high_risk_hiv_exposure_history"},
	{22, "Have you in the last five years been absent from work or your usual duties for a period of more than five days through any illness or injury not previously disclosed in this application?", "has_absence_from_work_due_to_illness_or_injury"},
	{23, "Apart from any condition already disclosed, do you have any symptoms of illness, any physical defect, or any condition for which you receive medical advice or treatment?", "has_undiagnosed_symptoms_or_condition"},
	{24, "Apart from treating any condition already disclosed, have you in the last two years had medication prescribed (except contraceptives or antibiotics)?", "has_recent_medication_prescribed"},
	{25, "Apart from investigating any condition already disclosed, have you had any medical test (eg ECG, colonoscopy, endoscopy, gastroscopy or ultrasound)?", "has_recent_medical_tests"},
	{26, "Apart from investigating any condition already disclosed, have you ever had a genetic test where you received (or are currently awaiting) an individual result or are you considering having a genetic test?", "has_genetic_testing_history_or_intention"},
	{27, "Apart from any condition already disclosed, do you plan to seek or are you awaiting medical advice, investigation or treatment for any other current health condition or symptoms?", "plans_future_medical_advice_or_treatment"},
}

// FamilyHistoryQuestions is the fixed catalog of the form's 9 family history
// conditions.
var FamilyHistoryQuestions = []Question{
	{1, "Heart disease (eg angina or heart attack) or stroke", "family_history_heart_disease"},
	{2, "Cardiomyopathy", "family_history_cardiomyopathy"},
	{3, "Breast, cervical and/or ovarian cancer", "family_history_breast_cervical_ovarian_cancer"},
	{4, "Bowel cancer or polyposis of the colon", "family_history_bowel_cancer_or_polyposis"},
	{5, "Any other type of cancer", "family_history_other_cancer"},
	{6, "Diabetes", "family_history_diabetes"},
	{7, "Alzheimer's disease", "family_history_alzheimers_disease"},
	{8, "Multiple sclerosis", "family_history_multiple_sclerosis"},
	{9, "Motor neurone disease, Parkinson's disease, Polycystic kidney disease and/or Huntington's disease, mental illness and/or any other hereditary disorder (not previously listed in this section).", "family_history_other_hereditary_disorder"},
}

// DefaultAnswers pre-populates every catalog question with the explicit "No"
// default, keeping downstream typing stable when a page is absent.
func DefaultAnswers() map[string]string {
	out := make(map[string]string, len(MedicalHistoryQuestions)+len(FamilyHistoryQuestions))
	for _, q := range MedicalHistoryQuestions {
		out[q.FieldName] = constants.No.Token()
	}
	for _, q := range FamilyHistoryQuestions {
		out[q.FieldName] = constants.No.Token()
	}
	return out
}

// QuestionFor returns the catalog entry backing a yes/no field, if any.
func QuestionFor(fieldName string) (Question, bool) {
	for _, q := range MedicalHistoryQuestions {
		if q.FieldName == fieldName {
			return q, true
		}
	}
	for _, q := range FamilyHistoryQuestions {
		if q.FieldName == fieldName {
			return q, true
		}
	}
	return Question{}, false
}
