package schema

// The nine page schemas mirror the physical layout of the examiner's report:
// identification, personal info + questions 1-12, questions 13-27,
// examination + family history, respiratory/circulatory, circulatory +
// digestive, genito-urinary + nervous, musculoskeletal + skin, and
// summary + examiner.
var pages = []PageSchema{
	{
		Index:   0,
		Title:   "Identification",
		Context: "This is typically the first page containing basic identification information like reference numbers and names.",
		Fields: []FieldDef{
			{Name: "reference_number", Kind: KindText, Group: GroupPersonalInfo, Required: true,
				Hint: "the report's reference number, usually printed near the top"},
			{Name: "name_of_life_to_be_insured", Kind: KindText, Group: GroupPersonalInfo, Required: true},
		},
	},
	{
		Index:   1,
		Title:   "Personal info and medical history 1-12",
		Context: "This page usually contains personal information and the first set of medical history questions (1-12). Look for numbered medical questions with Y/N answers.",
		Fields: []FieldDef{
			{Name: "address", Kind: KindLongText, Group: GroupPersonalInfo},
			{Name: "suburb", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "state", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "postcode", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "date_of_birth", Kind: KindDate, Group: GroupPersonalInfo},
			{Name: "occupation", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "licence_number", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "passport_number", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "other_id_description", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "other_id_number", Kind: KindText, Group: GroupPersonalInfo},
			{Name: "signature_of_life_to_be_insured_date", Kind: KindDate, Group: GroupPersonalInfo},
			{Name: "witness_signature_date", Kind: KindDate, Group: GroupPersonalInfo},

			{Name: "has_circulatory_system_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_diabetes_or_high_blood_sugar", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_genitourinary_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_digestive_system_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_cancer_or_tumour", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_respiratory_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_neurological_condition", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_neurological_symptoms", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_eye_or_ear_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_skin_condition", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_back_or_neck_pain", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_joint_bone_or_muscle_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
		},
	},
	{
		Index:   2,
		Title:   "Medical history 13-27",
		Context: "This page contains the continuation of medical history questions (13-27). Look for numbered questions with Y/N answers.",
		Fields: []FieldDef{
			{Name: "has_arthritis_or_osteoporosis_or_gout", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_blood_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_thyroid_disorder_or_lupus", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_mental_or_nervous_condition", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_female_reproductive_disorder_or_pregnancy", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_pregnancy_complications", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_substance_or_alcohol_use_history", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_positive_hiv_or_hepatitis_test", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_high_risk_hiv_exposure_history", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_absence_from_work_due_to_illness_or_injury", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_undiagnosed_symptoms_or_condition", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_recent_medication_prescribed", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_recent_medical_tests", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "has_genetic_testing_history_or_intention", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "plans_future_medical_advice_or_treatment", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "pregnant_expected_date", Kind: KindDate, Group: GroupMedicalHist,
				Hint: "expected delivery date if question 17 mentions pregnancy"},
			{Name: "medical_history_details", Kind: KindLongText, Group: GroupMedicalHist,
				Hint: "details provided when any of questions 1-27 is answered yes"},
		},
	},
	{
		Index:   3,
		Title:   "Examination, measurements and family history",
		Context: "This page contains confidential medical examination details, physical measurements, and family history information.",
		Fields: []FieldDef{
			{Name: "known_to_examiner", Kind: KindYesNo, Group: GroupExamination},
			{Name: "previously_attended_examiner", Kind: KindYesNo, Group: GroupExamination},
			{Name: "unusual_build_or_behavior", Kind: KindText, Group: GroupExamination},
			{Name: "signs_of_tobacco_alcohol_or_drugs", Kind: KindText, Group: GroupExamination},
			{Name: "ever_smoked", Kind: KindYesNo, Group: GroupExamination},
			{Name: "height_cm", Kind: KindInt, Group: GroupExamination},
			{Name: "weight_kg", Kind: KindInt, Group: GroupExamination},
			{Name: "chest_full_inspiration_cm", Kind: KindInt, Group: GroupExamination},
			{Name: "chest_full_expiration_cm", Kind: KindInt, Group: GroupExamination},
			{Name: "waist_circumference_cm", Kind: KindInt, Group: GroupExamination},
			{Name: "hips_circumference_cm", Kind: KindInt, Group: GroupExamination},
			{Name: "recent_weight_variation", Kind: KindYesNo, Group: GroupExamination},
			{Name: "weight_variation_details", Kind: KindLongText, Group: GroupExamination},

			{Name: "family_history_heart_disease", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_cardiomyopathy", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_breast_cervical_ovarian_cancer", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_bowel_cancer_or_polyposis", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_other_cancer", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_diabetes", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_alzheimers_disease", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_multiple_sclerosis", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_other_hereditary_disorder", Kind: KindYesNo, Group: GroupMedicalHist},
			{Name: "family_history_relationship", Kind: KindText, Group: GroupMedicalHist},
			{Name: "family_history_medical_condition", Kind: KindText, Group: GroupMedicalHist},
			{Name: "family_history_age_when_diagnosed", Kind: KindText, Group: GroupMedicalHist},
			{Name: "family_history_age_at_death", Kind: KindText, Group: GroupMedicalHist},
			{Name: "family_history_investigation_details", Kind: KindLongText, Group: GroupMedicalHist},
		},
	},
	{
		Index:   4,
		Title:   "Respiratory and circulatory findings",
		Context: "This page contains additional measurements and respiratory/circulatory system findings.",
		Fields: []FieldDef{
			{Name: "chest_expansion_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "respiratory_abnormality", Kind: KindYesNo, Group: GroupExamination,
				Hint: "abnormality of the respiratory system to palpation, percussion or auscultation"},
			{Name: "respiratory_abnormality_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "respiratory_disease_sign", Kind: KindYesNo, Group: GroupExamination,
				Hint: "sign of past or present respiratory disease"},
			{Name: "respiratory_disease_sign_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "pulse_rate_and_character", Kind: KindText, Group: GroupExamination},
			{Name: "apex_beat_position", Kind: KindText, Group: GroupExamination},
			{Name: "apex_interspace", Kind: KindText, Group: GroupExamination},
			{Name: "apex_distance_from_midsternal", Kind: KindDecimal, Group: GroupExamination,
				Hint: "distance from the apex beat to the midsternal line in centimeters"},
			{Name: "cardiac_enlargement", Kind: KindYesNo, Group: GroupExamination},
			{Name: "cardiac_enlargement_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "abnormal_heart_sounds_or_rhythm", Kind: KindYesNo, Group: GroupExamination},
			{Name: "abnormal_heart_sounds_or_rhythm_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "murmurs", Kind: KindYesNo, Group: GroupExamination},
			{Name: "murmurs_details", Kind: KindLongText, Group: GroupExamination},
		},
	},
	{
		Index:   5,
		Title:   "Blood pressure, digestive, endocrine and lymph findings",
		Context: "This page contains detailed circulatory system measurements (blood pressure readings) and digestive/endocrine/lymph system findings.",
		Fields: []FieldDef{
			{Name: "bp_systolic_1", Kind: KindInt, Group: GroupExamination},
			{Name: "bp_diastolic_1", Kind: KindInt, Group: GroupExamination},
			{Name: "bp_systolic_2", Kind: KindInt, Group: GroupExamination},
			{Name: "bp_diastolic_2", Kind: KindInt, Group: GroupExamination},
			{Name: "bp_systolic_3", Kind: KindInt, Group: GroupExamination},
			{Name: "bp_diastolic_3", Kind: KindInt, Group: GroupExamination},
			{Name: "peripheral_abnormalities", Kind: KindYesNo, Group: GroupExamination},
			{Name: "peripheral_abnormalities_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "heart_and_vascular_system_abnormal", Kind: KindYesNo, Group: GroupExamination},
			{Name: "heart_and_vascular_system_abnormal_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "on_treatment_for_hypertension", Kind: KindYesNo, Group: GroupExamination},
			{Name: "hypertension_pretreatment_bp", Kind: KindText, Group: GroupExamination},
			{Name: "hypertension_duration", Kind: KindText, Group: GroupExamination},
			{Name: "hypertension_treatment_nature", Kind: KindText, Group: GroupExamination},
			{Name: "hernia_present", Kind: KindYesNo, Group: GroupExamination},
			{Name: "hernia_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "lymph_gland_abnormality", Kind: KindYesNo, Group: GroupExamination,
				Hint: "lymph gland abnormality in the neck, axillae or inguinal regions"},
			{Name: "lymph_gland_abnormality_details", Kind: KindLongText, Group: GroupExamination},
		},
	},
	{
		Index:   6,
		Title:   "Genito-urinary and nervous system findings",
		Context: "This page contains genito-urinary findings, urine test results, and nervous system findings (vision, hearing).",
		Fields: []FieldDef{
			{Name: "genito_urinary_abnormality", Kind: KindYesNo, Group: GroupExamination},
			{Name: "genito_urinary_abnormality_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "urine_protein", Kind: KindYesNo, Group: GroupExamination},
			{Name: "urine_sugar", Kind: KindYesNo, Group: GroupExamination},
			{Name: "urine_blood", Kind: KindYesNo, Group: GroupExamination},
			{Name: "urine_blood_menstruating", Kind: KindYesNo, Group: GroupExamination},
			{Name: "urine_other_abnormalities", Kind: KindYesNo, Group: GroupExamination},
			{Name: "urine_other_abnormalities_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "is_pregnant", Kind: KindYesNo, Group: GroupExamination},
			{Name: "expected_delivery_date", Kind: KindDate, Group: GroupExamination},
			{Name: "vision_defect_or_eye_abnormality", Kind: KindYesNo, Group: GroupExamination},
			{Name: "vision_defect_or_eye_abnormality_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "hearing_or_speech_defect", Kind: KindYesNo, Group: GroupExamination},
			{Name: "hearing_or_speech_defect_details", Kind: KindLongText, Group: GroupExamination},
		},
	},
	{
		Index:   7,
		Title:   "Musculoskeletal and skin findings",
		Context: "This page contains neurological findings and musculoskeletal/skin examination results.",
		Fields: []FieldDef{
			{Name: "joint_abnormality", Kind: KindYesNo, Group: GroupExamination},
			{Name: "joint_abnormality_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "muscle_or_connective_tissue_abnormality", Kind: KindYesNo, Group: GroupExamination},
			{Name: "muscle_or_connective_tissue_abnormality_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "back_or_neck_abnormality", Kind: KindYesNo, Group: GroupExamination,
				Hint: "abnormality of the back or neck including cervical and lumbar spine"},
			{Name: "back_or_neck_abnormality_details", Kind: KindLongText, Group: GroupExamination},
			{Name: "skin_disorder", Kind: KindYesNo, Group: GroupExamination},
			{Name: "skin_disorder_details", Kind: KindLongText, Group: GroupExamination},
		},
	},
	{
		Index:   8,
		Title:   "Summary and examiner details",
		Context: "This page contains the summary, recommendations, and examiner details including signature and qualifications.",
		Fields: []FieldDef{
			{Name: "medical_attendants_reports_required", Kind: KindYesNo, Group: GroupSummary},
			{Name: "medical_attendants_reports_details", Kind: KindLongText, Group: GroupSummary},
			{Name: "likely_to_require_surgery", Kind: KindYesNo, Group: GroupSummary},
			{Name: "likely_to_require_surgery_details", Kind: KindLongText, Group: GroupSummary},
			{Name: "unfavourable_history_personal_or_family", Kind: KindLongText, Group: GroupSummary,
				Hint: "unfavourable features in personal or family history which could reduce life expectancy"},
			{Name: "unfavourable_findings_medical_exam", Kind: KindLongText, Group: GroupSummary,
				Hint: "unfavourable features disclosed by the examination which could reduce life expectancy"},

			{Name: "examiner_name", Kind: KindText, Group: GroupExaminer},
			{Name: "examiner_address", Kind: KindLongText, Group: GroupExaminer},
			{Name: "examiner_suburb", Kind: KindText, Group: GroupExaminer},
			{Name: "examiner_state", Kind: KindText, Group: GroupExaminer},
			{Name: "examiner_postcode", Kind: KindText, Group: GroupExaminer},
			{Name: "examiner_phone", Kind: KindText, Group: GroupExaminer},
			{Name: "examiner_personal_qualifications", Kind: KindLongText, Group: GroupExaminer},
			{Name: "examiner_signature_present", Kind: KindYesNo, Group: GroupExaminer},
			{Name: "examiner_date_signed", Kind: KindDate, Group: GroupExaminer},
		},
	},
}
