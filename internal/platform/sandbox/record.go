package sandbox

// ---------------------------------------------------------------------------
// Column names
// ---------------------------------------------------------------------------

const (
	ColChronologicalAge      = "Chronological_Age"
	ColAgeGroup              = "Age_Group"
	ColHormonalStage         = "Hormonal_Stage"
	ColSugarIntakeFrequency  = "Sugar_Intake_Frequency"
	ColAcidicFoodConsumption = "Acidic_Food_Consumption"
	ColCalciumVitaminDLevel  = "Calcium_VitaminD_Level"
	ColProcessedFoodIntake   = "Processed_Food_Intake"
	ColWaterFluoridation     = "Water_Fluoridation"
	ColBrushingFrequency     = "Brushing_Frequency"
	ColBrushingDuration      = "Brushing_Duration"
	ColBrushingTechnique     = "Brushing_Technique"
	ColFlossingFrequency     = "Flossing_Frequency"
	ColMouthwashUse          = "Mouthwash_Use"
	ColTongueCleaning        = "Tongue_Cleaning"
	ColToothbrushType        = "Toothbrush_Type"
	ColSmokingStatus         = "Smoking_Status"
	ColPackYears             = "Pack_Years"
	ColVapingFrequency       = "Vaping_Frequency"
	ColAlcoholConsumption    = "Alcohol_Consumption"
	ColBetelNutUse           = "Betel_Nut_Use"
	ColCavitiesCount         = "Cavities_Count"
	ColGumDiseaseStatus      = "Gum_Disease_Status"
	ColToothLossCount        = "Tooth_Loss_Count"
	ColRootCanalsFillings    = "RootCanals_Fillings_Count"
	ColBruxismStatus         = "Bruxism_Status"
	ColDryMouthFrequency     = "Dry_Mouth_Frequency"
	ColDiabetesStatus        = "Diabetes_Status"
	ColAutoimmuneCondition   = "Autoimmune_Condition"
	ColSalivaryPH            = "Salivary_pH"
	ColSMutansLevel          = "S_mutans_Level"
	ColPGingivalisLevel      = "P_gingivalis_Level"
	ColGeneticRiskScore      = "Genetic_Risk_Score"
	ColDentalVisitFrequency  = "Dental_Visit_Frequency"
	ColLastDentalCheckup     = "Last_Dental_Checkup"
	ColDentalInsurance       = "Dental_Insurance"
	ColStressLevel           = "Stress_Level"
	ColEducationLevel        = "Education_Level"
	ColOccupation            = "Occupation"
	ColMedicationUse         = "Medication_Use"
)

// Columns is the fixed export order of every record.
var Columns = []string{
	ColChronologicalAge, ColAgeGroup, ColHormonalStage,
	ColSugarIntakeFrequency, ColAcidicFoodConsumption, ColCalciumVitaminDLevel,
	ColProcessedFoodIntake, ColWaterFluoridation,
	ColBrushingFrequency, ColBrushingDuration, ColBrushingTechnique,
	ColFlossingFrequency, ColMouthwashUse, ColTongueCleaning, ColToothbrushType,
	ColSmokingStatus, ColPackYears, ColVapingFrequency, ColAlcoholConsumption,
	ColBetelNutUse,
	ColCavitiesCount, ColGumDiseaseStatus, ColToothLossCount, ColRootCanalsFillings,
	ColBruxismStatus, ColDryMouthFrequency, ColDiabetesStatus, ColAutoimmuneCondition,
	ColSalivaryPH, ColSMutansLevel, ColPGingivalisLevel, ColGeneticRiskScore,
	ColDentalVisitFrequency, ColLastDentalCheckup, ColDentalInsurance,
	ColStressLevel, ColEducationLevel,
	ColOccupation, ColMedicationUse,
}

// ---------------------------------------------------------------------------
// Enumerated value sets
// ---------------------------------------------------------------------------

// Life stage buckets derived from Chronological_Age.
const (
	AgeGroupChild  = "child"
	AgeGroupTeen   = "teen"
	AgeGroupAdult  = "adult"
	AgeGroupSenior = "senior"
)

const (
	SmokingCurrent = "current"
	SmokingFormer  = "former"
	SmokingNever   = "never"
)

var (
	AgeGroups = []string{AgeGroupChild, AgeGroupTeen, AgeGroupAdult, AgeGroupSenior}

	HormonalStages = []string{
		"pre-puberty", "puberty", "post-puberty",
		"none", "menstrual cycle", "pregnancy", "post-pregnancy",
		"menopause", "andropause",
	}

	ProcessedFoodLevels = []string{"low", "medium", "high"}

	BrushingTechniques = []string{"Bass method", "circular", "horizontal scrub", "none"}

	ToothbrushTypes = []string{"manual-soft", "manual-medium", "manual-hard", "electric"}

	SmokingStatuses = []string{SmokingCurrent, SmokingFormer, SmokingNever}

	VapingFrequencies = []string{"never", "occasional", "daily"}

	GumDiseaseStatuses = []string{"none", "gingivitis", "periodontitis"}

	BruxismStatuses = []string{"none", "mild", "moderate", "severe"}

	DryMouthFrequencies = []string{"none", "occasional", "frequent"}

	DiabetesStatuses = []string{"none", "prediabetes", "type 1", "type 2"}

	EducationLevels = []string{
		"less than high school",
		"high school",
		"college",
		"graduate degree",
	}
)

// ---------------------------------------------------------------------------
// Record
// ---------------------------------------------------------------------------

// Record is one synthetic patient. Field order matches Columns.
type Record struct {
	// Age & life stage
	ChronologicalAge int    `json:"Chronological_Age"`
	AgeGroup         string `json:"Age_Group"`
	HormonalStage    string `json:"Hormonal_Stage"`

	// Diet & nutrition
	SugarIntakeFrequency  float64 `json:"Sugar_Intake_Frequency"`
	AcidicFoodConsumption float64 `json:"Acidic_Food_Consumption"`
	CalciumVitaminDLevel  float64 `json:"Calcium_VitaminD_Level"` // mg/dL
	ProcessedFoodIntake   string  `json:"Processed_Food_Intake"`
	WaterFluoridation     bool    `json:"Water_Fluoridation"`

	// Oral hygiene
	BrushingFrequency int    `json:"Brushing_Frequency"`
	BrushingDuration  int    `json:"Brushing_Duration"` // seconds
	BrushingTechnique string `json:"Brushing_Technique"`
	FlossingFrequency int    `json:"Flossing_Frequency"`
	MouthwashUse      bool   `json:"Mouthwash_Use"`
	TongueCleaning    bool   `json:"Tongue_Cleaning"`
	ToothbrushType    string `json:"Toothbrush_Type"`

	// Smoking & substance use
	SmokingStatus      string  `json:"Smoking_Status"`
	PackYears          float64 `json:"Pack_Years"`
	VapingFrequency    string  `json:"Vaping_Frequency"`
	AlcoholConsumption int     `json:"Alcohol_Consumption"`
	BetelNutUse        bool    `json:"Betel_Nut_Use"`

	// Dental & medical history
	CavitiesCount       int    `json:"Cavities_Count"`
	GumDiseaseStatus    string `json:"Gum_Disease_Status"`
	ToothLossCount      int    `json:"Tooth_Loss_Count"`
	RootCanalsFillings  int    `json:"RootCanals_Fillings_Count"`
	BruxismStatus       string `json:"Bruxism_Status"`
	DryMouthFrequency   string `json:"Dry_Mouth_Frequency"`
	DiabetesStatus      string `json:"Diabetes_Status"`
	AutoimmuneCondition bool   `json:"Autoimmune_Condition"`

	// Biomarkers & genetics
	SalivaryPH       float64 `json:"Salivary_pH"`
	SMutansLevel     float64 `json:"S_mutans_Level"`     // CFU/mL
	PGingivalisLevel float64 `json:"P_gingivalis_Level"` // CFU/mL
	GeneticRiskScore int     `json:"Genetic_Risk_Score"`

	// Behavioral & socioeconomic
	DentalVisitFrequency int    `json:"Dental_Visit_Frequency"`
	LastDentalCheckup    int    `json:"Last_Dental_Checkup"` // months
	DentalInsurance      bool   `json:"Dental_Insurance"`
	StressLevel          int    `json:"Stress_Level"`
	EducationLevel       string `json:"Education_Level"`

	// Environment & lifestyle
	Occupation    string `json:"Occupation"`
	MedicationUse bool   `json:"Medication_Use"`
}

// Row returns the record's values in Columns order.
func (r Record) Row() []interface{} {
	return []interface{}{
		r.ChronologicalAge, r.AgeGroup, r.HormonalStage,
		r.SugarIntakeFrequency, r.AcidicFoodConsumption, r.CalciumVitaminDLevel,
		r.ProcessedFoodIntake, r.WaterFluoridation,
		r.BrushingFrequency, r.BrushingDuration, r.BrushingTechnique,
		r.FlossingFrequency, r.MouthwashUse, r.TongueCleaning, r.ToothbrushType,
		r.SmokingStatus, r.PackYears, r.VapingFrequency, r.AlcoholConsumption,
		r.BetelNutUse,
		r.CavitiesCount, r.GumDiseaseStatus, r.ToothLossCount, r.RootCanalsFillings,
		r.BruxismStatus, r.DryMouthFrequency, r.DiabetesStatus, r.AutoimmuneCondition,
		r.SalivaryPH, r.SMutansLevel, r.PGingivalisLevel, r.GeneticRiskScore,
		r.DentalVisitFrequency, r.LastDentalCheckup, r.DentalInsurance,
		r.StressLevel, r.EducationLevel,
		r.Occupation, r.MedicationUse,
	}
}

// Map returns the record as a column name to value mapping.
func (r Record) Map() map[string]interface{} {
	row := r.Row()
	m := make(map[string]interface{}, len(Columns))
	for i, col := range Columns {
		m[col] = row[i]
	}
	return m
}
