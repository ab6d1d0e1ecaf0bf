package sandbox

import (
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// ---------------------------------------------------------------------------
// Weighted pools
// ---------------------------------------------------------------------------

type weightedPool struct {
	values  []string
	weights []float64
}

var (
	smokingPool = weightedPool{
		values:  SmokingStatuses,
		weights: []float64{0.2, 0.3, 0.5},
	}
	gumDiseasePool = weightedPool{
		values:  GumDiseaseStatuses,
		weights: []float64{0.6, 0.3, 0.1},
	}
	bruxismPool = weightedPool{
		values:  BruxismStatuses,
		weights: []float64{0.7, 0.15, 0.1, 0.05},
	}
	dryMouthPool = weightedPool{
		values:  DryMouthFrequencies,
		weights: []float64{0.6, 0.3, 0.1},
	}
	diabetesPool = weightedPool{
		values:  DiabetesStatuses,
		weights: []float64{0.8, 0.1, 0.05, 0.05},
	}

	teenStages   = []string{"puberty", "post-puberty"}
	adultStages  = []string{"none", "menstrual cycle", "pregnancy", "post-pregnancy"}
	seniorStages = []string{"menopause", "andropause", "none"}
)

const betelNutRate = 0.1

// ---------------------------------------------------------------------------
// DataGenerator
// ---------------------------------------------------------------------------

// DataGenerator produces deterministic synthetic dental-health records.
type DataGenerator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewDataGenerator returns a generator seeded for reproducibility. If seed is
// 0 a time-based seed is chosen.
func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
	}
}

// intBetween returns a uniform integer in [lo, hi].
func (g *DataGenerator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *DataGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *DataGenerator) coin() bool {
	return g.rng.Intn(2) == 0
}

func (g *DataGenerator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *DataGenerator) pickWeighted(p weightedPool) string {
	var total float64
	for _, w := range p.weights {
		total += w
	}
	x := g.rng.Float64() * total
	for i, w := range p.weights {
		if x < w {
			return p.values[i]
		}
		x -= w
	}
	return p.values[len(p.values)-1]
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// lifeStage buckets an age and samples the hormonal stage allowed for it.
func (g *DataGenerator) lifeStage(age int) (group, hormonal string) {
	switch {
	case age < 13:
		return AgeGroupChild, "pre-puberty"
	case age < 20:
		return AgeGroupTeen, g.pick(teenStages)
	case age < 65:
		if g.coin() {
			return AgeGroupAdult, g.pick(adultStages)
		}
		return AgeGroupAdult, "none"
	default:
		return AgeGroupSenior, g.pick(seniorStages)
	}
}

// GenerateRecord samples one synthetic patient. Fields are drawn in column
// order so the random stream, and therefore the dataset, is stable per seed.
func (g *DataGenerator) GenerateRecord() Record {
	var r Record

	r.ChronologicalAge = g.intBetween(1, 90)
	r.AgeGroup, r.HormonalStage = g.lifeStage(r.ChronologicalAge)

	r.SugarIntakeFrequency = round1(g.uniform(0.5, 8))
	r.AcidicFoodConsumption = round1(g.uniform(0, 10))
	r.CalciumVitaminDLevel = round1(g.uniform(2, 15))
	r.ProcessedFoodIntake = g.pick(ProcessedFoodLevels)
	r.WaterFluoridation = g.coin()

	r.BrushingFrequency = g.intBetween(0, 3)
	if r.BrushingFrequency > 0 {
		r.BrushingDuration = g.intBetween(30, 180)
	}
	r.BrushingTechnique = g.pick(BrushingTechniques)
	r.FlossingFrequency = g.intBetween(0, 7)
	r.MouthwashUse = g.coin()
	r.TongueCleaning = g.coin()
	r.ToothbrushType = g.pick(ToothbrushTypes)

	r.SmokingStatus = g.pickWeighted(smokingPool)
	r.VapingFrequency = "never"
	if r.SmokingStatus != SmokingNever {
		r.PackYears = round1(g.uniform(0, 50))
		r.VapingFrequency = g.pick(VapingFrequencies)
	}
	r.AlcoholConsumption = g.intBetween(0, 21)
	r.BetelNutUse = g.rng.Float64() < betelNutRate

	r.CavitiesCount = g.intBetween(0, 20)
	r.GumDiseaseStatus = g.pickWeighted(gumDiseasePool)
	r.ToothLossCount = g.intBetween(0, 32)
	r.RootCanalsFillings = g.intBetween(0, 10)
	r.BruxismStatus = g.pickWeighted(bruxismPool)
	r.DryMouthFrequency = g.pickWeighted(dryMouthPool)
	r.DiabetesStatus = g.pickWeighted(diabetesPool)
	r.AutoimmuneCondition = g.coin()

	r.SalivaryPH = round1(g.uniform(5.5, 7.5))
	r.SMutansLevel = math.Round(g.uniform(0, 1e6))
	r.PGingivalisLevel = math.Round(g.uniform(0, 1e5))
	r.GeneticRiskScore = g.intBetween(1, 10)

	r.DentalVisitFrequency = g.intBetween(0, 4)
	r.LastDentalCheckup = g.intBetween(0, 60)
	r.DentalInsurance = g.coin()
	r.StressLevel = g.intBetween(1, 10)
	r.EducationLevel = g.pick(EducationLevels)

	r.Occupation = g.faker.JobTitle()
	r.MedicationUse = g.coin()

	return r
}
