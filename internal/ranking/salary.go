package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// SalaryMethodRuleBased names the estimator in salary predictions.
const SalaryMethodRuleBased = "rule-based"

const (
	baseSalary          = 60000.0
	salaryPerSkillBoost = 0.05
)

var experienceSalaryMultipliers = map[string]float64{
	types.ExperienceEntry:     1.0,
	types.ExperienceMid:       1.4,
	types.ExperienceSenior:    1.8,
	types.ExperienceExecutive: 2.5,
}

var industrySalaryMultipliers = map[string]float64{
	"Software":   1.3,
	"AI/ML":      1.4,
	"Fintech":    1.3,
	"Healthcare": 1.1,
	"Education":  0.9,
	"Media":      1.0,
}

// locationSalaryMultipliers is ordered; the first city found in the location applies.
var locationSalaryMultipliers = []struct {
	city       string
	multiplier float64
}{
	{"San Francisco", 1.4},
	{"New York", 1.3},
	{"Seattle", 1.2},
	{"Austin", 1.1},
	{"Boston", 1.2},
	{"Remote", 1.1},
}

// PredictSalary estimates a salary from a base figure scaled by experience,
// industry, location and skill count.
func PredictSalary(req *types.SalaryPredictionRequest) types.SalaryPrediction {
	salary := baseSalary

	if m, ok := experienceSalaryMultipliers[req.Experience]; ok {
		salary *= m
	}
	if m, ok := industrySalaryMultipliers[req.Industry]; ok {
		salary *= m
	}

	location := strings.ToLower(req.Location)
	for _, entry := range locationSalaryMultipliers {
		if location != "" && strings.Contains(location, strings.ToLower(entry.city)) {
			salary *= entry.multiplier
			break
		}
	}

	skillCount := 0
	for _, s := range req.Skills {
		if strings.TrimSpace(s) != "" {
			skillCount++
		}
	}
	salary *= 1 + float64(skillCount)*salaryPerSkillBoost

	return types.SalaryPrediction{
		PredictedSalary: int(math.Round(salary)),
		Method:          SalaryMethodRuleBased,
	}
}
