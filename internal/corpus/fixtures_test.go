package corpus

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/types"
)

var fixtureNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixtureJobs() []types.JobCandidate {
	return []types.JobCandidate{
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Title: "React Frontend Developer",
			Company: "Frontier", Description: "Build dashboards", Location: "Austin, TX",
			Skills: []string{"React", "JavaScript"}, Industry: "Software", Experience: types.ExperienceMid,
			JobType: types.JobTypeFullTime, Salary: types.Salary{Min: 85000, Max: 110000},
			Status: types.JobStatusActive, ViewCount: 10, ApplicationCount: 2, SaveCount: 1,
			CreatedAt: fixtureNow.AddDate(0, 0, -1),
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Title: "Backend Engineer",
			Company: "Globex", Description: "Go services", Location: "Remote",
			Skills: []string{"Go", "PostgreSQL"}, Industry: "Software", Experience: types.ExperienceSenior,
			JobType: types.JobTypeFullTime, Salary: types.Salary{Min: 130000},
			Status: types.JobStatusActive, IsRemote: true, ViewCount: 50, ApplicationCount: 1,
			CreatedAt: fixtureNow.AddDate(0, 0, -3),
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Title: "Nurse Practitioner",
			Company: "Mercy Health", Location: "Boston, MA",
			Skills: []string{"Patient Care"}, Industry: "Healthcare", Experience: types.ExperienceMid,
			JobType: types.JobTypePartTime, Salary: types.Salary{Min: 70000},
			Status: types.JobStatusActive, ViewCount: 50, ApplicationCount: 5,
			CreatedAt: fixtureNow.AddDate(0, 0, -10),
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), Title: "Closed Role",
			Company: "Initech", Location: "Austin, TX", Industry: "Software",
			Status: types.JobStatusClosed, CreatedAt: fixtureNow,
		},
		{
			ID: uuid.MustParse("00000000-0000-0000-0000-000000000005"), Title: "Data Analyst",
			Company: "Umbrella", Description: "SQL reporting 100%", Location: "Seattle, WA",
			Skills: []string{"SQL"}, Industry: "Finance", Experience: types.ExperienceEntry,
			JobType: types.JobTypeContract, WorkArrangement: types.WorkArrangementRemote,
			Salary: types.Salary{Min: 60000}, Status: types.JobStatusActive,
			CreatedAt: fixtureNow.AddDate(0, 0, -40),
		},
	}
}

func titles(jobs []types.JobCandidate) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}
