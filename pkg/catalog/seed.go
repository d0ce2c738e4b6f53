// SPDX-License-Identifier: Apache-2.0

package catalog

// SeedDocument returns the built-in dataset so the binary is useful
// without any configured catalog file or database.
func SeedDocument() Document {
	return Document{
		Careers: []Career{
			{
				Name: "Data Scientist", Demand: "high", Trend: "growing",
				SalaryMin: 95000, SalaryMax: 165000,
				Skills: []string{"Python", "Statistics", "SQL", "Machine Learning"},
			},
			{
				Name: "Data Engineer", Demand: "high", Trend: "growing",
				SalaryMin: 100000, SalaryMax: 170000,
				Skills: []string{"Python", "SQL", "Data Pipelines", "Cloud Computing"},
			},
			{
				Name: "Machine Learning Engineer", Demand: "high", Trend: "growing",
				SalaryMin: 120000, SalaryMax: 190000,
				Skills: []string{"Python", "Machine Learning", "Deep Learning", "Cloud Computing"},
			},
			{
				Name: "Backend Developer", Demand: "medium", Trend: "stable",
				SalaryMin: 85000, SalaryMax: 150000,
				Skills: []string{"Go", "SQL", "Docker", "API Design"},
			},
			{
				Name: "DevOps Engineer", Demand: "high", Trend: "growing",
				SalaryMin: 95000, SalaryMax: 160000,
				Skills: []string{"Linux", "Docker", "Kubernetes", "Cloud Computing"},
			},
			{
				Name: "Technical Writer", Demand: "low", Trend: "declining",
				SalaryMin: 55000, SalaryMax: 95000,
				Skills: []string{"Writing", "API Design"},
			},
		},
		Resources: []Resource{
			{Skill: "Python", Title: "Python for Everybody", Platform: "Coursera", DurationWeeks: 6},
			{Skill: "Statistics", Title: "Introduction to Statistics", Platform: "edX", DurationWeeks: 5},
			{Skill: "SQL", Title: "SQL Bootcamp", Platform: "Udemy", DurationWeeks: 3},
			{
				Skill: "Machine Learning", Title: "Machine Learning Specialization", Platform: "Coursera",
				DurationWeeks: 10, Prerequisites: []string{"Python", "Statistics"},
			},
			{
				Skill: "Deep Learning", Title: "Deep Learning Specialization", Platform: "Coursera",
				DurationWeeks: 12, Prerequisites: []string{"Machine Learning"},
			},
			{
				Skill: "Data Pipelines", Title: "Data Engineering Nanodegree", Platform: "Udacity",
				DurationWeeks: 8, Prerequisites: []string{"SQL"},
			},
			{Skill: "Cloud Computing", Title: "AWS Cloud Practitioner Essentials", Platform: "AWS Training", DurationWeeks: 4},
			{Skill: "Go", Title: "The Go Programming Language", Platform: "Book", DurationWeeks: 6},
			{Skill: "Docker", Title: "Docker Mastery", Platform: "Udemy", DurationWeeks: 3},
			{
				Skill: "Kubernetes", Title: "Certified Kubernetes Administrator Prep", Platform: "Linux Foundation",
				DurationWeeks: 8, Prerequisites: []string{"Docker", "Linux"},
			},
			{Skill: "Linux", Title: "Linux Journey", Platform: "Self-paced", DurationWeeks: 4},
			{Skill: "API Design", Title: "Designing Web APIs", Platform: "Book", DurationWeeks: 2},
			{Skill: "Writing", Title: "Technical Writing One", Platform: "Google", DurationWeeks: 2},
		},
	}
}

// Seed builds the static catalog from the built-in dataset.
func Seed() *Static {
	s, err := NewStatic(SeedDocument())
	if err != nil {
		// The seed document is compiled in; failing validation is a bug.
		panic(err)
	}
	return s
}
