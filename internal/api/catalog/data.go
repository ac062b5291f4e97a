package catalog

import "camonk/internal/entity"

var practiceTests = []entity.PracticeTest{
	{Title: "Financial Reporting (FR)", Questions: 50, Duration: "90 min", Color: "indigo"},
	{Title: "Strategic Financial Mgmt", Questions: 40, Duration: "60 min", Color: "blue"},
	{Title: "Advanced Auditing", Questions: 60, Duration: "120 min", Color: "emerald"},
	{Title: "Direct Tax Laws", Questions: 45, Duration: "90 min", Color: "orange"},
	{Title: "Indirect Tax Laws", Questions: 45, Duration: "90 min", Color: "purple"},
	{Title: "Corporate & Economic Laws", Questions: 30, Duration: "45 min", Color: "pink"},
}

var jobs = []entity.Job{
	{Title: "Senior Auditor", Company: "Big Four Accounting", Location: "Mumbai", Salary: "₹18-24 LPA", Tags: []string{"HYBRID", "FULL-TIME"}},
	{Title: "Financial Controller", Company: "Tech Unicorn", Location: "Bangalore", Salary: "₹25-35 LPA", Tags: []string{"REMOTE", "URGENT"}},
	{Title: "Tax Consultant", Company: "Global Advisory", Location: "Gurugram", Salary: "₹15-20 LPA", Tags: []string{"OFFICE", "PERMANENT"}},
	{Title: "Finance Manager", Company: "Retail Group", Location: "Pune", Salary: "₹12-18 LPA", Tags: []string{"OFFICE", "FULL-TIME"}},
}

var profile = entity.Profile{
	Name:     "John Doe, CA",
	Initials: "JD",
	Headline: "Chartered Accountant • Batch of 2023",
	Level:    "Intermediate",
	Rank:     420,
	Stats: []entity.ProfileStat{
		{Label: "Blogs Read", Value: 24},
		{Label: "Practice Tests", Value: 12},
		{Label: "Job Applications", Value: 3},
	},
	Courses: []entity.CourseProgress{
		{Name: "Direct Tax Masterclass", Percent: 75},
		{Name: "Audit Documentation Course", Percent: 30},
	},
	Bookmarks: []string{
		"Understanding the New Section 194R",
		"GST Audit Checklist for FY 2024",
	},
}

// PracticeTests returns a copy so callers cannot mutate the catalog.
func PracticeTests() []entity.PracticeTest {
	return append([]entity.PracticeTest(nil), practiceTests...)
}

func Jobs() []entity.Job {
	out := make([]entity.Job, 0, len(jobs))
	for _, j := range jobs {
		j.Tags = append([]string(nil), j.Tags...)
		out = append(out, j)
	}
	return out
}

func Profile() entity.Profile {
	p := profile
	p.Stats = append([]entity.ProfileStat(nil), profile.Stats...)
	p.Courses = append([]entity.CourseProgress(nil), profile.Courses...)
	p.Bookmarks = append([]string(nil), profile.Bookmarks...)
	return p
}
