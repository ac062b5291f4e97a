package entity

type PracticeTest struct {
	Title     string `json:"title"`
	Questions int    `json:"questions"`
	Duration  string `json:"duration"`
	Color     string `json:"color"`
}

type Job struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Salary   string   `json:"salary"`
	Tags     []string `json:"tags"`
}

// Initial is the first letter of the company, used as the job card's logo.
func (j Job) Initial() string {
	for _, r := range j.Company {
		return string(r)
	}
	return ""
}

type CourseProgress struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

type ProfileStat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type Profile struct {
	Name      string           `json:"name"`
	Initials  string           `json:"initials"`
	Headline  string           `json:"headline"`
	Level     string           `json:"level"`
	Rank      int              `json:"rank"`
	Stats     []ProfileStat    `json:"stats"`
	Courses   []CourseProgress `json:"courses"`
	Bookmarks []string         `json:"bookmarks"`
}
