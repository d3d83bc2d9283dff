package domain

// Sections are the content areas a feature card or quick action can open.
var Sections = []string{"learn", "certify", "match", "community"}

// ValidSection returns true if s names one of the four content sections.
func ValidSection(s string) bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// CategoryAll is the pseudo-category that matches every course.
const CategoryAll = "All"

// Stat is a headline number with an optional trend line.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Trend string `yaml:"trend,omitempty"`
}

// Feature is a landing page card linking to a section.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Section     string `yaml:"section"`
}

// Landing is the copy for the landing page.
type Landing struct {
	Badge       string    `yaml:"badge"`
	Headline    string    `yaml:"headline"`
	Subheadline string    `yaml:"subheadline"`
	Stats       []Stat    `yaml:"stats"`
	WhyTitle    string    `yaml:"why_title"`
	WhyBody     string    `yaml:"why_body"`
	Benefits    []string  `yaml:"benefits"`
	Placement   Stat      `yaml:"placement"`
	Features    []Feature `yaml:"features"`
	CTATitle    string    `yaml:"cta_title"`
	CTABody     string    `yaml:"cta_body"`
	Footer      string    `yaml:"footer"`
}

// Course is a Learn listing.
type Course struct {
	Title      string  `yaml:"title"`
	Instructor string  `yaml:"instructor"`
	Duration   string  `yaml:"duration"`
	Rating     float64 `yaml:"rating"`
	Students   string  `yaml:"students"`
	Category   string  `yaml:"category"`
	Level      string  `yaml:"level"`
}

// Learn is the content of the Learn section.
type Learn struct {
	Tagline    string   `yaml:"tagline"`
	Categories []string `yaml:"categories"`
	Courses    []Course `yaml:"courses"`
}

// HasCategory reports whether category is listed.
func (l Learn) HasCategory(category string) bool {
	for _, c := range l.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// CoursesIn returns the courses in category. CategoryAll and the empty
// string return every course.
func (l Learn) CoursesIn(category string) []Course {
	if category == "" || category == CategoryAll {
		return l.Courses
	}
	var out []Course
	for _, c := range l.Courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Benefit is a short selling point.
type Benefit struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// Certification is a Certify listing.
type Certification struct {
	Title    string `yaml:"title"`
	Provider string `yaml:"provider"`
	Duration string `yaml:"duration"`
	Exams    int    `yaml:"exams"`
	Badge    string `yaml:"badge"`
	Verified bool   `yaml:"verified"`
}

// Certify is the content of the Certify section.
type Certify struct {
	Tagline        string          `yaml:"tagline"`
	Benefits       []Benefit       `yaml:"benefits"`
	Certifications []Certification `yaml:"certifications"`
}

// Job is a Match listing.
type Job struct {
	Title    string   `yaml:"title"`
	Company  string   `yaml:"company"`
	Location string   `yaml:"location"`
	Salary   string   `yaml:"salary"`
	Type     string   `yaml:"type"`
	Remote   bool     `yaml:"remote"`
	Match    int      `yaml:"match"`
	Skills   []string `yaml:"skills"`
	Posted   string   `yaml:"posted"`
}

// Match is the content of the Match section.
type Match struct {
	Tagline string `yaml:"tagline"`
	Stats   []Stat `yaml:"stats"`
	Jobs    []Job  `yaml:"jobs"`
}

// Discussion is a trending community thread.
type Discussion struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Replies  int    `yaml:"replies"`
	Likes    int    `yaml:"likes"`
	Category string `yaml:"category"`
	Avatar   string `yaml:"avatar"`
}

// Event is an upcoming community event.
type Event struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Time      string `yaml:"time"`
	Attendees int    `yaml:"attendees"`
	Type      string `yaml:"type"`
}

// Mentor is a featured community mentor.
type Mentor struct {
	Name   string  `yaml:"name"`
	Role   string  `yaml:"role"`
	Rating float64 `yaml:"rating"`
	Avatar string  `yaml:"avatar"`
}

// Community is the content of the Community section.
type Community struct {
	Tagline     string       `yaml:"tagline"`
	Discussions []Discussion `yaml:"discussions"`
	Events      []Event      `yaml:"events"`
	Stats       []Stat       `yaml:"stats"`
	Mentors     []Mentor     `yaml:"mentors"`
}

// QuickAction is a dashboard shortcut into a section.
type QuickAction struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
}

// Activity is a recent dashboard event.
type Activity struct {
	Action  string `yaml:"action"`
	Subject string `yaml:"subject"`
	Time    string `yaml:"time"`
	Icon    string `yaml:"icon"`
}

// RecommendedJob is a short job match shown on the dashboard.
type RecommendedJob struct {
	Title   string `yaml:"title"`
	Company string `yaml:"company"`
	Match   int    `yaml:"match"`
}

// Dashboard is the content of the signed-in dashboard.
type Dashboard struct {
	Tagline         string           `yaml:"tagline"`
	QuickActions    []QuickAction    `yaml:"quick_actions"`
	Stats           []Stat           `yaml:"stats"`
	RecentActivity  []Activity       `yaml:"recent_activity"`
	RecommendedJobs []RecommendedJob `yaml:"recommended_jobs"`
}
