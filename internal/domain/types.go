package domain

// Profile is the full structured résumé document backing all retrieval.
// It is loaded once at startup and never mutated afterwards.
type Profile struct {
	Personal                Personal         `json:"personal"`
	Links                   Links            `json:"links"`
	Summary                 string           `json:"summary"`
	Education               []Education      `json:"education"`
	Experience              []Experience     `json:"experience"`
	TechnicalProjects       []Project        `json:"technicalProjects"`
	Skills                  Skills           `json:"skills"`
	TeamsAndAccomplishments []Accomplishment `json:"teamsAndAccomplishments"`
}

// Personal holds identity and contact fields.
type Personal struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Links holds public profile URLs.
type Links struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// Education is a single degree entry.
type Education struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Location       string   `json:"location"`
	GraduationDate string   `json:"graduationDate"`
	GPA            string   `json:"gpa"`
	Coursework     []string `json:"coursework"`
}

// Experience is a single employment entry.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Duration         string   `json:"duration"`
	Upcoming         bool     `json:"upcoming"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
}

// Project is a single technical project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Link         string   `json:"link"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
}

// Skills groups all skill entries by sub-category.
type Skills struct {
	ProgrammingLanguages   []Skill  `json:"programmingLanguages"`
	FrameworksAndLibraries []Skill  `json:"frameworksAndLibraries"`
	DatabasesAndStorage    []string `json:"databasesAndStorage"`
	ToolsAndPlatforms      []string `json:"toolsAndPlatforms"`
	Methodologies          []string `json:"methodologies"`
}

// Skill is a named skill with a proficiency label ("Expert", "Proficient", ...).
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Accomplishment is a team or individual accomplishment entry.
type Accomplishment struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SkillGroup is a rendered skills sub-category used as a chunk parent.
type SkillGroup struct {
	Category string
	Items    []string
}
