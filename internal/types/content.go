package types

// Term is one academic term as stored in the content base.
type Term struct {
	Name       string `json:"name"`
	Year       int    `json:"year"`
	Semester   string `json:"semester"`
	IsActive   bool   `json:"isActive"`
	TermNumber int    `json:"termNumber"`
}

// Teacher is one course instructor.
type Teacher struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Title string `json:"title"`
}

// Course is a course joined with its term and teacher references.
type Course struct {
	ID      string  `json:"id"`
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	URL     string  `json:"url"`
	Term    Term    `json:"term"`
	Teacher Teacher `json:"teacher"`
	Level   string  `json:"level"`
	Section string  `json:"section"`
	URL2    string  `json:"url2,omitempty"`
	Airbase string  `json:"airbase,omitempty"`
}

// Publication is one paper from the content base.
type Publication struct {
	ID        string   `json:"id"`
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Journal   string   `json:"journal,omitempty"`
	Volume    any      `json:"volume,omitempty"`
	Number    any      `json:"number,omitempty"`
	Pages     any      `json:"pages,omitempty"`
	Year      int      `json:"year,omitempty"`
	ArticleID string   `json:"article_id,omitempty"`
	Published bool     `json:"published"`
	Accepted  bool     `json:"accepted"`
	DOI       string   `json:"doi,omitempty"`
}

// Employment is one employment record with derived service fields.
type Employment struct {
	ID             string `json:"id"`
	Position       string `json:"position"`
	Address        string `json:"address"`
	StartYear      string `json:"startYear"`
	EndYear        string `json:"endYear"`
	Duration       string `json:"duration"`
	IsCurrent      bool   `json:"isCurrent"`
	YearsOfService int    `json:"yearsOfService,omitempty"`
}

// Education is one education record with degree and location extracted from
// the free-text description.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
	Degree      string `json:"degree"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Project is one research project parsed out of its grant description.
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
	StartDate     string   `json:"startDate,omitempty"`
	EndDate       string   `json:"endDate,omitempty"`
	Collaborators []string `json:"collaborators,omitempty"`
	Order         int      `json:"order"`
	Duration      int      `json:"duration,omitempty"`
	GrantInfo     string   `json:"grantInfo,omitempty"`
}
