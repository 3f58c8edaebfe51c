package types

// Assignment is one released course assignment.
type Assignment struct {
	AssignmentID     string `json:"assignment_id"`
	Title            string `json:"title"`
	AssignmentURL    string `json:"assignment_url"`
	DueDate          string `json:"due_date"`
	PointsMax        int    `json:"points_max"`
	SolutionReleased bool   `json:"solution_released"`
	SolutionURL      string `json:"solution_url,omitempty"`
}

// Release describes one desktop updater release artifact.
type Release struct {
	URL       string `json:"url"`
	Version   string `json:"version"`
	Notes     string `json:"notes"`
	PubDate   string `json:"pub_date"`
	Signature string `json:"signature"`
}

// AccessUser is the owner of a still-valid access code.
type AccessUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
