package types

// FieldDefinition is one store-configured displayable grade field. The set
// of fields is data, not schema: it is reloaded from the store on every
// request and drives which attributes of a student row are exposed.
type FieldDefinition struct {
	Key      string `json:"field"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// GradeItem is one disclosed-or-pending field in a student's grade report.
// Value is either a normalized scalar or the not-published sentinel string.
type GradeItem struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Value    any    `json:"value"`
	Order    int    `json:"order"`
}

// DisclosureReport is the assembled grade list for one student.
// HasUndisclosed is true iff at least one item carries the sentinel.
type DisclosureReport struct {
	Items          []GradeItem `json:"items"`
	HasUndisclosed bool        `json:"hasUndisclosed"`
}

// ClassworkItem mirrors GradeItem for the classwork surface, which never
// exposes the raw field key.
type ClassworkItem struct {
	Label    string `json:"label"`
	Category string `json:"category"`
	Value    any    `json:"value"`
	Order    int    `json:"order"`
}
