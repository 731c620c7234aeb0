package types

// UnknownName is the sentinel substituted when a category source has no name
// column, or the name cell is empty.
const UnknownName = "unknown"

// RosterRecord is one individual from the master roster. ID carries the
// normalized identifier and is the sole join key; all other fields are
// descriptive. Records are immutable once extraction has produced them.
type RosterRecord struct {
	Name      string `json:"name"`
	ID        string `json:"id_number"`
	StudentID string `json:"student_id,omitempty"`
	Class     string `json:"class,omitempty"`
	Grade     string `json:"grade,omitempty"`
	School    string `json:"school,omitempty"`
}

// CategoryRecord is one individual from a category source. Aux holds values
// from columns opportunistically captured by schemas with auxiliary capture
// enabled, keyed by header text; it is nil for every other schema.
type CategoryRecord struct {
	Name        string            `json:"name"`
	ID          string            `json:"id_number"`
	Tag         CategoryTag       `json:"category"`
	SourceLabel string            `json:"source,omitempty"`
	Aux         map[string]string `json:"aux,omitempty"`
}

// MatchResult pairs a roster record with a category record whose normalized
// identifiers are equal. It is a join projection, recomputed each run and
// never persisted.
type MatchResult struct {
	Student  RosterRecord   `json:"student"`
	Category CategoryRecord `json:"category"`
}
