package catalog

// Row is a single raw tabular record, keyed by column name.
// Missing columns and empty strings are treated the same.
type Row map[string]string

// Column name sets, in lookup priority order. The data has drifted across
// exports, so each canonical field tolerates its historical spellings.
var (
	codeColumns        = []string{"course_id", "courseId", "id"}
	nameColumns        = []string{"course_name", "title", "name"}
	descriptionColumns = []string{"description_clean", "description"}
	industryColumns    = []string{"industry"}
	levelColumns       = []string{"level"}
	skillsColumns      = []string{"skills"}
	keywordsColumns    = []string{"keywords"}
	weekdayColumns     = []string{"weekday", "days"}
	startColumns       = []string{"start", "start_time"}
	endColumns         = []string{"end", "end_time"}
)

// lookup returns the first non-empty value among the given columns.
func (r Row) lookup(columns []string) string {
	for _, col := range columns {
		if v, ok := r[col]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Code returns the canonical course identifier column.
func (r Row) Code() string { return r.lookup(codeColumns) }

// Name returns the canonical course name column.
func (r Row) Name() string { return r.lookup(nameColumns) }

// Description prefers the cleaned description over the raw one.
func (r Row) Description() string { return r.lookup(descriptionColumns) }

// Industry returns the industry column.
func (r Row) Industry() string { return r.lookup(industryColumns) }

// Level returns the level column.
func (r Row) Level() string { return r.lookup(levelColumns) }

// Skills returns the raw, possibly stringified, skills column.
func (r Row) Skills() string { return r.lookup(skillsColumns) }

// Keywords returns the keywords column.
func (r Row) Keywords() string { return r.lookup(keywordsColumns) }

// Weekday returns the weekday column, e.g. "MWF".
func (r Row) Weekday() string { return r.lookup(weekdayColumns) }

// Start returns the meeting start time column.
func (r Row) Start() string { return r.lookup(startColumns) }

// End returns the meeting end time column.
func (r Row) End() string { return r.lookup(endColumns) }
