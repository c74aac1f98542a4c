package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored course records.
// It is generated by content-based hashing of the raw catalog row, so the
// same row always maps to the same record even across re-seeds.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Course is a single catalog entry. It is constructed once at load time and
// never mutated afterwards; concurrent readers need no synchronization.
type Course struct {
	Id           ID
	Code         string // stable display identifier, e.g. "15-112"
	Name         string
	Description  string
	Industry     string
	Level        string
	Skills       []string
	Tags         []string // industry followed by skills, display order preserved
	Keywords     string
	MeetingDays  []string // single-letter day codes: M T W R F S U
	MeetingSlots []string // half-hour labels "H:MM AM/PM", end exclusive
	MeetingTime  string   // display string, "TBA" when unscheduled
	Document     string   // searchable text built from the fields above
	Vector       []float32
	Raw          map[string]string // source row preserved verbatim
	InsertedAt   time.Time
	UpdatedAt    time.Time
}

// Scheduled reports whether the course has a known meeting schedule.
// MeetingDays and MeetingSlots are either both empty or both non-empty.
func (c *Course) Scheduled() bool {
	return len(c.MeetingDays) > 0 && len(c.MeetingSlots) > 0
}

// Review is a single raw review record. Invalid numeric fields are replaced
// with defaults at load time; the record itself is always retained for display.
type Review struct {
	CourseCode string `json:"-"`
	RowId      string `json:"id"`
	Author     string `json:"author"`
	Semester   string `json:"semester"`
	Rating     int    `json:"rating"`
	Comment    string `json:"text"`
	Workload   string `json:"workload"`
	Workflow   string `json:"workflow"`
	Interest   int    `json:"interest"`
	Utility    int    `json:"utility"`
}

// ReviewAggregate holds per-course summary statistics computed once after all
// reviews are loaded. Zero values mean "no valid samples" and callers
// substitute defaults.
type ReviewAggregate struct {
	AvgRating        float64 // mean of valid ratings, rounded to 1 decimal
	AvgWorkloadHours float64 // mean of valid positive workload hours
	ReviewCount      int
}

// Profile is the free-text user profile a match request is built from.
type Profile struct {
	Goal   string
	Skills []string
	Resume string
}

// QueryText joins the non-empty profile fragments into one query string.
func (p *Profile) QueryText() string {
	parts := make([]string, 0, len(p.Skills)+2)
	if strings.TrimSpace(p.Goal) != "" {
		parts = append(parts, strings.TrimSpace(p.Goal))
	}
	for _, s := range p.Skills {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	if strings.TrimSpace(p.Resume) != "" {
		parts = append(parts, strings.TrimSpace(p.Resume))
	}
	return strings.Join(parts, " ")
}

// Availability maps a day code to the set of half-hour slots the user is free.
// An empty map means "no schedule constraint".
type Availability map[string]map[string]bool

// Allows reports whether the given slot on the given day is available.
func (a Availability) Allows(day, slot string) bool {
	slots, ok := a[day]
	return ok && slots[slot]
}

// Candidate is a similarity-search hit: a course code with its semantic
// similarity to the query, in [0,1] with higher meaning more similar.
type Candidate struct {
	Code       string
	Similarity float32
}

// ScoredCourse pairs a course with its final hybrid score.
type ScoredCourse struct {
	Course *Course
	Score  float32
}

// CourseResult is the enriched response payload for a single ranked course.
type CourseResult struct {
	CourseId      string            `json:"course_id"`
	CourseName    string            `json:"course_name"`
	Rating        float64           `json:"rating"`
	MatchPercent  int               `json:"match_percent"`
	WorkloadLabel string            `json:"workload_label"`
	Level         string            `json:"level"`
	Tags          []string          `json:"tags"`
	Summary       string            `json:"ai_summary"`
	Reviews       []Review          `json:"reviews"`
	Industry      string            `json:"industry"`
	MeetingTime   string            `json:"meetingTime"`
	Days          []string          `json:"days"`
	Times         []string          `json:"times"`
	Raw           map[string]string `json:"raw"`
}
