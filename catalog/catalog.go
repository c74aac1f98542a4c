package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaitongg-bit/course-pilot/core"
)

// Catalog is the immutable in-memory course index, keyed by course code.
// Built once at startup; safe for concurrent readers afterwards.
type Catalog struct {
	courses []*core.Course
	byCode  map[string]*core.Course
}

// Load builds a Catalog from raw tabular rows.
//
// Each row is adapted into the canonical Course shape. Schedule and tag
// parsing fail gracefully per row: an unparseable time pair loads as an
// unscheduled course rather than aborting the whole load. Rows without a
// course identifier get a positional fallback code so they stay addressable.
func Load(rows []Row) (*Catalog, error) {
	courses := make([]*core.Course, 0, len(rows))
	byCode := make(map[string]*core.Course, len(rows))

	for idx, row := range rows {
		course := fromRow(row, idx)
		if err := core.ValidateCourse(course); err != nil {
			return nil, fmt.Errorf("row %d: %w", idx, err)
		}
		courses = append(courses, course)
		// First occurrence wins on duplicate codes.
		if _, exists := byCode[course.Code]; !exists {
			byCode[course.Code] = course
		}
	}

	return &Catalog{courses: courses, byCode: byCode}, nil
}

// fromRow adapts one raw row into a Course.
func fromRow(row Row, idx int) *core.Course {
	code := row.Code()
	if code == "" {
		code = fmt.Sprintf("course_%d", idx)
	}

	skills := DecodeTagList(row.Skills())
	tags := make([]string, 0, len(skills)+1)
	if industry := strings.TrimSpace(row.Industry()); industry != "" {
		tags = append(tags, industry)
	}
	tags = append(tags, skills...)

	days := ParseDays(row.Weekday())
	slots := ParseSlots(row.Start(), row.End())
	// The schedule invariant wants days and slots together or not at all.
	if len(days) == 0 || len(slots) == 0 {
		days, slots = nil, nil
	}

	course := &core.Course{
		Id:           core.IDFromContent(rowContent(row)),
		Code:         code,
		Name:         row.Name(),
		Description:  row.Description(),
		Industry:     strings.TrimSpace(row.Industry()),
		Level:        row.Level(),
		Skills:       skills,
		Tags:         tags,
		Keywords:     row.Keywords(),
		MeetingDays:  days,
		MeetingSlots: slots,
		MeetingTime:  MeetingTime(row.Weekday(), row.Start(), row.End()),
		Raw:          row,
	}
	course.Document = BuildDocument(course)
	return course
}

// rowContent serializes a row deterministically for content-based IDs.
func rowContent(row Row) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(row[k])
		b.WriteByte('\n')
	}
	return b.String()
}

// Courses returns all courses in load order.
// The returned slice must not be mutated.
func (c *Catalog) Courses() []*core.Course {
	return c.courses
}

// Get returns the course with the given code.
func (c *Catalog) Get(code string) (*core.Course, bool) {
	course, ok := c.byCode[code]
	return course, ok
}

// Len returns the number of loaded courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}
