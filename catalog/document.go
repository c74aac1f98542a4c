package catalog

import (
	"strings"

	"github.com/kaitongg-bit/course-pilot/core"
)

// BuildDocument assembles the searchable text representation of a course for
// embedding. Fields are concatenated in a fixed order; empty fields are
// skipped. The identifier and name lead so that identifier queries embed
// close to their course.
func BuildDocument(course *core.Course) string {
	parts := make([]string, 0, 6)

	if course.Code != "" {
		parts = append(parts, "Course: "+course.Code)
	}
	if course.Name != "" {
		parts = append(parts, "Title: "+course.Name)
	}
	if course.Description != "" {
		parts = append(parts, "Description: "+course.Description)
	}
	if course.Industry != "" {
		parts = append(parts, "Industry: "+course.Industry)
	}
	if len(course.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(course.Skills, ", "))
	}
	if course.Keywords != "" {
		parts = append(parts, "Keywords: "+course.Keywords)
	}

	return strings.Join(parts, " | ")
}
