package badger

import (
	"fmt"

	"github.com/kaitongg-bit/course-pilot/core"
)

// Key prefixes for different data types
const (
	courseRecordPrefix = "courec"
	courseCodePrefix   = "coucod"
)

// makeCourseKey generates a key for a course record by ID.
func makeCourseKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", courseRecordPrefix, id))
}

// makeCourseCodeKey generates a key for the course code index.
// Format: prefix:code
func makeCourseCodeKey(code string) []byte {
	return []byte(courseCodePrefix + ":" + code)
}
