package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/kaitongg-bit/course-pilot/storage"
)

func TestCourseBasics(t *testing.T) {
	courseRepo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { courseRepo.Close(); backend.Close() }()

	ctx := context.Background()

	course := &core.Course{
		Code:     "15-112",
		Name:     "Fundamentals of Programming",
		Document: "Course: 15-112 | Title: Fundamentals of Programming",
		Vector:   []float32{0.1, 0.2, 0.3},
	}

	added, err := courseRepo.AddCourses(ctx, course)
	if err != nil {
		t.Fatalf("Failed to add course: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := courseRepo.GetCourse(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get course: %v", err)
	}

	if retrieved.Code != "15-112" {
		t.Fatalf("Expected '15-112', got '%s'", retrieved.Code)
	}

	byCode, err := courseRepo.GetCourseByCode(ctx, "15-112")
	if err != nil {
		t.Fatalf("Failed to get course by code: %v", err)
	}

	if byCode.Id != added[0].Id {
		t.Fatalf("Expected ID %d, got %d", added[0].Id, byCode.Id)
	}
}

func TestCourseContentIDUpsert(t *testing.T) {
	courseRepo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { courseRepo.Close(); backend.Close() }()

	ctx := context.Background()

	// Adding the same content twice must not create a second record
	first := &core.Course{Code: "15-213", Document: "Course: 15-213"}
	second := &core.Course{Code: "15-213", Document: "Course: 15-213"}

	if _, err := courseRepo.AddCourses(ctx, first); err != nil {
		t.Fatalf("Failed to add course: %v", err)
	}
	if _, err := courseRepo.AddCourses(ctx, second); err != nil {
		t.Fatalf("Failed to re-add course: %v", err)
	}

	if first.Id != second.Id {
		t.Fatalf("Expected same content-based ID, got %d and %d", first.Id, second.Id)
	}

	count, err := courseRepo.CountCourses(ctx)
	if err != nil {
		t.Fatalf("Failed to count courses: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 course after re-add, got %d", count)
	}
}

func TestUpdateCourses(t *testing.T) {
	courseRepo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { courseRepo.Close(); backend.Close() }()

	ctx := context.Background()

	course := &core.Course{Code: "10-601", Name: "Machine Learning", Document: "ml"}
	added, err := courseRepo.AddCourses(ctx, course)
	if err != nil {
		t.Fatalf("Failed to add course: %v", err)
	}

	added[0].Name = "Introduction to Machine Learning"
	updated, err := courseRepo.UpdateCourses(ctx, added[0])
	if err != nil {
		t.Fatalf("Failed to update course: %v", err)
	}

	if updated[0].UpdatedAt.Before(updated[0].InsertedAt) {
		t.Fatal("Expected UpdatedAt >= InsertedAt")
	}

	retrieved, err := courseRepo.GetCourse(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get course: %v", err)
	}
	if retrieved.Name != "Introduction to Machine Learning" {
		t.Fatalf("Expected updated name, got '%s'", retrieved.Name)
	}
}

func TestUpdateCourses_NotFound(t *testing.T) {
	courseRepo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { courseRepo.Close(); backend.Close() }()

	missing := &core.Course{Id: core.ID(12345), Code: "99-999"}
	_, err = courseRepo.UpdateCourses(context.Background(), missing)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCourses(t *testing.T) {
	courseRepo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { courseRepo.Close(); backend.Close() }()

	ctx := context.Background()

	course := &core.Course{Code: "21-127", Document: "concepts of math"}
	added, err := courseRepo.AddCourses(ctx, course)
	if err != nil {
		t.Fatalf("Failed to add course: %v", err)
	}

	if err := courseRepo.DeleteCourses(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete course: %v", err)
	}

	if _, err := courseRepo.GetCourse(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	// Code index entry must be gone too
	if _, err := courseRepo.GetCourseByCode(ctx, "21-127"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for deleted code, got %v", err)
	}
}

func TestListCourses(t *testing.T) {
	courseRepo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { courseRepo.Close(); backend.Close() }()

	ctx := context.Background()

	empty, err := courseRepo.ListCourses(ctx)
	if err != nil {
		t.Fatalf("Failed to list empty store: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("Expected 0 courses, got %d", len(empty))
	}

	_, err = courseRepo.AddCourses(ctx,
		&core.Course{Code: "15-112", Document: "fundamentals"},
		&core.Course{Code: "15-213", Document: "systems"},
		&core.Course{Code: "10-601", Document: "ml"},
	)
	if err != nil {
		t.Fatalf("Failed to add courses: %v", err)
	}

	all, err := courseRepo.ListCourses(ctx)
	if err != nil {
		t.Fatalf("Failed to list courses: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 courses, got %d", len(all))
	}

	codes := map[string]bool{}
	for _, c := range all {
		codes[c.Code] = true
	}
	for _, want := range []string{"15-112", "15-213", "10-601"} {
		if !codes[want] {
			t.Fatalf("Expected listing to contain %s", want)
		}
	}
}

func TestGetCourses_SkipsMissing(t *testing.T) {
	courseRepo, backend, err := NewMemoryRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { courseRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := courseRepo.AddCourses(ctx, &core.Course{Code: "05-391", Document: "hci"})
	if err != nil {
		t.Fatalf("Failed to add course: %v", err)
	}

	courses, err := courseRepo.GetCourses(ctx, added[0].Id, core.ID(777777))
	if err != nil {
		t.Fatalf("Failed to get courses: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("Expected 1 course, got %d", len(courses))
	}
}
