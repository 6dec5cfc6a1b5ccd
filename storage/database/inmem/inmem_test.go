package inmemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
)

func TestTutorRepository_emailUniqueness(t *testing.T) {
	ctx := context.Background()
	db := Open()
	repo := NewTutorRepository(db)

	_, err := repo.CreateTutor(ctx, tutor.Tutor{ID: "t1", Email: "jane@test.cm"})
	require.NoError(t, err)

	assert.Equal(t, tutor.ErrEmailExists, repo.CheckEmailUniqueness(ctx, "jane@test.cm"))
	assert.NoError(t, repo.CheckEmailUniqueness(ctx, "other@test.cm"))

	_, err = repo.CreateTutor(ctx, tutor.Tutor{ID: "t2", Email: "jane@test.cm"})
	assert.Equal(t, tutor.ErrEmailExists, err)
}

func TestStudentRepository_scoping(t *testing.T) {
	ctx := context.Background()
	db := Open()
	repo := NewStudentRepository(db)

	sam, err := repo.CreateStudent(ctx, student.Student{ID: "s1", TutorID: "alice", Name: "Sam"})
	require.NoError(t, err)

	got, err := repo.GetStudent(ctx, sam.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, sam, got)

	// wrong owner and unknown id fail identically
	_, err = repo.GetStudent(ctx, sam.ID, "bob")
	assert.Equal(t, student.ErrNotFound, err)
	_, err = repo.GetStudent(ctx, "nope", "alice")
	assert.Equal(t, student.ErrNotFound, err)

	byTutor, err := repo.QueryStudentsByTutor(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, byTutor)
}

func TestLessonRepository_cascades(t *testing.T) {
	ctx := context.Background()
	db := Open()
	repo := NewLessonRepository(db)

	seed := []lesson.Lesson{
		{ID: "l1", TutorID: "alice", StudentID: "s1"},
		{ID: "l2", TutorID: "alice", StudentID: "s2"},
		{ID: "l3", TutorID: "bob", StudentID: "s3"},
	}
	for _, l := range seed {
		_, err := repo.CreateLesson(ctx, l)
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteLessonsByStudent(ctx, "s1"))
	remaining, err := repo.QueryAllLessons(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	require.NoError(t, repo.DeleteLessonsByTutor(ctx, "alice"))
	remaining, err = repo.QueryAllLessons(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "l3", remaining[0].ID)
}

func TestDB_reset(t *testing.T) {
	ctx := context.Background()
	db := Open()
	tutors := NewTutorRepository(db)
	students := NewStudentRepository(db)

	_, err := tutors.CreateTutor(ctx, tutor.Tutor{ID: "t1", Email: "jane@test.cm"})
	require.NoError(t, err)
	_, err = students.CreateStudent(ctx, student.Student{ID: "s1", TutorID: "t1"})
	require.NoError(t, err)

	db.Reset()

	_, err = tutors.GetTutorByID(ctx, "t1")
	assert.Equal(t, tutor.ErrNotFound, err)
	all, err := students.QueryAllStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
