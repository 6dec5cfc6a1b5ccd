package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativedak/tutor1/core/lesson"
)

var errLessonNotFound = httpErr{Error: "lesson not found"}

func newLessonBody(t *testing.T, studentID string, start time.Time) []byte {
	t.Helper()
	return marshalObj(t, lesson.NewLesson{
		Title:     "Weekly session",
		StudentID: studentID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Subject:   "Maths",
		Notes:     "chapter 4",
	})
}

func Test_lessonApi_create(t *testing.T) {
	defer resetDB()

	alice := createTutor(t, "alice@test.cm", "Alice", false)
	aliceToken := getToken(t, alice)
	sam := createStudent(t, alice.ID, "Sam")

	req, rec := newAuthRequest(http.MethodPost, "/api/lessons", aliceToken, newLessonBody(t, sam.ID, testStartTime))
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got lesson.Lesson
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, alice.ID, got.TutorID)
	assert.Equal(t, sam.ID, got.StudentID)
	assert.Equal(t, "Weekly session", got.Title)
	assert.Equal(t, "Maths", got.Subject)
	assert.True(t, got.StartTime.Equal(testStartTime))
	assert.True(t, got.EndTime.Equal(testStartTime.Add(time.Hour)))
	assert.False(t, got.CreatedAt.IsZero())
}

func Test_lessonApi_create_referentialCheck(t *testing.T) {
	defer resetDB()

	alice := createTutor(t, "alice@test.cm", "Alice", false)
	aliceToken := getToken(t, alice)
	bob := createTutor(t, "bob@test.cm", "Bob", false)
	pat := createStudent(t, bob.ID, "Pat")

	tests := []httpTest{
		// another tutor's student reads as non-existent
		{
			name: "foreign student", method: http.MethodPost, path: "/api/lessons", token: aliceToken,
			body:     newLessonBody(t, pat.ID, testStartTime),
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errStudentNotFound),
		},
		{
			name: "unknown student", method: http.MethodPost, path: "/api/lessons", token: aliceToken,
			body:     newLessonBody(t, "does-not-exist", testStartTime),
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errStudentNotFound),
		},
		// the failed check aborted before the write
		{
			name: "nothing persisted", path: "/api/lessons", token: aliceToken,
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
	}
	runHTTPTests(t, tests)
}

func Test_lessonApi_create_validation(t *testing.T) {
	defer resetDB()

	alice := createTutor(t, "alice@test.cm", "Alice", false)
	aliceToken := getToken(t, alice)
	sam := createStudent(t, alice.ID, "Sam")

	t.Run("end before start", func(t *testing.T) {
		body := marshalObj(t, lesson.NewLesson{
			Title:     "Backwards",
			StudentID: sam.ID,
			StartTime: testStartTime,
			EndTime:   testStartTime.Add(-time.Hour),
			Subject:   "Maths",
		})
		req, rec := newAuthRequest(http.MethodPost, "/api/lessons", aliceToken, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		assert.Contains(t, fldErrs, "end_time")
	})

	t.Run("missing fields", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/api/lessons", aliceToken, []byte(`{}`))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		var fldErrs map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fldErrs))
		for _, fld := range []string{"title", "student_id", "start_time", "end_time", "subject"} {
			assert.Contains(t, fldErrs, fld)
		}
	})
}

func Test_lessonApi_query_scoped(t *testing.T) {
	defer resetDB()

	alice := createTutor(t, "alice@test.cm", "Alice", false)
	aliceToken := getToken(t, alice)
	bob := createTutor(t, "bob@test.cm", "Bob", false)
	bobToken := getToken(t, bob)
	sam := createStudent(t, alice.ID, "Sam")
	l := createLesson(t, alice.ID, sam.ID, testStartTime)

	tests := []httpTest{
		{
			name: "owner sees the lesson", path: "/api/lessons", token: aliceToken,
			wantCode: http.StatusOK, wantData: marshalList(t, l),
		},
		{
			name: "other tutors see an empty list", path: "/api/lessons", token: bobToken,
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
		{
			name: "owner retrieves by id", path: "/api/lessons/" + l.ID, token: aliceToken,
			wantCode: http.StatusOK, wantData: marshalObj(t, l),
		},
		{
			name: "other tutor retrieve", path: "/api/lessons/" + l.ID, token: bobToken,
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errLessonNotFound),
		},
		{
			name: "unknown id", path: "/api/lessons/does-not-exist", token: aliceToken,
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errLessonNotFound),
		},
	}
	runHTTPTests(t, tests)
}

func Test_lessonApi_update(t *testing.T) {
	defer resetDB()

	alice := createTutor(t, "alice@test.cm", "Alice", false)
	aliceToken := getToken(t, alice)
	bob := createTutor(t, "bob@test.cm", "Bob", false)
	bobToken := getToken(t, bob)
	sam := createStudent(t, alice.ID, "Sam")
	kim := createStudent(t, alice.ID, "Kim")
	pat := createStudent(t, bob.ID, "Pat")
	l := createLesson(t, alice.ID, sam.ID, testStartTime)

	newStart := testStartTime.AddDate(0, 0, 7)
	updated := l
	updated.StudentID = kim.ID
	updated.Title = "Weekly session"
	updated.Subject = "Maths"
	updated.StartTime = newStart
	updated.EndTime = newStart.Add(time.Hour)
	updated.Notes = "chapter 4"

	tests := []httpTest{
		{
			name: "other tutor cannot update", method: http.MethodPut, path: "/api/lessons/" + l.ID, token: bobToken,
			body:     newLessonBody(t, sam.ID, newStart),
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errLessonNotFound),
		},
		// reassigning to another tutor's student fails the same check
		// as create
		{
			name: "reassign to foreign student", method: http.MethodPut, path: "/api/lessons/" + l.ID, token: aliceToken,
			body:     newLessonBody(t, pat.ID, newStart),
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errStudentNotFound),
		},
		{
			name: "owner replaces the mutable fields", method: http.MethodPut, path: "/api/lessons/" + l.ID, token: aliceToken,
			body:     newLessonBody(t, kim.ID, newStart),
			wantCode: http.StatusOK, wantData: marshalObj(t, updated),
		},
	}
	runHTTPTests(t, tests)
}

func Test_lessonApi_destroy(t *testing.T) {
	defer resetDB()
	ctx := context.Background()

	alice := createTutor(t, "alice@test.cm", "Alice", false)
	aliceToken := getToken(t, alice)
	bob := createTutor(t, "bob@test.cm", "Bob", false)
	bobToken := getToken(t, bob)
	sam := createStudent(t, alice.ID, "Sam")
	l := createLesson(t, alice.ID, sam.ID, testStartTime)

	tests := []httpTest{
		{
			name: "other tutor cannot delete", method: http.MethodDelete, path: "/api/lessons/" + l.ID, token: bobToken,
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errLessonNotFound),
		},
		{
			name: "owner deletes", method: http.MethodDelete, path: "/api/lessons/" + l.ID, token: aliceToken,
			wantCode: http.StatusOK, wantData: marshalObj(t, successResponse("Lesson deleted")),
		},
		{
			name: "delete is not idempotent", method: http.MethodDelete, path: "/api/lessons/" + l.ID, token: aliceToken,
			wantCode: http.StatusNotFound, wantData: marshalObj(t, errLessonNotFound),
		},
	}
	runHTTPTests(t, tests)

	// the student referenced by the deleted lesson is untouched
	_, err := studentSvc.Get(ctx, sam.ID, alice.ID)
	assert.NoError(t, err)
}

func Test_lessonApi_adminQueryAll(t *testing.T) {
	defer resetDB()

	admin := createTutor(t, "admin@test.cm", "Admin", true)
	adminToken := getToken(t, admin)
	alice := createTutor(t, "alice@test.cm", "Alice", false)
	aliceToken := getToken(t, alice)
	bob := createTutor(t, "bob@test.cm", "Bob", false)

	sam := createStudent(t, alice.ID, "Sam")
	pat := createStudent(t, bob.ID, "Pat")
	l1 := createLesson(t, alice.ID, sam.ID, testStartTime)
	l2 := createLesson(t, bob.ID, pat.ID, testStartTime.AddDate(0, 1, 0))

	tests := []httpTest{
		{
			name: "non-admin", path: "/api/admin/lessons", token: aliceToken,
			wantCode: http.StatusForbidden, wantData: marshalObj(t, errForbidden),
		},
		{
			name: "admin sees all tutors' lessons", path: "/api/admin/lessons", token: adminToken,
			wantCode: http.StatusOK, wantData: marshalList(t, l1, l2),
		},
	}
	runHTTPTests(t, tests)
}
