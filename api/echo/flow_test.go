package echoapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
)

// Test_fullFlow walks a tutor through the whole lifecycle using nothing
// but the HTTP surface.
func Test_fullFlow(t *testing.T) {
	defer resetDB()

	do := func(method, path, token string, body []byte, wantCode int, out interface{}) {
		t.Helper()
		req, rec := newAuthRequest(method, path, token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, wantCode, rec.Code, "%s %s: %s", method, path, rec.Body.String())
		if out != nil {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
		}
	}

	// register
	var me tutor.Tutor
	do(http.MethodPost, "/api/tutors", "",
		marshalObj(t, tutor.NewTutor{Email: "flow@test.cm", Name: "Flow", Password: testPassword}),
		http.StatusOK, &me)

	// login with the fresh credentials
	form := url.Values{"username": {"flow@test.cm"}, "password": {testPassword}}
	req, rec := newFormRequest("/api/token", form)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	token := login.AccessToken

	var ident tutor.Tutor
	do(http.MethodGet, "/api/tutors/me", token, nil, http.StatusOK, &ident)
	assert.Equal(t, me.ID, ident.ID)

	// create a student
	var sam student.Student
	do(http.MethodPost, "/api/students", token,
		marshalObj(t, student.NewStudent{Name: "Sam"}),
		http.StatusOK, &sam)

	// book a lesson with them
	var l lesson.Lesson
	do(http.MethodPost, "/api/lessons", token,
		marshalObj(t, lesson.NewLesson{
			Title:     "Kickoff",
			StudentID: sam.ID,
			StartTime: testStartTime,
			EndTime:   testStartTime.Add(time.Hour),
			Subject:   "Physics",
		}),
		http.StatusOK, &l)
	assert.Equal(t, me.ID, l.TutorID)

	// mark the homework done
	var toggled student.Student
	do(http.MethodPut, "/api/students/"+sam.ID+"/homework", token, nil, http.StatusOK, &toggled)
	assert.True(t, toggled.HomeworkStatus)

	// both records show up in the lists
	var students []student.Student
	do(http.MethodGet, "/api/students", token, nil, http.StatusOK, &students)
	require.Len(t, students, 1)
	var lessons []lesson.Lesson
	do(http.MethodGet, "/api/lessons", token, nil, http.StatusOK, &lessons)
	require.Len(t, lessons, 1)

	// tear down; deleting the student removes its lesson too
	do(http.MethodDelete, "/api/lessons/"+l.ID, token, nil, http.StatusOK, nil)
	do(http.MethodDelete, "/api/students/"+sam.ID, token, nil, http.StatusOK, nil)

	do(http.MethodGet, "/api/students", token, nil, http.StatusOK, &students)
	assert.Empty(t, students)
	do(http.MethodGet, "/api/lessons", token, nil, http.StatusOK, &lessons)
	assert.Empty(t, lessons)

	// admin surface stays off limits for a regular tutor
	do(http.MethodGet, "/api/admin/stats", token, nil, http.StatusForbidden, nil)
}
