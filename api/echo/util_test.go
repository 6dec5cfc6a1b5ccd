package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/creativedak/tutor1/core"
	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/stats"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
	logsvc "github.com/creativedak/tutor1/services/logger"
	inmemdb "github.com/creativedak/tutor1/storage/database/inmem"
)

// test password satisfying the registration policy
const testPassword = "S3cure#pass!"

var testStartTime = time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)

var (
	testDB *inmemdb.DB

	tutorRepo   tutor.Repository
	studentRepo student.Repository
	lessonRepo  lesson.Repository

	tutorSvc   *tutor.Service
	studentSvc *student.Service
	lessonSvc  *lesson.Service
	statsSvc   *stats.Service

	app Server

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
	errNotAuthed    = httpErr{Error: "tutor not authenticated"}
)

func initTestApp() {
	core.Conf.Debug = false
	core.Conf.TestMode = true

	testDB = inmemdb.Open()
	tutorRepo = inmemdb.NewTutorRepository(testDB)
	studentRepo = inmemdb.NewStudentRepository(testDB)
	lessonRepo = inmemdb.NewLessonRepository(testDB)

	tutorSvc = tutor.NewService(tutorRepo, studentRepo, lessonRepo)
	studentSvc = student.NewService(studentRepo, lessonRepo)
	lessonSvc = lesson.NewService(lessonRepo, studentRepo)
	statsSvc = stats.NewService(tutorRepo, studentRepo, lessonRepo)

	app = NewServer(&Options{
		DisableReqLogs: true,
		TutorSvc:       tutorSvc,
		StudentSvc:     studentSvc,
		LessonSvc:      lessonSvc,
		StatsSvc:       statsSvc,
		Logger:         logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags)),
	})
}

func TestMain(m *testing.M) {
	initTestApp()
	m.Run()
}

func resetDB() {
	testDB.Reset()
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// newFormRequest builds a form-encoded request; used for /api/token.
func newFormRequest(path string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	return req, rec
}

func getToken(t *testing.T, tut tutor.Tutor) string {
	t.Helper()
	token, err := GenerateToken(GetTutorClaims(tut))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func createTutor(t *testing.T, email, name string, isAdmin bool) tutor.Tutor {
	t.Helper()
	tut, err := tutorSvc.Register(context.Background(), tutor.NewTutor{
		Email:    email,
		Name:     name,
		Password: testPassword,
		IsAdmin:  isAdmin,
	})
	if err != nil {
		t.Fatalf("createTutor(%s) failed: %v", email, err)
	}
	return tut
}

func createStudent(t *testing.T, tutorID, name string) student.Student {
	t.Helper()
	s, err := studentSvc.Create(context.Background(), tutorID, student.NewStudent{Name: name})
	if err != nil {
		t.Fatalf("createStudent(%s) failed: %v", name, err)
	}
	return s
}

func createLesson(t *testing.T, tutorID, studentID string, start time.Time) lesson.Lesson {
	t.Helper()
	l, err := lessonSvc.Create(context.Background(), tutorID, lesson.NewLesson{
		Title:     "Lesson",
		StudentID: studentID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Subject:   "Maths",
	})
	if err != nil {
		t.Fatalf("createLesson() failed: %v", err)
	}
	return l
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func marshalList(t *testing.T, objs ...interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marshalList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	t.Helper()
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
