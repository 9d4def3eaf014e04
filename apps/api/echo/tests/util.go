package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/eduhub/apps/api/echo"
	"github.com/trezcool/eduhub/core/assignment"
	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/enrollment"
	"github.com/trezcool/eduhub/core/report"
	"github.com/trezcool/eduhub/core/user"
	emailsvc "github.com/trezcool/eduhub/services/email"
	inmemdb "github.com/trezcool/eduhub/storage/database/inmem"
)

var (
	usrRepo    user.Repository
	crsRepo    course.Repository
	enrRepo    enrollment.Repository
	asgRepo    assignment.Repository
	reportRepo report.Repository
)

func setup(t *testing.T) Server {
	t.Helper()

	// set up DB & repos
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	usrRepo = inmemdb.NewUserRepository(db)
	crsRepo = inmemdb.NewCourseRepository(db)
	enrRepo = inmemdb.NewEnrollmentRepository(db)
	asgRepo = inmemdb.NewAssignmentRepository(db)
	reportRepo = inmemdb.NewReportRepository(db)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock()

	// set up server
	return NewServer(
		&Options{
			DisableReqLogs: true,
			Logger:         testLogger{t},
			UserSvc:        user.NewService(usrRepo),
			CourseSvc:      course.NewService(crsRepo),
			EnrollSvc:      enrollment.NewService(enrRepo, usrRepo, mailSvc),
			AssignSvc:      assignment.NewService(asgRepo),
			ReportSvc:      report.NewService(reportRepo),
		},
	)
}

type testLogger struct{ t *testing.T }

func (l testLogger) Debug(msg string, args ...interface{}) { l.t.Logf(msg, args...) }
func (l testLogger) Info(msg string, args ...interface{})  { l.t.Logf(msg, args...) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.t.Logf(msg, args...) }
func (l testLogger) Error(msg string, args ...interface{}) { l.t.Logf(msg, args...) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.t.Fatalf(msg, args...) }

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
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
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
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
