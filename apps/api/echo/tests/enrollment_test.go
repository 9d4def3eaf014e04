package tests

import (
	"net/http"
	"testing"

	"github.com/trezcool/eduhub/core/user"
	"github.com/trezcool/eduhub/testutil"
)

func Test_enrollmentApi(t *testing.T) {
	app := setup(t)

	testutil.CreateUser(t, usrRepo, "u3", "lena@test.test", "Lena", "Diallo", user.RoleStudent, true)
	testutil.CreateCourse(t, crsRepo, "c1", "MongoDB Fundamentals", "u1", "MongoDB", 4900, nil)

	// register
	req, rec := newRequest(http.MethodPost, "/v1/enrollments", []byte(`{"student_id":"u3","course_id":"c1"}`))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; want %v (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	// certificate refused while incomplete
	req, rec = newRequest(http.MethodPost, "/v1/enrollments/e1/certificate")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("code = %v; want %v", rec.Code, http.StatusConflict)
	}

	// course students
	req, rec = newRequest(http.MethodGet, "/v1/courses/c1/students")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
	}

	// delete, then gone
	req, rec = newRequest(http.MethodDelete, "/v1/enrollments/e1")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("code = %v; want %v", rec.Code, http.StatusNoContent)
	}
	req, rec = newRequest(http.MethodGet, "/v1/enrollments/e1")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
	}
}
