package tests

import (
	"net/http"
	"testing"

	"github.com/trezcool/eduhub/core/user"
	"github.com/trezcool/eduhub/testutil"
)

func Test_userApi_userCreate(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name:     "happy path",
			method:   http.MethodPost,
			path:     "/v1/users/register",
			body:     []byte(`{"email":"lena@test.test","first_name":"Lena","last_name":"Diallo"}`),
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing fields",
			method:   http.MethodPost,
			path:     "/v1/users/register",
			body:     []byte(`{"email":"lena@test.test"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "duplicate email",
			method:   http.MethodPost,
			path:     "/v1/users/register",
			body:     []byte(`{"email":"lena@test.test","first_name":"Lena","last_name":"Diallo"}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_userRetrieve(t *testing.T) {
	app := setup(t)

	usr := testutil.CreateUser(t, usrRepo, "u1", "lena@test.test", "Lena", "Diallo", user.RoleStudent, true)

	tests := []httpTest{
		{
			name:     "found",
			method:   http.MethodGet,
			path:     "/v1/users/u1",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, usr),
		},
		{
			name:     "not found",
			method:   http.MethodGet,
			path:     "/v1/users/nope",
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_userQueryActiveStudents(t *testing.T) {
	app := setup(t)

	active := testutil.CreateUser(t, usrRepo, "u1", "lena@test.test", "Lena", "Diallo", user.RoleStudent, true)
	testutil.CreateUser(t, usrRepo, "u2", "theo@test.test", "Theo", "Mensah", user.RoleStudent, false)
	testutil.CreateUser(t, usrRepo, "u3", "inst@test.test", "Nadia", "Kone", user.RoleInstructor, true)

	tt := httpTest{
		name:     "active students only",
		method:   http.MethodGet,
		path:     "/v1/users/active-students",
		wantCode: http.StatusOK,
		wantData: marchallObj(t, []user.User{active}),
	}
	req, rec := newRequest(tt.method, tt.path)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func Test_userApi_userDeactivate(t *testing.T) {
	app := setup(t)

	testutil.CreateUser(t, usrRepo, "u1", "lena@test.test", "Lena", "Diallo", user.RoleStudent, true)

	req, rec := newRequest(http.MethodDelete, "/v1/users/u1")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %v; want %v", rec.Code, http.StatusNoContent)
	}

	req, rec = newRequest(http.MethodGet, "/v1/users/active-students")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`[]`)}, rec)
}
