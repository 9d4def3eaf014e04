package inmemdb

import (
	"sync"

	"github.com/trezcool/eduhub/core/assignment"
	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/enrollment"
	"github.com/trezcool/eduhub/core/user"
)

type (
	DB struct {
		users       *userTable
		courses     *courseTable
		lessons     *lessonTable
		enrollments *enrollmentTable
		assignments *assignmentTable
		submissions *submissionTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	courseTable struct {
		sync.RWMutex
		table map[string]*course.Course
	}

	lessonTable struct {
		sync.RWMutex
		table map[string]*course.Lesson
	}

	enrollmentTable struct {
		sync.RWMutex
		table map[string]*enrollment.Enrollment
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*assignment.Assignment
	}

	submissionTable struct {
		sync.RWMutex
		table map[string]*assignment.Submission
	}
)

func Open() (*DB, error) {
	db := &DB{
		users:       &userTable{table: make(map[string]*user.User)},
		courses:     &courseTable{table: make(map[string]*course.Course)},
		lessons:     &lessonTable{table: make(map[string]*course.Lesson)},
		enrollments: &enrollmentTable{table: make(map[string]*enrollment.Enrollment)},
		assignments: &assignmentTable{table: make(map[string]*assignment.Assignment)},
		submissions: &submissionTable{table: make(map[string]*assignment.Submission)},
	}
	return db, nil
}
