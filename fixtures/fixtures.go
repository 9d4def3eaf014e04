package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/user"
	"github.com/trezcool/eduhub/storage/database"
)

// Generators for sample documents. Shapes match the collection validators in
// data/schema_validation.json; date fields are emitted as ISO-8601 strings so
// seeding runs them through the schema date conversion like file-based data.

var (
	skills = []string{
		"Python", "SQL", "Data Engineering", "ETL", "JavaScript",
		"APIs", "Kubernetes", "Machine Learning", "MongoDB", "Cloud Computing",
	}
	firstNames = []string{
		"Ada", "Grace", "Linus", "Dennis", "Margaret", "Alan", "Barbara", "Ken",
		"Radia", "Tim", "Donald", "Frances",
	}
	lastNames = []string{
		"Lovelace", "Hopper", "Torvalds", "Ritchie", "Hamilton", "Turing",
		"Liskov", "Thompson", "Perlman", "Berners-Lee", "Knuth", "Allen",
	}
	words = []string{
		"data", "query", "index", "schema", "pipeline", "cluster", "shard",
		"stream", "model", "service", "module", "lesson", "course", "project",
	}
)

type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

func (g *Generator) sample(list []string, k int) []string {
	idx := g.rng.Perm(len(list))[:k]
	out := make([]string, k)
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}

func (g *Generator) sentence(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.pick(words)
	}
	return strings.Join(parts, " ") + "."
}

// anchor instants on a fixed epoch so generated data is reproducible per seed
var epoch = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

// pastDate renders a random instant between minDaysAgo and maxDaysAgo before
// the epoch as an ISO-8601 string.
func (g *Generator) pastDate(minDaysAgo, maxDaysAgo int) string {
	days := minDaysAgo + g.rng.Intn(maxDaysAgo-minDaysAgo+1)
	instant := epoch.AddDate(0, 0, -days).Add(time.Duration(g.rng.Intn(86400)) * time.Second)
	return instant.Format("2006-01-02T15:04:05")
}

func (g *Generator) MakeUser(userID, role string) map[string]interface{} {
	first, last := g.pick(firstNames), g.pick(lastNames)
	return map[string]interface{}{
		"userId":     userID,
		"email":      fmt.Sprintf("%s.%s.%s@example.com", strings.ToLower(first), strings.ToLower(last), uuid.NewString()[:8]),
		"firstName":  first,
		"lastName":   last,
		"role":       role,
		"dateJoined": g.pastDate(0, 730),
		"profile": map[string]interface{}{
			"bio":    g.sentence(6),
			"avatar": fmt.Sprintf("https://example.com/avatars/%s.png", userID),
			"skills": g.sample(skills, 3),
		},
		"isActive": g.rng.Intn(2) == 0,
	}
}

func (g *Generator) MakeCourse(courseID, instructorID string) map[string]interface{} {
	return map[string]interface{}{
		"courseId":     courseID,
		"title":        g.sentence(4),
		"description":  g.sentence(12),
		"instructorId": instructorID,
		"category":     g.pick(skills),
		"level":        g.pick(course.AllLevels),
		"duration":     10 + g.rng.Intn(90),
		"price":        1000 + g.rng.Intn(9000),
		"tags":         g.sample(skills, 2),
		"createdAt":    g.pastDate(365, 1095),
		"updatedAt":    g.pastDate(0, 365),
		"isPublished":  g.rng.Intn(2) == 0,
	}
}

func (g *Generator) MakeLesson(lessonID, courseID string) map[string]interface{} {
	return map[string]interface{}{
		"lessonId":  lessonID,
		"courseId":  courseID,
		"title":     g.sentence(4),
		"content":   g.sentence(20),
		"order":     g.rng.Intn(100),
		"resources": []interface{}{"intro.pdf"},
		"duration":  30,
		"createdAt": g.pastDate(365, 1095),
		"updatedAt": g.pastDate(0, 365),
	}
}

func (g *Generator) MakeEnrollment(enrollmentID, studentID, courseID string) map[string]interface{} {
	return map[string]interface{}{
		"enrollmentId":      enrollmentID,
		"studentId":         studentID,
		"courseId":          courseID,
		"enrollmentDate":    g.pastDate(0, 365),
		"progress":          float64(g.rng.Intn(101)),
		"completed":         g.rng.Intn(3) == 0,
		"certificateIssued": false,
	}
}

func (g *Generator) MakeAssignment(assignmentID, courseID string) map[string]interface{} {
	return map[string]interface{}{
		"assignmentId": assignmentID,
		"courseId":     courseID,
		"title":        g.sentence(3),
		"description":  g.sentence(10),
		"dueDate":      g.pastDate(0, 60),
		"maxScore":     100,
		"createdAt":    g.pastDate(60, 365),
	}
}

func (g *Generator) MakeSubmission(submissionID, assignmentID, studentID string) map[string]interface{} {
	sub := map[string]interface{}{
		"submissionId": submissionID,
		"assignmentId": assignmentID,
		"studentId":    studentID,
		"submittedAt":  g.pastDate(0, 60),
		"content":      g.sentence(15),
	}
	if g.rng.Intn(4) > 0 { // leave some ungraded
		sub["grade"] = 50 + float64(g.rng.Intn(51))
		sub["feedback"] = g.sentence(5)
	}
	return sub
}

// Generate builds a full, referentially consistent data set keyed by
// collection name.
func Generate(seed int64) map[string][]map[string]interface{} {
	g := NewGenerator(seed)

	const (
		nInstructors = 3
		nStudents    = 12
		nCourses     = 8
	)

	var users, courses, lessons, enrollments, assignments, submissions []map[string]interface{}

	instructorIDs := make([]string, 0, nInstructors)
	for i := 1; i <= nInstructors; i++ {
		id := fmt.Sprintf("u%d", i)
		instructorIDs = append(instructorIDs, id)
		users = append(users, g.MakeUser(id, user.RoleInstructor))
	}
	studentIDs := make([]string, 0, nStudents)
	for i := nInstructors + 1; i <= nInstructors+nStudents; i++ {
		id := fmt.Sprintf("u%d", i)
		studentIDs = append(studentIDs, id)
		users = append(users, g.MakeUser(id, user.RoleStudent))
	}

	courseIDs := make([]string, 0, nCourses)
	for i := 1; i <= nCourses; i++ {
		id := fmt.Sprintf("c%d", i)
		courseIDs = append(courseIDs, id)
		courses = append(courses, g.MakeCourse(id, instructorIDs[g.rng.Intn(len(instructorIDs))]))

		for j := 1; j <= 2; j++ {
			lessons = append(lessons, g.MakeLesson(fmt.Sprintf("l%d-%d", i, j), id))
		}
		assignments = append(assignments, g.MakeAssignment(fmt.Sprintf("a%d", i), id))
	}

	var enrollmentSeq, submissionSeq int
	for _, studentID := range studentIDs {
		for _, courseID := range g.sample(courseIDs, 1+g.rng.Intn(3)) {
			enrollmentSeq++
			enrollments = append(enrollments, g.MakeEnrollment(fmt.Sprintf("e%d", enrollmentSeq), studentID, courseID))

			if g.rng.Intn(2) == 0 {
				submissionSeq++
				assignmentID := "a" + strings.TrimPrefix(courseID, "c")
				submissions = append(submissions, g.MakeSubmission(fmt.Sprintf("s%d", submissionSeq), assignmentID, studentID))
			}
		}
	}

	return map[string][]map[string]interface{}{
		database.UsersCollection:       users,
		database.CoursesCollection:     courses,
		database.LessonsCollection:     lessons,
		database.EnrollmentsCollection: enrollments,
		database.AssignmentsCollection: assignments,
		database.SubmissionsCollection: submissions,
	}
}
