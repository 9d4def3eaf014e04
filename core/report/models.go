package report

// Result rows produced by the aggregation catalog. Field names mirror the
// pipelines' $project stages so the driver can decode straight into them.

type EnrollmentMetric struct {
	CourseID         string `json:"course_id" bson:"courseId"`
	CourseTitle      string `json:"course_title" bson:"courseTitle"`
	TotalEnrollments int64  `json:"total_enrollments" bson:"totalEnrollments"`
}

type RatingSummary struct {
	AverageRating *float64 `json:"average_rating" bson:"averageRating"`
	Count         int64    `json:"count" bson:"count"`
}

type CategorySummary struct {
	Category      string   `json:"category" bson:"category"`
	Courses       []string `json:"courses" bson:"courses"`
	AverageRating *float64 `json:"average_rating" bson:"averageRating"`
	TotalCourses  int64    `json:"total_courses" bson:"totalCourses"`
}

type StudentAverage struct {
	StudentID    string   `json:"student_id" bson:"studentId"`
	StudentName  string   `json:"student_name" bson:"studentName"`
	AverageGrade *float64 `json:"average_grade" bson:"averageGrade"`
	Submissions  int64    `json:"submissions" bson:"submissions"`
}

type CompletionRate struct {
	CourseID       string  `json:"course_id" bson:"courseId"`
	CompletionRate float64 `json:"completion_rate" bson:"completionRate"`
	TotalEnrolled  int64   `json:"total_enrolled" bson:"totalEnrolled"`
}

type InstructorStudents struct {
	InstructorID  string   `json:"instructor_id" bson:"instructorId"`
	TotalStudents int64    `json:"total_students" bson:"totalStudents"`
	CoursesTaught []string `json:"courses_taught" bson:"coursesTaught"`
}

type InstructorRating struct {
	InstructorID   string   `json:"instructor_id" bson:"instructorId"`
	InstructorName string   `json:"instructor_name" bson:"instructorName"`
	AverageRating  *float64 `json:"average_rating" bson:"averageRating"`
	Courses        []string `json:"courses" bson:"courses"`
}

type InstructorRevenue struct {
	InstructorID   string   `json:"instructor_id" bson:"instructorId"`
	InstructorName string   `json:"instructor_name" bson:"instructorName"`
	Revenue        int64    `json:"revenue" bson:"revenue"`
	Courses        []string `json:"courses" bson:"courses"`
}

type MonthlyTrend struct {
	Year             int   `json:"year" bson:"year"`
	Month            int   `json:"month" bson:"month"`
	TotalEnrollments int64 `json:"total_enrollments" bson:"totalEnrollments"`
}

type CategoryCount struct {
	Category     string `json:"category" bson:"category"`
	TotalCourses int64  `json:"total_courses" bson:"totalCourses"`
}

type EngagementMetric struct {
	StudentID        string   `json:"student_id" bson:"studentId"`
	StudentName      string   `json:"student_name" bson:"studentName"`
	TotalSubmissions int64    `json:"total_submissions" bson:"totalSubmissions"`
	AverageGrade     *float64 `json:"average_grade" bson:"averageGrade"`
}
