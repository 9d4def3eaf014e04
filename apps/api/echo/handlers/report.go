package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/eduhub/core/report"
)

type reportApi struct {
	service *report.Service
}

func RegisterReportAPI(g *echo.Group, svc *report.Service) {
	api := reportApi{service: svc}

	rg := g.Group("/reports")
	rg.GET("/enrollments", api.enrollmentMetrics)
	rg.GET("/average-rating", api.averageCourseRating)
	rg.GET("/courses-by-category", api.coursesByCategory)
	rg.GET("/student-grades", api.averageGradePerStudent)
	rg.GET("/completion-rates", api.courseCompletionRates)
	rg.GET("/top-students", api.topPerformingStudents)
	rg.GET("/students-per-instructor", api.studentsPerInstructor)
	rg.GET("/instructor-ratings", api.averageRatingPerInstructor)
	rg.GET("/instructor-revenue", api.revenuePerInstructor)
	rg.GET("/monthly-trend", api.monthlyEnrollmentTrend)
	rg.GET("/popular-categories", api.popularCategories)
	rg.GET("/engagement", api.studentEngagement)
}

// Handlers

func (api *reportApi) enrollmentMetrics(ctx echo.Context) error {
	rows, err := api.service.EnrollmentMetrics(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) averageCourseRating(ctx echo.Context) error {
	row, err := api.service.AverageCourseRating(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, row)
}

func (api *reportApi) coursesByCategory(ctx echo.Context) error {
	rows, err := api.service.CoursesByCategory(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) averageGradePerStudent(ctx echo.Context) error {
	rows, err := api.service.AverageGradePerStudent(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) courseCompletionRates(ctx echo.Context) error {
	rows, err := api.service.CourseCompletionRates(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) topPerformingStudents(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	rows, err := api.service.TopPerformingStudents(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) studentsPerInstructor(ctx echo.Context) error {
	rows, err := api.service.StudentsPerInstructor(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) averageRatingPerInstructor(ctx echo.Context) error {
	rows, err := api.service.AverageRatingPerInstructor(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) revenuePerInstructor(ctx echo.Context) error {
	rows, err := api.service.RevenuePerInstructor(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) monthlyEnrollmentTrend(ctx echo.Context) error {
	rows, err := api.service.MonthlyEnrollmentTrend(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) popularCategories(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	rows, err := api.service.PopularCategories(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *reportApi) studentEngagement(ctx echo.Context) error {
	rows, err := api.service.StudentEngagement(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}
