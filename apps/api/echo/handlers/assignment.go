package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/assignment"
)

type assignmentApi struct {
	service *assignment.Service
}

func RegisterAssignmentAPI(g *echo.Group, svc *assignment.Service) {
	api := assignmentApi{service: svc}

	ag := g.Group("/assignments")
	ag.POST("", api.assignmentCreate)
	ag.GET("/upcoming", api.assignmentQueryUpcoming)
	ag.POST("/:id/submissions", api.submissionCreate)

	sg := g.Group("/submissions")
	sg.GET("", api.submissionQuery)
	sg.PUT("/:id/grade", api.submissionGrade)
}

// Handlers

func (api *assignmentApi) assignmentCreate(ctx echo.Context) error {
	data := new(assignment.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	asg, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, asg)
}

func (api *assignmentApi) assignmentQueryUpcoming(ctx echo.Context) error {
	weeks, _ := strconv.Atoi(ctx.QueryParam("weeks"))
	assignments, err := api.service.UpcomingDue(ctx.Request().Context(), weeks)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assignments)
}

type newSubmissionRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

func (r *newSubmissionRequest) Validate() error {
	r.Content = core.CleanString(r.Content)
	return core.Validate.Struct(r)
}

func (api *assignmentApi) submissionCreate(ctx echo.Context) error {
	data := new(newSubmissionRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.service.Submit(ctx.Request().Context(), ctx.Param("id"), data.StudentID, data.Content)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sub)
}

func (api *assignmentApi) submissionQuery(ctx echo.Context) error {
	studentID := ctx.QueryParam("student_id")
	if studentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "student_id is required")
	}
	subs, err := api.service.StudentSubmissions(ctx.Request().Context(), studentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *assignmentApi) submissionGrade(ctx echo.Context) error {
	data := new(assignment.GradeUpdate)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.service.Grade(ctx.Request().Context(), ctx.Param("id"), *data); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
