package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/enrollment"
)

type courseApi struct {
	service   *course.Service
	enrollSvc *enrollment.Service
}

func RegisterCourseAPI(g *echo.Group, svc *course.Service, enrollSvc *enrollment.Service) {
	api := courseApi{service: svc, enrollSvc: enrollSvc}

	cg := g.Group("/courses")
	cg.POST("", api.courseCreate)
	cg.GET("", api.courseQuery)
	cg.GET("/details", api.courseQueryDetails)
	cg.GET("/:id", api.courseRetrieve)
	cg.GET("/:id/students", api.courseQueryStudents)
	cg.PUT("/:id/publish", api.coursePublish)
	cg.PUT("/:id/tags", api.courseAddTags)
	cg.POST("/:id/lessons", api.lessonCreate)
	cg.DELETE("/:id/lessons/:lessonId", api.lessonRemove)
}

// Handlers

func (api *courseApi) courseCreate(ctx echo.Context) error {
	data := new(course.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *courseApi) courseQuery(ctx echo.Context) error {
	filter := new(course.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	courses, err := api.service.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) courseQueryDetails(ctx echo.Context) error {
	details, err := api.service.QueryDetails(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, details)
}

func (api *courseApi) courseRetrieve(ctx echo.Context) error {
	crs, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) courseQueryStudents(ctx echo.Context) error {
	students, err := api.enrollSvc.EnrolledStudents(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *courseApi) coursePublish(ctx echo.Context) error {
	if err := api.service.Publish(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

type addTagsRequest struct {
	Tags []string `json:"tags" validate:"required,min=1"`
}

func (r *addTagsRequest) Validate() error {
	return core.Validate.Struct(r)
}

func (api *courseApi) courseAddTags(ctx echo.Context) error {
	data := new(addTagsRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.service.AddTags(ctx.Request().Context(), ctx.Param("id"), data.Tags); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *courseApi) lessonCreate(ctx echo.Context) error {
	data := new(course.NewLesson)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	data.CourseID = ctx.Param("id")
	if err := data.Validate(); err != nil {
		return err
	}

	lsn, err := api.service.AddLesson(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, lsn)
}

func (api *courseApi) lessonRemove(ctx echo.Context) error {
	if err := api.service.RemoveLesson(ctx.Request().Context(), ctx.Param("lessonId"), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
