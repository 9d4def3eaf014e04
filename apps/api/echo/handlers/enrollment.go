package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/eduhub/core/enrollment"
)

type enrollmentApi struct {
	service *enrollment.Service
}

func RegisterEnrollmentAPI(g *echo.Group, svc *enrollment.Service) {
	api := enrollmentApi{service: svc}

	eg := g.Group("/enrollments")
	eg.POST("", api.enrollmentCreate)
	eg.GET("/:id", api.enrollmentRetrieve)
	eg.POST("/:id/certificate", api.enrollmentIssueCertificate)
	eg.DELETE("/:id", api.enrollmentDelete)
}

// Handlers

func (api *enrollmentApi) enrollmentCreate(ctx echo.Context) error {
	data := new(enrollment.NewEnrollment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	enr, err := api.service.Register(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, enr)
}

func (api *enrollmentApi) enrollmentRetrieve(ctx echo.Context) error {
	enr, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, enr)
}

func (api *enrollmentApi) enrollmentIssueCertificate(ctx echo.Context) error {
	if err := api.service.IssueCertificate(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *enrollmentApi) enrollmentDelete(ctx echo.Context) error {
	if err := api.service.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
