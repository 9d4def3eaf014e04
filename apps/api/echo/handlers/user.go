package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/eduhub/core/user"
)

type userApi struct {
	service *user.Service
}

func RegisterUserAPI(g *echo.Group, svc *user.Service) {
	api := userApi{service: svc}

	ug := g.Group("/users")
	ug.POST("/register", api.userCreate)
	ug.GET("", api.userQuery)
	ug.GET("/active-students", api.userQueryActiveStudents)
	ug.GET("/recent", api.userQueryRecent)
	ug.GET("/:id", api.userRetrieve)
	ug.PUT("/:id/profile", api.userUpdateProfile)
	ug.DELETE("/:id", api.userDeactivate)
}

// Handlers

func (api *userApi) userCreate(ctx echo.Context) error {
	data := new(user.NewStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.service); err != nil {
		return err
	}

	usr, err := api.service.CreateStudent(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userApi) userQuery(ctx echo.Context) error {
	filter := new(user.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	users, err := api.service.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) userQueryActiveStudents(ctx echo.Context) error {
	users, err := api.service.ActiveStudents(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) userQueryRecent(ctx echo.Context) error {
	months, _ := strconv.Atoi(ctx.QueryParam("months"))
	users, err := api.service.RecentSignups(ctx.Request().Context(), months)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) userRetrieve(ctx echo.Context) error {
	usr, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) userUpdateProfile(ctx echo.Context) error {
	data := new(user.UpdateProfile)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.service.ModifyProfile(ctx.Request().Context(), ctx.Param("id"), *data); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *userApi) userDeactivate(ctx echo.Context) error {
	if err := api.service.Deactivate(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
