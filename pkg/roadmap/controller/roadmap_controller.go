package controller

import "github.com/labstack/echo/v4"

type RoadmapController interface {
	Generate(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	PatchTask(c echo.Context) error
	Graph(c echo.Context) error
}
