package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"studymap/pkg/roadmap/repository"
	"studymap/pkg/roadmap/service"
)

var levels = map[string]bool{"beginner": true, "intermediate": true, "advanced": true}

type RoadmapCtrl struct{ svc service.RoadmapService }

func NewRoadmapCtrl(svc service.RoadmapService) *RoadmapCtrl { return &RoadmapCtrl{svc: svc} }

type generateReq struct {
	Goal            string   `json:"goal"`
	Level           string   `json:"level"`
	TotalDays       int      `json:"totalDays"`
	CompletedTopics []string `json:"completedTopics"`
}

func (h *RoadmapCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req generateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.Goal = strings.TrimSpace(req.Goal)
	if req.Goal == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Goal is required"})
	}
	if req.Level == "" {
		req.Level = "beginner"
	}
	if !levels[req.Level] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid level"})
	}
	if req.TotalDays == 0 {
		req.TotalDays = 30
	}
	if req.TotalDays < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "totalDays must be positive"})
	}

	m, err := h.svc.Generate(uid, req.Goal, req.Level, req.TotalDays, req.CompletedTopics)
	if err != nil {
		log.Printf("[roadmap] generate for %s failed: %v", uid, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate roadmap"})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *RoadmapCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.ListByOwner(uid)
	if err != nil {
		log.Printf("[roadmap] list for %s failed: %v", uid, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list roadmaps"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RoadmapCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.svc.Get(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Roadmap not found"})
		}
		log.Printf("[roadmap] get %d for %s failed: %v", id, uid, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load roadmap"})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *RoadmapCtrl) PatchTask(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Task not found"})
	}
	var body struct {
		Completed *bool `json:"completed"`
	}
	if err := c.Bind(&body); err != nil || body.Completed == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "completed is required"})
	}

	task, err := h.svc.SetTaskCompleted(uint(id), uid, index, *body.Completed)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Roadmap not found"})
		case errors.Is(err, repository.ErrTaskIndexOutOfRange):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Task not found"})
		default:
			log.Printf("[roadmap] patch task %d/%d for %s failed: %v", id, index, uid, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update task"})
		}
	}
	return c.JSON(http.StatusOK, task)
}

func (h *RoadmapCtrl) Graph(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.svc.PrerequisiteGraph(uint(id), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Roadmap not found"})
		}
		// raw model payloads stay in the log, never in the response
		log.Printf("[roadmap] graph %d for %s failed: %v", id, uid, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to derive prerequisite graph"})
	}
	return c.JSON(http.StatusOK, g)
}
