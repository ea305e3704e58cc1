package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/domain"
)

type CourseHandler struct {
	courses *usecase.CourseUseCase
}

func NewCourseHandler(courses *usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

type videoRequest struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

type sectionRequest struct {
	Title  string         `json:"title"`
	Videos []videoRequest `json:"videos"`
}

type courseRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description" binding:"required"`
	ImageURL    string           `json:"imageUrl" binding:"required"`
	Sections    []sectionRequest `json:"sections"`
}

func (r courseRequest) toInput() domain.CourseInput {
	sections := make([]domain.SectionInput, len(r.Sections))
	for i, s := range r.Sections {
		videos := make([]domain.VideoInput, len(s.Videos))
		for j, v := range s.Videos {
			videos[j] = domain.VideoInput{Title: v.Title, VideoURL: v.VideoURL}
		}
		sections[i] = domain.SectionInput{Title: s.Title, Videos: videos}
	}
	return domain.CourseInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Sections:    sections,
	}
}

func includeStudents(c *gin.Context) bool {
	return c.Query("include") == "students"
}

// GET /courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context(), includeStudents(c))
	if err != nil {
		fail(c, err, "failed to fetch courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GET /courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, domain.ErrCourseNotFound, "")
		return
	}

	course, err := h.courses.Get(c.Request.Context(), id, includeStudents(c))
	if err != nil {
		fail(c, err, "failed to fetch course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course data"})
		return
	}

	course, err := h.courses.Create(c.Request.Context(), req.toInput())
	if err != nil {
		fail(c, err, "failed to create course")
		return
	}
	c.JSON(http.StatusCreated, course)
}

// PUT /courses/:id
func (h *CourseHandler) Replace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, domain.ErrCourseNotFound, "")
		return
	}

	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course data"})
		return
	}

	course, err := h.courses.Replace(c.Request.Context(), id, req.toInput())
	if err != nil {
		fail(c, err, "failed to update course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// DELETE /courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, domain.ErrCourseNotFound, "")
		return
	}

	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, "failed to delete course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
