package http

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/domain"
)

type StudentHandler struct {
	enrollments *usecase.EnrollmentUseCase
}

func NewStudentHandler(enrollments *usecase.EnrollmentUseCase) *StudentHandler {
	return &StudentHandler{enrollments: enrollments}
}

func emailParam(c *gin.Context) string {
	raw := c.Param("email")
	if email, err := url.PathUnescape(raw); err == nil {
		return email
	}
	return raw
}

// POST /students/access
func (h *StudentHandler) Grant(c *gin.Context) {
	var req struct {
		StudentEmail   string `json:"studentEmail" binding:"required"`
		CourseID       string `json:"courseId" binding:"required"`
		CertificateURL string `json:"certificateUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studentEmail and courseId are required"})
		return
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course id"})
		return
	}

	grant, err := h.enrollments.Grant(c.Request.Context(), courseID, req.StudentEmail, req.CertificateURL)
	if err != nil {
		fail(c, err, "failed to grant access")
		return
	}
	c.JSON(http.StatusOK, grant)
}

// GET /students/access/:courseId
func (h *StudentHandler) List(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		fail(c, domain.ErrCourseNotFound, "")
		return
	}

	grants, err := h.enrollments.ListForCourse(c.Request.Context(), courseID)
	if err != nil {
		fail(c, err, "failed to list students")
		return
	}
	c.JSON(http.StatusOK, domain.SearchGrants(grants, c.Query("search")))
}

// DELETE /students/access/:courseId/:email
func (h *StudentHandler) Revoke(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		fail(c, domain.ErrGrantNotFound, "")
		return
	}

	if err := h.enrollments.Revoke(c.Request.Context(), courseID, emailParam(c)); err != nil {
		fail(c, err, "failed to remove student")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student removed successfully"})
}

// PUT /students/access/:courseId/:email/update
func (h *StudentHandler) Update(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		fail(c, domain.ErrGrantNotFound, "")
		return
	}

	var patch domain.GrantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	grant, err := h.enrollments.Update(c.Request.Context(), courseID, emailParam(c), patch)
	if err != nil {
		fail(c, err, "failed to update student")
		return
	}
	c.JSON(http.StatusOK, grant)
}
