package v1

import (
	"net/http"

	"go-internship-backend/internal/delivery/http/middleware"
	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes. Applying only needs a
// session; the profile check happens in the usecase so the client gets a
// message instead of a redirect.
func NewApplicationHandler(session *gin.RouterGroup, candidate *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	session.POST("/apply", handler.Apply)
	candidate.GET("/applications", handler.MyApplications)
}

// ApplyRequest is the request payload for applying to an internship
type ApplyRequest struct {
	InternshipID int64 `json:"internship_id" form:"internship_id"`
}

// Apply godoc
// @Summary      Apply to an internship
// @Description  Submit one application per internship
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Internship to apply to"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /apply [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var req ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperror.BadRequest("internship_id is required"))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), session.UserID, req.InternshipID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// MyApplications godoc
// @Summary      My applications
// @Description  Applications of the signed-in candidate with internship details, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Success      302
// @Router       /applications [get]
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	session := middleware.CurrentSession(c)

	apps, err := h.applicationUC.MyApplications(c.Request.Context(), session.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}
