package v1

import (
	"net/http"

	"go-internship-backend/internal/delivery/http/middleware"
	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	internshipUC domain.InternshipUsecase
	candidateUC  domain.CandidateUsecase
}

// NewInternshipHandler registers the dashboard and listing routes on a
// candidate-guarded group.
func NewInternshipHandler(r *gin.RouterGroup, internshipUC domain.InternshipUsecase, candidateUC domain.CandidateUsecase) {
	handler := &InternshipHandler{
		internshipUC: internshipUC,
		candidateUC:  candidateUC,
	}

	r.GET("/dashboard", handler.Dashboard)
	r.GET("/internships", handler.List)
}

// Dashboard godoc
// @Summary      Recommendations
// @Description  The best matching internships for the signed-in candidate, most relevant first
// @Tags         internships
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Dashboard}
// @Success      302
// @Router       /dashboard [get]
func (h *InternshipHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.CurrentSession(c)

	candidate, err := h.candidateUC.GetCandidate(ctx, session.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	dashboard, err := h.internshipUC.Dashboard(ctx, candidate)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations retrieved", dashboard)
}

// List godoc
// @Summary      Browse internships
// @Description  All internships, optionally filtered by state and sector (case-insensitive substring), highest stipend first
// @Tags         internships
// @Produce      json
// @Param        state   query     string  false  "State contains"
// @Param        sector  query     string  false  "Sector contains"
// @Success      200  {object}  response.Response{data=domain.InternshipListing}
// @Success      302
// @Router       /internships [get]
func (h *InternshipHandler) List(c *gin.Context) {
	var filter domain.InternshipFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid filter"))
		return
	}

	listing, err := h.internshipUC.Browse(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Internships retrieved", listing)
}
