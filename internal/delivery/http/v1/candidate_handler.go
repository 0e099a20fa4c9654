package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go-internship-backend/internal/delivery/http/middleware"
	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers the profile routes on a session-guarded group.
func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	r.GET("/profile", handler.GetProfile)
	r.POST("/complete-profile", handler.CompleteProfile)
}

// ProfileRequest is the profile form. Skills and interests are optional.
type ProfileRequest struct {
	Name      string  `json:"name" form:"name"`
	Age       formInt `json:"age" form:"age"`
	Gender    string  `json:"gender" form:"gender"`
	City      string  `json:"city" form:"city"`
	State     string  `json:"state" form:"state"`
	Education string  `json:"education" form:"education"`
	Skills    string  `json:"skills" form:"skills"`
	Interests string  `json:"interests" form:"interests"`
}

// formInt holds a whole number sent either as a JSON number or as text,
// which is how HTML form inputs serialize it.
type formInt string

func (n *formInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = formInt(s)
		return nil
	}
	*n = formInt(data)
	return nil
}

// Int returns 0 for a blank value so that `required` reports it. ok is false
// when the text is not a whole number.
func (n formInt) Int() (value int, ok bool) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}

// GetProfile godoc
// @Summary      Get profile
// @Description  The signed-in user and their candidate profile, which is null until the form is completed
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProfileView}
// @Success      302
// @Router       /profile [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	session := middleware.CurrentSession(c)

	view, err := h.candidateUC.GetProfile(c.Request.Context(), session.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", view)
}

// CompleteProfile godoc
// @Summary      Complete profile
// @Description  Create or replace the candidate profile of the signed-in user
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Profile form"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /complete-profile [post]
func (h *CandidateHandler) CompleteProfile(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var req ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Invalid profile form"))
		return
	}

	age, ok := req.Age.Int()
	if !ok {
		_ = c.Error(apperror.BadRequest("age must be a number"))
		return
	}

	candidate := &domain.Candidate{
		Name:      req.Name,
		Age:       age,
		Gender:    req.Gender,
		City:      req.City,
		State:     req.State,
		Education: req.Education,
		Skills:    req.Skills,
		Interests: req.Interests,
	}
	if err := h.candidateUC.CompleteProfile(c.Request.Context(), session.UserID, candidate); err != nil {
		_ = c.Error(err)
		return
	}

	response.SuccessWithRedirect(c, http.StatusOK, "Profile updated successfully", "/dashboard", nil)
}
