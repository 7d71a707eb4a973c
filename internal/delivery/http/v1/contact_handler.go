package v1

import (
	"errors"
	"net/http"
	"time"

	"portfolio-contact-backend/internal/delivery/http/middleware"
	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgSent        = "Message sent successfully! I'll get back to you soon."
	msgUnavailable = "Contact service temporarily unavailable"
	msgSendFailed  = "Sorry, there was an error sending your message. Please try again later."
)

type ContactHandler struct {
	contactUC     domain.ContactUsecase
	exposeDetails bool
	now           func() time.Time
}

// ContactInstructions documents the POST body for GET /api/contact
type ContactInstructions struct {
	Method         string                `json:"method"`
	Endpoint       string                `json:"endpoint"`
	RequiredFields []string              `json:"requiredFields"`
	Example        domain.ContactRequest `json:"example"`
}

// NewContactHandler registers the contact routes (public, no auth required).
// exposeDetails adds the raw transport error to 500 responses.
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, exposeDetails bool) {
	handler := &ContactHandler{
		contactUC:     contactUC,
		exposeDetails: exposeDetails,
		now:           time.Now,
	}

	api.POST("/contact", handler.SubmitContact)
	api.GET("/contact", handler.Instructions)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the message, emails it to the site owner and sends the sender a confirmation.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	outcome := h.contactUC.Process(c.Request.Context(), domain.SubmissionInput{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		SourceIP:    c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
		SubmittedAt: h.now(),
	})

	if outcome.Success {
		response.Sent(c, http.StatusOK, msgSent, outcome.OwnerMessageID)
		return
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(outcome.Err, &validationErr):
		c.Error(apperror.Validation(outcome.FailureReason, validationErr.Violations, outcome.Err))
	case errors.Is(outcome.Err, domain.ErrMailNotConfigured):
		c.Error(apperror.ServiceUnavailable(msgUnavailable, outcome.Err))
	default:
		appErr := apperror.Internal(msgSendFailed, outcome.Err)
		if h.exposeDetails {
			appErr.WithDetail(outcome.FailureReason)
		}
		c.Error(appErr)
	}
}

// bindError maps a failed body decode to its client error
func bindError(err error) *apperror.AppError {
	if tooLarge := middleware.BodyTooLarge(err); tooLarge != nil {
		return tooLarge
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return apperror.Validation(validationErr.Error(), validationErr.Violations, err)
	}
	return apperror.BadRequest("Invalid request body", err)
}

// Instructions godoc
// @Summary      Contact API description
// @Description  Describes the expected POST body.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/contact [get]
func (h *ContactHandler) Instructions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Contact API endpoint", gin.H{
		"instructions": ContactInstructions{
			Method:         http.MethodPost,
			Endpoint:       "/api/contact",
			RequiredFields: []string{"name", "email", "subject", "message"},
			Example: domain.ContactRequest{
				Name:    "John Doe",
				Email:   "john@example.com",
				Subject: "Project Inquiry",
				Message: "Hello, I would like to discuss a potential project...",
			},
		},
	})
}
