package v1

import (
	"errors"
	"net/http"

	"zentherasoft-backend/internal/delivery/http/response"
	"zentherasoft-backend/internal/domain"
	"zentherasoft-backend/pkg/apperror"
	"zentherasoft-backend/pkg/captcha"
	"zentherasoft-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// The submit route additionally carries the strict per-IP rate limit.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
	public.GET("/contact", handler.Liveness)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the website contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Datos inválidos en el formulario"))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(mapContactError(err))
		return
	}

	response.Success(c)
}

// mapContactError owns the error taxonomy of the pipeline: validation and
// captcha failures are caller-actionable 400s with verbatim messages, while
// configuration and unexpected failures stay opaque 500s.
func mapContactError(err error) *apperror.AppError {
	var verr *validation.Errors
	switch {
	case errors.Is(err, domain.ErrEmailNotConfigured):
		return apperror.Internal("Configuración del servidor incompleta", err)
	case errors.As(err, &verr):
		return apperror.BadRequest("Datos inválidos en el formulario")
	case errors.Is(err, captcha.ErrTokenRequired):
		return apperror.BadRequest("Token reCAPTCHA requerido")
	case errors.Is(err, captcha.ErrVerificationFailed):
		return apperror.BadRequest("Verificación reCAPTCHA fallida. Por favor intenta de nuevo.")
	default:
		return apperror.Internal("Error al enviar el mensaje", err)
	}
}

// Liveness godoc
// @Summary      Contact Endpoint Liveness
// @Description  Trivial health payload so the frontend can probe the route.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /contact [get]
func (h *ContactHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
