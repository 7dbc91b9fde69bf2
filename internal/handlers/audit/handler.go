package audit

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/audit/model/dto"
	"hotel/internal/domains/audit/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Audit
	otel    otel.Otel
}

func New(service service.Audit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/audit", func(routerGroup chi.Router) {
		routerGroup.Post("/exports", handler.Export)
	})
}

// Export writes the booking history to object storage.
// @Summary Export booking history
// @Description Uploads every stored booking, cancelled ones included, as a JSON document.
// @Tags Audit
// @Accept json
// @Produce json
// @Param request body dto.ExportRequest false "Export filter"
// @Success 201 {object} response.Data[dto.ExportResponse] "Export written"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/audit/exports [post]
func (handler *Handler) Export(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	req := dto.ExportRequest{}

	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	res, err := handler.service.Export(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export booking history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
