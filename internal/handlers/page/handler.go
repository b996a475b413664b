package page

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/content"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pages", func(routerGroup chi.Router) {
		routerGroup.Get("/about", handler.GetAbout)
	})
}

// GetAbout returns the About page.
// @Summary Get the About page
// @Description Retrieve the hotel story, amenities, team and awards.
// @Tags Page
// @Produce json
// @Success 200 {object} response.Data[content.About] "About page"
// @Failure 500 {object} response.Error
// @Router /v1/pages/about [get]
func (handler *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAbout")
	defer scope.End()

	about, err := content.GetAbout()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load about page")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, about)
}
