package webapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/morfo-lang/morfo/service"
	"go.uber.org/zap"
)

// Render mounts the language listing and the two render endpoints on
// the given group. A nil logger disables request logging.
func Render(group *echo.Group, svc *service.Service, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	group.GET("/languages", func(c echo.Context) error {
		cards, err := svc.Languages(c.Request().Context())
		if err != nil {
			return err
		}

		type language struct {
			Language string `json:"language"`
			Name     string `json:"name"`
			Family   string `json:"family"`
		}
		res := make([]language, 0, len(cards))
		for _, card := range cards {
			res = append(res, language{
				Language: card.Language,
				Name:     card.Name,
				Family:   string(card.Family),
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"languages": res,
		})
	})

	group.POST("/render/bio", func(c echo.Context) error {
		req := service.BioRequest{}
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Name == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Name cannot be left blank",
			})
		}
		if req.Profession == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Profession cannot be left blank",
			})
		}

		start := time.Now()
		res, err := svc.RenderBio(c.Request().Context(), req)
		if err != nil {
			return err
		}
		logger.Info("rendered bio",
			zap.String("name", req.Name),
			zap.Int("languages", len(res)),
			zap.Duration("duration", time.Since(start)),
		)

		return c.JSON(http.StatusOK, map[string]any{
			"results":     res,
			"executionMs": float64(time.Since(start)) / float64(time.Millisecond),
		})
	})

	group.POST("/render/clause", func(c echo.Context) error {
		req := service.ClauseRequest{}
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Language == "" || req.Pattern == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Language and pattern are both required",
			})
		}

		start := time.Now()
		text, err := svc.RenderClause(c.Request().Context(), req)
		if err != nil {
			return err
		}
		logger.Info("rendered clause",
			zap.String("language", req.Language),
			zap.String("pattern", req.Pattern),
			zap.Duration("duration", time.Since(start)),
		)

		return c.JSON(http.StatusOK, map[string]any{
			"text": text,
		})
	})
}
