package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamegestor/catalog-api/internal/core/validation"
)

// bindValidated decodes the JSON body once, runs the rule set against the raw
// object so the full error list is accumulated before responding, and only
// then binds the typed request. The returned *validation.Error is rendered by
// the central error handler as a 400 with the error list.
func bindValidated(c echo.Context, rules validation.RuleSet, out any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := rules.Apply(doc); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
