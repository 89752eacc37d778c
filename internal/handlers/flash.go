package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"corecrm/internal/dto"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "crm_flash"

// setFlash stores a one-shot notification in a cookie scoped to the admin
// listing. The next GetFlash call consumes it.
func setFlash(c echo.Context, flashType, message string) {
	payload, err := json.Marshal(dto.FlashMessage{Type: flashType, Message: message})
	if err != nil {
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     adminListPath,
		MaxAge:   300,
		HttpOnly: true,
	})
}

// GetFlash pops the pending flash message, if any
// @Summary Consume the pending flash message
// @Tags Customers
// @Produce json
// @Success 200 {object} object{flash=dto.FlashMessage} "Flash message or null"
// @Router /admin/clientes/flash [get]
func (h *CustomerHandler) GetFlash(c echo.Context) error {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, map[string]interface{}{"flash": nil})
	}

	// Expire the cookie so the message shows exactly once
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     adminListPath,
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"flash": nil})
	}

	var flash dto.FlashMessage
	if err := json.Unmarshal(decoded, &flash); err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"flash": nil})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"flash": &flash})
}
