package handler

import (
	"github.com/gin-gonic/gin"
)

// Тексты ошибок единого конверта. Совпадают с сообщениями,
// которые исторически отдавал этот API.
const (
	msgBadRequest    = "Bad request"
	msgNotFound      = "Page not found"
	msgUnprocessable = "Unprocessable Content"
	msgInternalError = "Internal server error"
	msgInvalidMethod = "Invalid method!"
)

// errorResponse отправляет единый конверт ошибки:
// {"success": false, "error": <код>, "message": <текст>}
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": message,
	})
}

// NotFoundHandler возвращает обработчик для неизвестных маршрутов (gin NoRoute)
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		errorResponse(c, 404, msgNotFound)
	}
}

// MethodNotAllowedHandler возвращает обработчик для неподдерживаемых
// методов (gin NoMethod, требует HandleMethodNotAllowed = true)
func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		errorResponse(c, 405, msgInvalidMethod)
	}
}
