package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the body sent on every failed request.
type Error struct {
	Detail string `json:"detail"`
}

// OK sends a 200 JSON response with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message sends a 200 JSON response with a confirmation message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// BadRequest sends 400 with error detail.
func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, Error{Detail: detail})
}

// NotFound sends 404 with error detail.
func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, Error{Detail: detail})
}

// Internal sends 500 with error detail.
func Internal(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, Error{Detail: detail})
}
