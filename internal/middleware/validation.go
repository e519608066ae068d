package middleware

import (
	"github.com/gin-gonic/gin"
)

// BindQuery binds query parameters into obj. On failure it writes the 400
// response and returns false.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		RespondValidationError(c, err)
		return false
	}
	return true
}

// BindJSON binds the JSON body into obj. On failure it writes the 400
// response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RespondValidationError(c, err)
		return false
	}
	return true
}
