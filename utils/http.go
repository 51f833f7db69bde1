package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
)

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

func ParseQueryUintParam(c *gin.Context, param string) (uint, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return 0, ErrEmptyParameter
	}
	valUint64, err := strconv.ParseUint(valStr, 10, 64)
	return uint(valUint64), err
}

// ParseDateQuery reads a YYYY-MM-DD query parameter and returns it as a
// UTC midnight timestamp.
func ParseDateQuery(c *gin.Context, param string) (time.Time, error) {
	valStr := c.Query(param)
	if valStr == "" {
		return time.Time{}, ErrEmptyParameter
	}
	return time.Parse("2006-01-02", valStr)
}
