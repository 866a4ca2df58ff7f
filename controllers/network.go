package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// @Summary Endpoint just pings the server
// @Description Returns a basic liveness message with the process uptime
// @Tags test
// @Produce json
// @Success 200 {object} object{message=string,uptime=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
		"uptime":  time.Since(startedAt).Round(time.Second).String(),
	})
}
