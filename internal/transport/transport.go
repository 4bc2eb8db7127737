// Package transport provides a new server-entity(by ginext) for server-mode operability with handlers to serve endpoints
package transport

import (
	"context"
	"log"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type InputProcessor interface {
	ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

func NewServer(addr string, proc InputProcessor) *http.Server {
	engine := ginext.New("release")
	engine.GET("/ping", HealthCheck)
	engine.POST("/task", ReceiveTask(proc))

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func HealthCheck(ctx *ginext.Context) {
	log.Println("Received a healthcheck request!")
	ctx.Status(http.StatusOK)
}

func ReceiveTask(proc InputProcessor) func(ctx *ginext.Context) {
	return func(ctx *ginext.Context) {
		var task model.SearchTask

		if err := ctx.ShouldBindJSON(&task); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
			return
		}

		log.Printf("Received task %q: %d bytes of contents", task.TaskID, len(task.Contents))

		res := proc.ProcessInput(ctx.Request.Context(), &task)
		log.Printf("Task %q: %d lines matched", res.TaskID, len(res.Output))

		ctx.JSON(http.StatusOK, res)
	}
}
