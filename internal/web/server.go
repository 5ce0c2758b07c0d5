package web

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"soundbyte/internal/clips"
	"soundbyte/internal/version"
)

// Run starts a small HTTP status server exposing health and the clip list.
// It blocks until the server exits or ctx is cancelled; run in a goroutine.
func Run(ctx context.Context, addr string, registry *clips.Registry) {
	log.Printf("[INFO] Starting status server on %s...", addr)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"app":    version.AppName,
		})
	})

	r.GET("/clips", func(c *gin.Context) {
		names := make([]string, 0, registry.Len())
		for label := range registry.List() {
			names = append(names, label)
		}
		c.JSON(http.StatusOK, gin.H{
			"count": len(names),
			"clips": names,
		})
	})

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down status server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[ERR] Status server error: %v", err)
	}
}
