// Package respond writes use case results onto a gin context.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/shared/outcome"
)

// Problem writes the error body for a non-OK result.
func Problem(c *gin.Context, p outcome.Problem) {
	body := outcome.Body(p)
	c.JSON(body.StatusCode, body)
}

// Result writes r. A successful payload is rendered by render with the
// given status; failures are rendered by Problem.
func Result[T any](c *gin.Context, r outcome.Result[T], status int, render func(T) any) {
	v, ok := r.Value()
	if !ok {
		Problem(c, r.Problem())
		return
	}
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, render(v))
}

// BadRequest answers 400 for a request that could not be bound.
func BadRequest(c *gin.Context, err error) {
	slog.Warn("request binding failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	Problem(c, outcome.Problem{Kind: outcome.KindInvalid, Message: "request body is not valid JSON for this endpoint"})
}

// Unauthorized answers 401 when a handler behind AuthRequired finds no user.
func Unauthorized(c *gin.Context) {
	Problem(c, outcome.Problem{Kind: outcome.KindUnauthorized, Message: "Unauthorized"})
}

// NotFound answers the catch-all 404.
func NotFound(c *gin.Context) {
	Problem(c, outcome.Problem{Kind: outcome.KindNotFound, Message: "Route " + c.Request.Method + ":" + c.Request.URL.Path + " not found"})
}

// Recovery answers 500 after a panic.
func Recovery(c *gin.Context, recovered any) {
	slog.Error("panic recovered", "error", recovered, "path", c.Request.URL.Path)
	body := outcome.Body(outcome.Problem{Kind: outcome.KindInternal})
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}
