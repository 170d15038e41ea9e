package middleware

import (
	"context"

	"github.com/SscSPs/journal_engine/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// actorKey stores the authenticated domain.Actor in the request context.
const actorKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the acting user.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromContext retrieves the authenticated actor from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := c.Request.Context().Value(actorKey).(domain.Actor)
	if !ok || actor.UserID == "" {
		return domain.Actor{}, false
	}
	return actor, true
}
