package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sajid-dev/doctors-portal-api/internal/auth"
	"github.com/sajid-dev/doctors-portal-api/internal/store"
)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	Store  *store.Store
	Tokens *auth.TokenManager
	Logger *zap.Logger
}

func NewHandler(st *store.Store, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  st,
		Tokens: tokens,
		Logger: logger,
	}
}

// Health answers the liveness probe at the root path.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Server is up and running")
}

// pathID parses the :id path parameter into an ObjectID, answering
// 400 on a malformed value.
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.Logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}
