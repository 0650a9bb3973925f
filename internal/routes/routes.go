package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/farmdirect/farmdirect-golang/internal/auth"
	"github.com/farmdirect/farmdirect-golang/internal/middleware"
)

// CORSMiddleware lets the browser frontends talk to us from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		// The browser's preflight OPTIONS request must get "204 No Content".
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter mounts the GraphQL endpoint (with GraphiQL on GET) and a ping
// route for health checks.
func SetupRouter(schema graphql.Schema, tokens *auth.TokenManager) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	gqlHandler := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	gql := router.Group("/graphql")
	gql.Use(middleware.GraphQLContext(tokens))
	{
		gql.GET("", gin.WrapH(gqlHandler))
		gql.POST("", gin.WrapH(gqlHandler))
	}

	router.GET("/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	return router
}
