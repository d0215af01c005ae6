package handlers

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/aqardot/aqardot-api/internal/mailer"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Contact relays the contact form to the site inbox through the mail
// provider. The sender's address goes into the body, not the envelope.
func Contact(mail *mailer.Mailer, contactTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Subject string `json:"subject"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil ||
			req.Name == "" || req.Email == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing_fields"})
			return
		}

		subject := req.Subject
		if subject == "" {
			subject = "New message from AqarDot contact form"
		}
		body := fmt.Sprintf("<p>From: %s (%s)</p><p>%s</p>",
			html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Message))

		if err := mail.Send(c.Request.Context(), contactTo, subject, body); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "email_api_failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "sent"})
	}
}

// Health reports process liveness and the Mongo connection state.
func Health(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		mongoState := "connected"
		message := "ok"
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			mongoState = "disconnected"
			message = err.Error()
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":      mongoState == "connected",
			"mongo":   mongoState,
			"message": message,
		})
	}
}
