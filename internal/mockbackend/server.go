// Package mockbackend serves a canned implementation of the twin chat API for
// local demos and tests. Replies and UI actions are picked by keyword.
package mockbackend

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/longkey1/twin/internal/observability"
	"github.com/longkey1/twin/internal/twin"
	"github.com/longkey1/twin/internal/twin/client"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8000"

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// rule maps message keywords to a reply and an optional action.
type rule struct {
	keywords []string
	reply    string
	action   twin.Action
}

var rules = []rule{
	{
		keywords: []string{"education", "degree", "university", "study"},
		reply:    "I studied Software Engineering at Ben Gurion University, specializing in Intelligent Systems.",
		action:   &twin.HighlightTimeline{ID: "education"},
	},
	{
		keywords: []string{"experience", "career", "job", "work"},
		reply:    "I'm currently a Senior AI Engineer at Google, after research at DeepMind and engineering at Microsoft.",
		action:   &twin.HighlightTimeline{ID: "google"},
	},
	{
		keywords: []string{"skill", "stack", "language"},
		reply:    "My strongest areas are Python, Go and distributed systems.",
		action: &twin.SkillFocus{
			Skills: []string{"Python", "Go", "LLMs", "Distributed Systems", "Cloud"},
			Scores: []float64{95, 80, 90, 85, 75},
		},
	},
	{
		keywords: []string{"project", "built", "portfolio"},
		reply:    "Let me show you the project I'm proudest of.",
		action: &twin.ShowProject{
			ID:          "digital_twin",
			Title:       "Digital Twin",
			Description: "A conversational portfolio that drives a visual panel from structured UI actions.",
			TechStack:   []string{"FastAPI", "Next.js", "Go"},
		},
	},
}

// reply picks the canned reply for message.
func reply(message string) (string, twin.Action) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return r.reply, r.action
			}
		}
	}
	return "Thanks for asking! Try asking about my experience, skills, or projects.", nil
}

// NewServer builds the gin engine serving the mock API.
// When avatar is non-nil it is served at client.AvatarPath.
func NewServer(avatar []byte) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST(client.ChatPath, chatHandler)

	avatarHandler := func(c *gin.Context) {
		if avatar == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "image/png", avatar)
	}
	r.GET(client.AvatarPath, avatarHandler)
	r.HEAD(client.AvatarPath, avatarHandler)

	return r
}

func chatHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	text, action := reply(req.Message)
	resp := client.ChatResponse{SessionID: sessionID, Response: text}
	if action != nil {
		raw, err := twin.EncodeAction(action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.UIAction = &raw
	}

	c.JSON(http.StatusOK, resp)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		observability.WithFields("component", "mockbackend").Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
