package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"matchday/internal/forum/db"
	"matchday/internal/forum/handlers"
	"matchday/internal/forum/middleware"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("matchday_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates/forum")

	// Middleware
	r.Use(middleware.LoadUser())

	// Handlers
	authHandler := handlers.NewAuthHandler()
	forumHandler := handlers.NewForumHandler()
	voteHandler := handlers.NewVoteHandler()

	// Public Routes
	r.GET("/", forumHandler.Home)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)

	r.GET("/teams/", forumHandler.ListTeams)
	r.GET("/teams/:team_id", forumHandler.TeamPosts)
	r.GET("/teams/:team_id/post/:post_id", forumHandler.PostDetail)
	// The detail page is public but commenting checks the session itself
	r.POST("/teams/:team_id/post/:post_id", forumHandler.CreateComment)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/logout", authHandler.Logout)
		authorized.GET("/teams/:team_id/post/new", forumHandler.ShowNewPost)
		authorized.POST("/teams/:team_id/post/new", forumHandler.CreatePost)
		authorized.POST("/teams/:team_id/post/:post_id/upvote", voteHandler.UpvotePost)
		authorized.POST("/teams/:team_id/post/:post_id/comment/:comment_id/upvote", voteHandler.UpvoteComment)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Matchday forum starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"timeAgo": func(t time.Time) string {
			duration := time.Since(t)
			seconds := int(duration.Seconds())

			if seconds < 60 {
				return fmt.Sprintf("%ds ago", seconds)
			} else if seconds < 3600 {
				return fmt.Sprintf("%dm ago", seconds/60)
			} else if seconds < 86400 {
				return fmt.Sprintf("%dh ago", seconds/3600)
			}
			return fmt.Sprintf("%dd ago", seconds/86400)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	// Manual registration to ensure keys match handler expectation
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	r.AddFromFilesFuncs("team/list.html", funcMap, assemble(templatesDir+"/views/team/list.html")...)

	r.AddFromFilesFuncs("post/list.html", funcMap, assemble(templatesDir+"/views/post/list.html")...)
	r.AddFromFilesFuncs("post/detail.html", funcMap, assemble(templatesDir+"/views/post/detail.html")...)
	r.AddFromFilesFuncs("post/new.html", funcMap, assemble(templatesDir+"/views/post/new.html")...)

	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
