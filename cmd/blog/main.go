package main

import (
	"html/template"
	"log"
	"os"
	"path/filepath"

	"matchday/internal/blog/db"
	"matchday/internal/blog/handlers"

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

	// Initialize Database (migrate + idempotent seed)
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Sessions back the flash messages; the blog has no logins
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("blog_session", store))

	r.HTMLRender = loadTemplates("./web/templates/blog")

	// Handlers
	blogHandler := handlers.NewBlogHandler()

	r.GET("/", blogHandler.Home)
	r.GET("/post/:id", blogHandler.PostDetail)
	r.POST("/post/:id/comment", blogHandler.CreateComment)
	r.GET("/users", blogHandler.ListUsers)
	r.GET("/user/:id", blogHandler.UserProfile)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	log.Printf("Matchday blog starting on :%s", port)
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

	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	r.AddFromFilesFuncs("post/list.html", funcMap, assemble(templatesDir+"/views/post/list.html")...)
	r.AddFromFilesFuncs("post/detail.html", funcMap, assemble(templatesDir+"/views/post/detail.html")...)

	r.AddFromFilesFuncs("user/list.html", funcMap, assemble(templatesDir+"/views/user/list.html")...)
	r.AddFromFilesFuncs("user/profile.html", funcMap, assemble(templatesDir+"/views/user/profile.html")...)

	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
