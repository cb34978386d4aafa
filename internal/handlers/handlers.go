package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/photoproof/internal/account"
	"github.com/example/photoproof/internal/auth"
	"github.com/example/photoproof/internal/upload"
	"github.com/example/photoproof/internal/usecase"
)

// MaxUploadSize bounds multipart memory buffering.
const MaxUploadSize = 10 << 20

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pass  string `json:"pass"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router. The identify
// middleware resolves an optional actor for every request; handlers that
// log history check for one explicitly.
func RegisterRoutes(router *gin.Engine, analysis *usecase.AnalysisUseCase, accounts *account.Service, identify gin.HandlerFunc) {
	router.Use(identify)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		data := gin.H{}
		if actorID, ok := auth.ActorID(c.Request.Context()); ok {
			if acct, err := accounts.Get(c.Request.Context(), actorID); err == nil {
				data["Actor"] = acct.Name
			}
		}
		c.HTML(http.StatusOK, "index.html", data)
	})

	router.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{})
	})

	router.POST("/login", func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")
		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and password are required"})
			return
		}

		_, token, err := accounts.Login(c.Request.Context(), email, password)
		if err != nil {
			if errors.Is(err, account.ErrInvalidCredentials) {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.SetCookie(account.CookieName, token, int(accounts.Sessions().TTL().Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	router.POST("/register", func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
			return
		}
		if req.Name == "" || req.Email == "" || req.Pass == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name, email and pass are required"})
			return
		}

		if _, err := accounts.Register(c.Request.Context(), req.Name, req.Email, req.Pass); err != nil {
			if errors.Is(err, account.ErrEmailTaken) {
				c.JSON(http.StatusOK, gin.H{"success": false, "message": "Email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	router.GET("/logout", func(c *gin.Context) {
		if token, err := c.Cookie(account.CookieName); err == nil {
			_ = accounts.Logout(c.Request.Context(), token)
		}
		c.SetCookie(account.CookieName, "", -1, "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/")
	})

	router.POST("/analyze", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			// A part with an empty filename parses as a plain form value,
			// not a file.
			if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
				if _, ok := form.Value["file"]; ok {
					c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
					return
				}
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
			return
		}
		if file.Filename == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open file"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
			return
		}

		actorID, _ := auth.ActorID(c.Request.Context())
		result, err := analysis.Analyze(c.Request.Context(), actorID, file.Filename, data)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrTypeNotAllowed):
				c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
			case errors.Is(err, upload.ErrUnusableFilename):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
			case errors.Is(err, usecase.ErrEngineFailed):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis Engine Failed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"image_url": result.ImagePath,
			"results": []gin.H{{
				"provider": result.Provider,
				"score":    result.Score,
				"status":   result.Status,
				"color":    result.Color,
			}},
		})
	})

	router.GET("/history", auth.Require(), func(c *gin.Context) {
		actorID, _ := auth.ActorID(c.Request.Context())
		records, err := analysis.History(c.Request.Context(), actorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		history := make([]gin.H, 0, len(records))
		for _, r := range records {
			history = append(history, gin.H{
				"id":         r.ID,
				"image_path": r.ImagePath,
				"score":      r.Score,
				"verdict":    r.Verdict,
				"created_at": r.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "history": history})
	})
}
