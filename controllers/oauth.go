package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"courtside/middleware"
	models "courtside/models/postgres"
)

func googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

type googleUserInfo struct {
	Email     string `json:"email"`
	GivenName string `json:"given_name"`
	Name      string `json:"name"`
}

// @Summary Starts Google sign-in
// @Description Redirects to the Google consent screen
// @Tags auth
// @Success 307
// @Router /oauth/google [get]
func GoogleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		state := generateState()
		session.Set("oauth_state", state)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No session!"})
			return
		}
		url := googleOauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
		c.Redirect(http.StatusTemporaryRedirect, url)
	}
}

// @Summary Google sign-in callback
// @Description Exchanges the authorization code, provisions an account on first sign-in and returns a bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} object{token=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /oauth/google/callback [get]
func GoogleCallback(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		expected := session.Get("oauth_state")
		if expected == nil || expected.(string) != c.Query("state") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid oauth state"})
			return
		}

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
			return
		}

		conf := googleOauthConfig()
		token, err := conf.Exchange(c.Request.Context(), code)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Code exchange failed"})
			return
		}

		client := conf.Client(c.Request.Context(), token)
		resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Error fetching user info"})
			return
		}
		defer resp.Body.Close()

		var info googleUserInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Error decoding user info"})
			return
		}

		// Provision the account on first federated sign-in
		var account models.Account
		if err := db.Where("email = ?", info.Email).First(&account).Error; err != nil {
			username := usernameFromEmail(info.Email)
			account = models.Account{
				Email:    info.Email,
				Username: username,
				Provider: "google",
				FullName: info.Name,
				PlayerProfile: models.PlayerProfile{
					Username:  username,
					FirstName: info.GivenName,
				},
			}
			if err := db.Create(&account).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating account"})
				return
			}
		}

		bearer, err := middleware.GenerateToken(account.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": bearer})
	}
}

func generateState() string {
	state, _ := generateCode(8)
	return state
}

func usernameFromEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return email
	}
	return email[:at]
}
