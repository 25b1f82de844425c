package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig = &oauth2.Config{
	RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
	ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
	ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
	Endpoint:     google.Endpoint,
}

var (
	stateStore = make(map[string]time.Time)
	stateMutex sync.RWMutex
)

func generateState() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func storeState(state string) {
	stateMutex.Lock()
	defer stateMutex.Unlock()
	stateStore[state] = time.Now().Add(5 * time.Minute)

	for k, v := range stateStore {
		if time.Now().After(v) {
			delete(stateStore, k)
		}
	}
}

func validateState(state string) bool {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	expiry, exists := stateStore[state]
	if !exists || time.Now().After(expiry) {
		return false
	}
	delete(stateStore, state)
	return true
}

func GoogleLogin(c *fiber.Ctx) error {
	state := generateState()
	storeState(state)
	url := googleOauthConfig.AuthCodeURL(state)
	return c.Redirect(url)
}

// GoogleCallback signs a customer in with Google: the account is created on
// first sign-in with the USER role and the session is the same opaque token
// password login issues.
func GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	if !validateState(state) {
		return response.BadRequest(c, "Invalid state parameter", nil)
	}

	code := c.Query("code")

	oauthToken, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		return response.InternalError(c, err)
	}

	client := googleOauthConfig.Client(context.Background(), oauthToken)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return response.InternalError(c, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	var userData struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &userData); err != nil || userData.Email == "" {
		return response.InternalError(c, fmt.Errorf("unexpected userinfo payload"))
	}

	var u models.User
	err = database.DB.Where("email = ?", userData.Email).First(&u).Error
	if err != nil {
		u = models.User{
			Username: googleUsername(userData.Email),
			Email:    userData.Email,
			FullName: userData.Name,
			UserType: models.UserTypeUser,
			IsActive: true,
			Provider: "google",
		}
		if err := database.DB.Create(&u).Error; err != nil {
			return response.InternalError(c, err)
		}
	}

	if !u.IsActive {
		return response.AccountDisabled(c)
	}

	token, err := IssueToken(u.ID)
	if err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, loginPayload(token, &u), "Login successful")
}

// googleUsername derives a unique username from the email local part.
func googleUsername(email string) string {
	base := strings.SplitN(email, "@", 2)[0]
	username := base
	for i := 1; ; i++ {
		var existing models.User
		if err := database.DB.Where("username = ?", username).First(&existing).Error; err != nil {
			return username
		}
		username = fmt.Sprintf("%s%d", base, i)
	}
}
