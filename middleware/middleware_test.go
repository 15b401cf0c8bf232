package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"huzla/models"
	"huzla/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubUserRepo struct {
	user *models.User
}

func (r *stubUserRepo) GetByID(id string) (*models.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}

func (r *stubUserRepo) GetByEmail(string) (*models.User, error)    { return nil, nil }
func (r *stubUserRepo) GetAll() ([]models.User, error)             { return nil, nil }
func (r *stubUserRepo) Create(*models.User) error                  { return nil }
func (r *stubUserRepo) Update(*models.User) error                  { return nil }
func (r *stubUserRepo) UpdateSetDocument(string, bson.M) error     { return nil }
func (r *stubUserRepo) Delete(string) error                        { return nil }
func (r *stubUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return r.GetByID(id)
}

func authedRouter(repo *stubUserRepo, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuthMiddleware(repo)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"userRole": c.GetString("userRole"),
		})
	})
	r.GET("/protected", chain...)
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateToken("u-1", "a@example.com", models.RoleProvider)
	require.NoError(t, err)
	repo := &stubUserRepo{user: &models.User{ID: "u-1", TokenHash: utils.HashToken(token)}}
	r := authedRouter(repo)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u-1"`)
	assert.Contains(t, w.Body.String(), `"userRole":"provider"`)
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	token, err := utils.GenerateToken("u-1", "a@example.com", models.RoleCustomer)
	require.NoError(t, err)

	t.Run("no header", func(t *testing.T) {
		r := authedRouter(&stubUserRepo{})
		assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := authedRouter(&stubUserRepo{})
		assert.Equal(t, http.StatusUnauthorized, get(r, "Token abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		r := authedRouter(&stubUserRepo{})
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer garbage").Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		r := authedRouter(&stubUserRepo{})
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
	})

	t.Run("rotated-out token", func(t *testing.T) {
		repo := &stubUserRepo{user: &models.User{ID: "u-1", TokenHash: utils.HashToken("a-newer-token")}}
		r := authedRouter(repo)
		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Session expired")
	})

	t.Run("revoked token", func(t *testing.T) {
		repo := &stubUserRepo{user: &models.User{ID: "u-1", TokenHash: ""}}
		r := authedRouter(repo)
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
	})
}

func TestRequireRole(t *testing.T) {
	token, err := utils.GenerateToken("u-1", "a@example.com", models.RoleCustomer)
	require.NoError(t, err)
	repo := &stubUserRepo{user: &models.User{ID: "u-1", TokenHash: utils.HashToken(token)}}

	t.Run("role allowed", func(t *testing.T) {
		r := authedRouter(repo, RequireRole(models.RoleCustomer, models.RoleAdmin))
		assert.Equal(t, http.StatusOK, get(r, "Bearer "+token).Code)
	})

	t.Run("role denied", func(t *testing.T) {
		r := authedRouter(repo, RequireRole(models.RoleProvider))
		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "not authorized")
	})
}

func TestRateLimiterEvictsIdleEntries(t *testing.T) {
	store := &rateLimiterStore{entries: make(map[string]*limiterEntry)}

	store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")
	require.Len(t, store.entries, 2)

	// Age one entry past the TTL; a fresh touch keeps the other alive.
	store.entries["10.0.0.1"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	store.getLimiter("10.0.0.2")

	store.evictIdle(limiterIdleTTL)
	assert.NotContains(t, store.entries, "10.0.0.1")
	assert.Contains(t, store.entries, "10.0.0.2")

	// A returning IP just gets a fresh limiter.
	store.getLimiter("10.0.0.1")
	assert.Len(t, store.entries, 2)
}

func TestSanitizeRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var seen string
	r.POST("/echo", SanitizeRequest(), func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		seen = string(raw)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo",
		strings.NewReader(`{"firstName":" <b>Bob</b> ","email":"Bob@Example.COM","password":" raw "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, seen, `"firstName":"&lt;b&gt;Bob&lt;/b&gt;"`)
	assert.Contains(t, seen, `"email":"bob@example.com"`)
	assert.Contains(t, seen, `"password":" raw "`)
}

func TestSanitizeRequestPassesThroughNonJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var seen string
	r.POST("/echo", SanitizeRequest(), func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		seen = string(raw)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("plain <text>"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "plain <text>", seen)
}
