package gateway_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/exebone56/ecom-pulse2/appctx"
	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/gateway"
	"github.com/exebone56/ecom-pulse2/models"
	"github.com/gin-gonic/gin"
)

type staticTokens string

func (s staticTokens) AccessToken() (string, bool) { return string(s), s != "" }

func newTestClient(t *testing.T, r *gin.Engine, tokens gateway.TokenSource) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	cfg := &config.Config{BaseURL: srv.URL, HTTPTimeout: 5 * time.Second}
	return gateway.NewClient(cfg, tokens)
}

func TestClient_BearerAndCorrelationHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotAuth, gotCid string
	r := gin.New()
	r.GET("/warehouses/", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotCid = c.GetHeader("X-Correlation-Id")
		c.JSON(http.StatusOK, []models.Warehouse{})
	})

	api := newTestClient(t, r, staticTokens("tok-123"))
	ctx := appctx.Set(context.Background(), appctx.ContextKeyCorrelationId, "cid-42")
	if _, err := api.Warehouses(ctx); err != nil {
		t.Fatalf("Warehouses: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotCid != "cid-42" {
		t.Errorf("X-Correlation-Id = %q, want cid-42", gotCid)
	}
}

// Public endpoints work without a stored token; no Authorization header and a
// generated correlation id.
func TestClient_NoTokenStillCalls(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotAuth, gotCid string
	r := gin.New()
	r.GET("/warehouses/", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotCid = c.GetHeader("X-Correlation-Id")
		c.JSON(http.StatusOK, []models.Warehouse{})
	})

	api := newTestClient(t, r, staticTokens(""))
	if _, err := api.Warehouses(context.Background()); err != nil {
		t.Fatalf("Warehouses: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
	if gotCid == "" {
		t.Error("no correlation id generated")
	}
}

func TestClient_ErrorShapes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name string
		body any
		want string
	}{
		{"detail", gin.H{"detail": "not found"}, "not found"},
		{"message", gin.H{"message": "bad input"}, "bad input"},
		{"error", gin.H{"error": "broken"}, "broken"},
		{
			"field map joined sorted",
			gin.H{"partner": []string{"required"}, "items": []string{"too few", "bad product"}},
			"items: too few, bad product; partner: required",
		},
		{"unrecognized body", "plain text", "request failed: 400"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/warehouses/", func(c *gin.Context) {
				c.JSON(http.StatusBadRequest, tc.body)
			})
			api := newTestClient(t, r, nil)

			_, err := api.Warehouses(context.Background())
			var apiErr *gateway.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error type = %T, want *gateway.APIError", err)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", apiErr.Status)
			}
			if apiErr.Message != tc.want {
				t.Errorf("message = %q, want %q", apiErr.Message, tc.want)
			}
		})
	}
}

// Transport failures collapse into one user-facing message with status 0.
func TestClient_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore
	cfg := &config.Config{BaseURL: srv.URL, HTTPTimeout: time.Second}
	api := gateway.NewClient(cfg, nil)

	_, err := api.Warehouses(context.Background())
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *gateway.APIError", err)
	}
	if apiErr.Status != 0 {
		t.Errorf("status = %d, want 0", apiErr.Status)
	}
	if apiErr.Message != "could not reach the server" {
		t.Errorf("message = %q, want %q", apiErr.Message, "could not reach the server")
	}
}

func TestDocuments_FilterAndPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var gotQuery map[string]string
	r := gin.New()
	r.GET("/documents/", func(c *gin.Context) {
		gotQuery = map[string]string{}
		for k := range c.Request.URL.Query() {
			gotQuery[k] = c.Query(k)
		}
		next := "http://backend/api/documents/?page=3"
		prev := "http://backend/api/documents/?page=1"
		c.JSON(http.StatusOK, models.Page[models.Document]{
			Count:    55,
			Next:     &next,
			Previous: &prev,
			Results:  []models.Document{{ID: 1}, {ID: 2}},
		})
	})
	api := newTestClient(t, r, nil)

	page, err := api.Documents(context.Background(), gateway.DocumentFilter{
		Search:       "bolt",
		DocumentType: models.DocumentTypeIncoming,
		Status:       models.DocumentStatusPending,
		Page:         2,
	})
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}

	want := map[string]string{
		"search":        "bolt",
		"document_type": "incoming",
		"status":        "pending",
		"page":          "2",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query[%s] = %q, want %q", k, gotQuery[k], v)
		}
	}
	if page.Count != 55 || len(page.Results) != 2 {
		t.Errorf("page = count %d / %d results, want 55 / 2", page.Count, len(page.Results))
	}
	if got := page.CurrentPage(); got != 2 {
		t.Errorf("CurrentPage() = %d, want 2", got)
	}
}

// The roles endpoint path contains a server-side typo that must be preserved.
func TestEmployeeRoles_UsesExactServerPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/emoloyees/roles/", func(c *gin.Context) {
		c.JSON(http.StatusOK, []models.Role{{Value: "manager", Label: "Manager"}})
	})
	api := newTestClient(t, r, nil)

	roles, err := api.EmployeeRoles(context.Background())
	if err != nil {
		t.Fatalf("EmployeeRoles: %v", err)
	}
	if len(roles) != 1 || roles[0].Value != "manager" {
		t.Errorf("roles = %+v", roles)
	}
}
