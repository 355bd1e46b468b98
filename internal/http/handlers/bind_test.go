package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/geocoder89/userhub/internal/config"
	"github.com/geocoder89/userhub/internal/domain/user"
	"github.com/geocoder89/userhub/internal/http/handlers"
)

type bindErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    struct {
		JSON   string                `json:"json"`
		Field  string                `json:"field"`
		Fields []handlers.FieldError `json:"fields"`
	} `json:"details"`
}

func bindRouter(policy config.ValidationPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/users/signup", func(ctx *gin.Context) {
		var req user.CreateUserRequest
		if !handlers.BindJSON(ctx, &req, policy) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	return r
}

func postSignup(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestBindJSON_ValidationErrorsUseJSONFieldNames(t *testing.T) {
	r := bindRouter(strictPolicy)

	w := postSignup(r, `{"email":"not-an-email"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp bindErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected statusCode field: %d", resp.StatusCode)
	}

	wantRules := map[string]string{
		"email":    "email",
		"password": "required",
	}

	found := map[string]handlers.FieldError{}
	for _, fieldErr := range resp.Details.Fields {
		found[fieldErr.Field] = fieldErr
	}

	for field, rule := range wantRules {
		fieldErr, ok := found[field]
		if !ok {
			t.Fatalf("missing field error for %q: %+v", field, resp.Details.Fields)
		}
		if fieldErr.Rule != rule {
			t.Fatalf("field %q rule mismatch: got %q want %q", field, fieldErr.Rule, rule)
		}
		if fieldErr.Message == "" {
			t.Fatalf("field %q should include a non-empty message", field)
		}
	}
}

func TestBindJSON_TypeMismatchUsesJSONFieldNames(t *testing.T) {
	r := bindRouter(strictPolicy)

	w := postSignup(r, `{"email":5,"password":"pw"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp bindErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if resp.Details.JSON != "invalid_json_type" {
		t.Fatalf("expected invalid_json_type, got %q", resp.Details.JSON)
	}
	if resp.Details.Field != "email" {
		t.Fatalf("expected detail field to be email, got %q", resp.Details.Field)
	}
}

func TestBindJSON_UnknownFieldsStrippedByDefault(t *testing.T) {
	r := bindRouter(strictPolicy)

	// "admin" has no matching struct field; the whitelist policy drops it
	w := postSignup(r, `{"email":"a@b.com","password":"pw","admin":true}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestBindJSON_UnknownFieldsRejectedWhenConfigured(t *testing.T) {
	r := bindRouter(config.ValidationPolicy{StripUnknownFields: false, RejectOnViolation: true})

	w := postSignup(r, `{"email":"a@b.com","password":"pw","admin":true}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
}

func TestBindJSON_ViolationsPassWhenRejectDisabled(t *testing.T) {
	r := bindRouter(config.ValidationPolicy{StripUnknownFields: true, RejectOnViolation: false})

	w := postSignup(r, `{"email":"not-an-email"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestBindJSON_InvalidSyntax(t *testing.T) {
	r := bindRouter(strictPolicy)

	w := postSignup(r, `{"email":}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp bindErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if resp.Details.JSON != "invalid_json_syntax" {
		t.Fatalf("expected invalid_json_syntax, got %q", resp.Details.JSON)
	}
}
