package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	fileadapter "github.com/casbin/casbin/v3/persist/file-adapter"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
)

const testRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

const testRBACPolicy = `p, employee, /api/expenses, GET
p, admin, /api/users, GET
g, manager, employee
g, admin, manager
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	m, err := model.NewModelFromString(testRBACModel)
	if err != nil {
		t.Fatalf("building model: %v", err)
	}

	policyPath := filepath.Join(t.TempDir(), "policy.csv")
	if err := os.WriteFile(policyPath, []byte(testRBACPolicy), 0o600); err != nil {
		t.Fatalf("writing policy file: %v", err)
	}

	e, err := casbin.NewEnforcer(m, fileadapter.NewAdapter(policyPath))
	if err != nil {
		t.Fatalf("building enforcer: %v", err)
	}

	return e
}

func TestMiddlewareAuthorization(t *testing.T) {
	// Arrange
	mw := middlewareAuthorization(newTestEnforcer(t), map[string]map[string]struct{}{
		http.MethodPost: {"/api/login": {}},
	})

	cases := []struct {
		name       string
		method     string
		path       string
		role       string // empty means unauthenticated
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "public endpoint skips enforcement",
			method:     http.MethodPost,
			path:       "/api/login",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "unauthenticated request is rejected",
			method:     http.MethodGet,
			path:       "/api/expenses",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "employee denied on admin route",
			method:     http.MethodGet,
			path:       "/api/users",
			role:       "employee",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin allowed on admin route",
			method:     http.MethodGet,
			path:       "/api/users",
			role:       "admin",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "manager inherits employee routes",
			method:     http.MethodGet,
			path:       "/api/expenses",
			role:       "manager",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(c.method, c.path, nil)
			if c.role != "" {
				ctx := jwt.SetAuth(req.Context(), jwt.Claims{UserID: 1, UserRole: c.role})
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			// Act
			mw(next).ServeHTTP(rec, req)

			// Assert
			if rec.Code != c.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, c.wantStatus)
			}
			if nextCalled != c.wantNext {
				t.Fatalf("next called = %v, want %v", nextCalled, c.wantNext)
			}
		})
	}
}
