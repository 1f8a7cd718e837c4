package middleware

import (
	"net/http"

	"CampusPortal/internal/auth"
	"CampusPortal/pkg/httperr"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// rbacModel is the Casbin RBAC model used for role gating.
const rbacModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && r.act == p.act`

// rbacPolicies is the declarative authorization table: (role, route
// pattern, verb). Endpoints absent from the table are gated only by
// authentication, not by role.
var rbacPolicies = [][]string{
	{auth.RoleAdmin, "/api/events", http.MethodPost},
	{auth.RoleAdmin, "/api/events/:id", http.MethodPut},
	{auth.RoleAdmin, "/api/events/:id", http.MethodDelete},
	{auth.RoleAdmin, "/api/events/upload", http.MethodPost},
	{auth.RoleAdmin, "/api/announcements", http.MethodPost},
	{auth.RoleAdmin, "/api/announcements/:id", http.MethodPut},
	{auth.RoleAdmin, "/api/announcements/:id", http.MethodDelete},
	{auth.RoleAdmin, "/api/inquiries", http.MethodGet},
	{auth.RoleAdmin, "/api/inquiries/:id", http.MethodPut},
	{auth.RoleAdmin, "/api/inquiries/:id", http.MethodDelete},
	{auth.RoleAdmin, "/api/admin/stats", http.MethodGet},
	{auth.RoleAdmin, "/api/admin/students", http.MethodGet},
}

// NewEnforcer builds the Casbin enforcer with the model and policy table
// defined in code; there is no external policy file to drift out of sync.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	enforcer.AddFunction("keyMatch", util.KeyMatchFunc)

	if _, err := enforcer.AddPolicies(rbacPolicies); err != nil {
		return nil, err
	}
	return enforcer, nil
}

// RBACMiddleware enforces the authorization table after authentication.
type RBACMiddleware struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

func NewRBACMiddleware(enforcer *casbin.Enforcer, logger *zap.Logger) *RBACMiddleware {
	return &RBACMiddleware{enforcer: enforcer, logger: logger}
}

// Authorize requires a prior identity and checks (role, route, verb)
// against the policy table. No identity is a 401; wrong role is a 403.
func (m *RBACMiddleware) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := auth.IdentityFromContext(c)
		if user == nil {
			return httperr.JSON(c, httperr.ErrMissingToken)
		}

		allowed, err := m.enforcer.Enforce(user.Role, c.Path(), c.Request().Method)
		if err != nil {
			m.logger.Error("rbac enforce failed", zap.Error(err))
			return httperr.JSON(c, httperr.ErrInternal)
		}
		if !allowed {
			return httperr.JSON(c, httperr.ErrForbidden)
		}
		return next(c)
	}
}
