package domain

// LoginRoute is where every unauthenticated navigation lands.
const LoginRoute = "/login"

// defaultRoutes maps each role to its canonical dashboard landing view.
var defaultRoutes = map[Role]string{
	RoleEmployee: "/dashboard/employee",
	RoleHR:       "/dashboard/hr",
	RoleAdmin:    "/dashboard/admin",
}

// DefaultRoute returns the landing route for a role. Unknown roles fall
// back to the login route rather than a dashboard they cannot use.
func DefaultRoute(role Role) string {
	if route, ok := defaultRoutes[role]; ok {
		return route
	}
	return LoginRoute
}

// GuardDecision is the outcome of a route authorization check: either
// the view may render, or the caller must be redirected.
type GuardDecision struct {
	Allow      bool
	RedirectTo string
}

// Authorize is the route guard: a pure function of the required role
// and the current identity, re-evaluated on every navigation.
//
//  1. No identity → redirect to the login view.
//  2. Role mismatch → redirect to the identity's own landing view,
//     never to the requested role's.
//  3. Otherwise allow.
func Authorize(required Role, current *Identity) GuardDecision {
	if current == nil {
		return GuardDecision{RedirectTo: LoginRoute}
	}
	if current.Role != required {
		return GuardDecision{RedirectTo: DefaultRoute(current.Role)}
	}
	return GuardDecision{Allow: true}
}
