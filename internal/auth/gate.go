package auth

import "github.com/turtletrack/turtletrack/internal/model"

// Route paths the gate redirects to.
const (
	PathHome           = "/"
	PathAdminLogin     = "/admin/login"
	PathVolunteerLogin = "/volunteer/login"
)

// Action is the gate's verdict for a guarded route.
type Action int

const (
	// Render lets the request through.
	Render Action = iota
	// RedirectLogin sends an anonymous caller to the login page for
	// the first allowed role.
	RedirectLogin
	// RedirectHome sends an authenticated caller without a permitted
	// role back to the home page.
	RedirectHome
)

// Decision carries the verdict and, for redirects, the target path.
// From preserves the originally requested path so a successful login
// can return to it.
type Decision struct {
	Action Action
	Target string
	From   string
}

// Decide is the route-level authorization check: pure in the session,
// the allowed role set and the requested path.
func Decide(user *model.User, allowed []model.Role, path string) Decision {
	if user == nil {
		target := PathVolunteerLogin
		for _, r := range allowed {
			if r == model.RoleAdmin {
				target = PathAdminLogin
				break
			}
		}
		return Decision{Action: RedirectLogin, Target: target, From: path}
	}
	for _, r := range allowed {
		if user.Role == r {
			return Decision{Action: Render}
		}
	}
	return Decision{Action: RedirectHome, Target: PathHome}
}
