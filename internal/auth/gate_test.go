package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtletrack/turtletrack/internal/model"
)

func TestDecide_AnonymousRedirectsToFirstAllowedRoleLogin(t *testing.T) {
	d := Decide(nil, []model.Role{model.RoleAdmin}, "/admin")
	assert.Equal(t, RedirectLogin, d.Action)
	assert.Equal(t, PathAdminLogin, d.Target)
	assert.Equal(t, "/admin", d.From)

	d = Decide(nil, []model.Role{model.RoleVolunteer}, "/volunteer")
	assert.Equal(t, RedirectLogin, d.Action)
	assert.Equal(t, PathVolunteerLogin, d.Target)

	// admin wins when both roles are allowed
	d = Decide(nil, []model.Role{model.RoleVolunteer, model.RoleAdmin}, "/admin")
	assert.Equal(t, PathAdminLogin, d.Target)
}

func TestDecide_WrongRoleRedirectsHome(t *testing.T) {
	vol := &model.User{ID: "volunteer-1", Username: "u1", Role: model.RoleVolunteer}

	d := Decide(vol, []model.Role{model.RoleAdmin}, "/admin")
	assert.Equal(t, RedirectHome, d.Action)
	assert.Equal(t, PathHome, d.Target)
}

func TestDecide_MatchingRoleRenders(t *testing.T) {
	admin := &model.User{ID: "admin-1", Username: "admin", Role: model.RoleAdmin}

	d := Decide(admin, []model.Role{model.RoleAdmin}, "/admin")
	assert.Equal(t, Render, d.Action)

	d = Decide(admin, []model.Role{model.RoleVolunteer, model.RoleAdmin}, "/volunteer")
	assert.Equal(t, Render, d.Action)
}
