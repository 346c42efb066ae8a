package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRankOrdering(t *testing.T) {
	// admin > cfo > manager > hr > tester > employee
	order := []Role{RoleAdmin, RoleCFO, RoleManager, RoleHR, RoleTester, RoleEmployee}
	for i := 0; i < len(order)-1; i++ {
		assert.Greater(t, order[i].Rank(), order[i+1].Rank(),
			"%s should outrank %s", order[i], order[i+1])
	}
	assert.Equal(t, 0, Role("intern").Rank())
}

func TestCanFire(t *testing.T) {
	tests := []struct {
		name    string
		actor   Role
		target  Role
		allowed bool
	}{
		{"admin fires employee", RoleAdmin, RoleEmployee, true},
		{"admin fires tester", RoleAdmin, RoleTester, true},
		{"hr fires employee", RoleHR, RoleEmployee, true},
		{"hr fires tester", RoleHR, RoleTester, true},
		{"manager fires employee", RoleManager, RoleEmployee, true},

		{"employee cannot fire employee", RoleEmployee, RoleEmployee, false},
		{"tester cannot fire employee", RoleTester, RoleEmployee, false},
		{"tester cannot fire tester", RoleTester, RoleTester, false},
		{"nobody fires a manager", RoleAdmin, RoleManager, false},
		{"nobody fires hr", RoleAdmin, RoleHR, false},
		{"nobody fires cfo", RoleAdmin, RoleCFO, false},
		{"nobody fires admin", RoleCFO, RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.actor.CanFire(tt.target))
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleCFO, RoleManager, RoleHR, RoleEmployee, RoleTester} {
		assert.True(t, role.Valid(), string(role))
	}
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleManager.In(RoleAdmin, RoleCFO, RoleManager))
	assert.False(t, RoleEmployee.In(RoleAdmin, RoleCFO))
	assert.False(t, RoleEmployee.In())
}

func TestIsWorker(t *testing.T) {
	assert.True(t, RoleEmployee.IsWorker())
	assert.True(t, RoleTester.IsWorker())
	assert.False(t, RoleAdmin.IsWorker())
	assert.False(t, RoleManager.IsWorker())
}

func TestValidMonth(t *testing.T) {
	assert.True(t, ValidMonth("2026-01"))
	assert.True(t, ValidMonth("2026-12"))
	assert.False(t, ValidMonth("2026-13"))
	assert.False(t, ValidMonth("2026-00"))
	assert.False(t, ValidMonth("2026-1"))
	assert.False(t, ValidMonth("202601"))
	assert.False(t, ValidMonth(""))
}
