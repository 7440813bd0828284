package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"access_gate/internal/models"
	"access_gate/internal/store"
)

type fakeRules struct {
	rules map[string]*models.AccessRule // key role + "/" + element
	err   error
}

func (f fakeRules) FindRule(_ context.Context, role, element string) (*models.AccessRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	if rule, ok := f.rules[role+"/"+element]; ok {
		return rule, nil
	}
	return nil, store.ErrNotFound
}

func engineWith(rule *models.AccessRule) *Engine {
	return NewEngine(fakeRules{rules: map[string]*models.AccessRule{
		"user/mock_data": rule,
	}})
}

func TestActionFromMethod(t *testing.T) {
	cases := map[string]struct {
		action Action
		ok     bool
	}{
		"GET":     {ActionRead, true},
		"POST":    {ActionCreate, true},
		"PUT":     {ActionUpdate, true},
		"PATCH":   {ActionUpdate, true},
		"DELETE":  {ActionDelete, true},
		"HEAD":    {0, false},
		"OPTIONS": {0, false},
		"TRACE":   {0, false},
	}
	for method, want := range cases {
		action, ok := ActionFromMethod(method)
		assert.Equal(t, want.ok, ok, method)
		if want.ok {
			assert.Equal(t, want.action, action, method)
		}
	}
}

func TestNoRuleDeniesEverything(t *testing.T) {
	engine := NewEngine(fakeRules{})

	for _, action := range []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete} {
		for _, owner := range []bool{true, false} {
			ok, err := engine.Authorize(context.Background(), "user", "mock_data", action, owner)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	}
}

func TestNoRoleDenies(t *testing.T) {
	engine := engineWith(&models.AccessRule{Read: true, ReadAll: true})

	ok, err := engine.Authorize(context.Background(), "", "mock_data", ActionRead, true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateIgnoresOwnership(t *testing.T) {
	engine := engineWith(&models.AccessRule{Create: true})

	for _, owner := range []bool{true, false} {
		ok, err := engine.Authorize(context.Background(), "user", "mock_data", ActionCreate, owner)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	engine = engineWith(&models.AccessRule{Read: true, ReadAll: true, Update: true, UpdateAll: true, Delete: true, DeleteAll: true})
	for _, owner := range []bool{true, false} {
		ok, err := engine.Authorize(context.Background(), "user", "mock_data", ActionCreate, owner)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestOwnAllAsymmetry(t *testing.T) {
	cases := []struct {
		name      string
		rule      models.AccessRule
		action    Action
		owner     bool
		wantAllow bool
	}{
		{"read own with plain flag", models.AccessRule{Read: true}, ActionRead, true, true},
		{"read other with plain flag only", models.AccessRule{Read: true}, ActionRead, false, false},
		{"read other with all flag", models.AccessRule{ReadAll: true}, ActionRead, false, true},
		{"read own with all flag only", models.AccessRule{ReadAll: true}, ActionRead, true, true},
		{"read own with no flags", models.AccessRule{}, ActionRead, true, false},
		{"update own with plain flag", models.AccessRule{Update: true}, ActionUpdate, true, true},
		{"update other with plain flag only", models.AccessRule{Update: true}, ActionUpdate, false, false},
		{"update other with all flag", models.AccessRule{UpdateAll: true}, ActionUpdate, false, true},
		{"delete own with plain flag", models.AccessRule{Delete: true}, ActionDelete, true, true},
		{"delete other with plain flag only", models.AccessRule{Delete: true}, ActionDelete, false, false},
		{"delete other with all flag", models.AccessRule{DeleteAll: true}, ActionDelete, false, true},
		{"delete own with no flags", models.AccessRule{}, ActionDelete, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule := tc.rule
			engine := engineWith(&rule)
			ok, err := engine.Authorize(context.Background(), "user", "mock_data", tc.action, tc.owner)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAllow, ok)
		})
	}
}

func TestScope(t *testing.T) {
	cases := []struct {
		name string
		rule models.AccessRule
		want Scope
	}{
		{"no flags", models.AccessRule{}, ScopeNone},
		{"plain only", models.AccessRule{Read: true}, ScopeOwn},
		{"all only", models.AccessRule{ReadAll: true}, ScopeAll},
		{"both", models.AccessRule{Read: true, ReadAll: true}, ScopeAll},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule := tc.rule
			engine := engineWith(&rule)
			scope, err := engine.Scope(context.Background(), "user", "mock_data", ActionRead)
			require.NoError(t, err)
			assert.Equal(t, tc.want, scope)
		})
	}

	scope, err := NewEngine(fakeRules{}).Scope(context.Background(), "user", "mock_data", ActionRead)
	require.NoError(t, err)
	assert.Equal(t, ScopeNone, scope)
}

func TestStoreFaultDenies(t *testing.T) {
	engine := NewEngine(fakeRules{err: errors.New("connection refused")})

	ok, err := engine.Authorize(context.Background(), "user", "mock_data", ActionRead, true)
	assert.Error(t, err)
	assert.False(t, ok)
}
