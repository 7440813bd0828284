package authz

import (
	"context"
	"errors"

	"access_gate/internal/models"
	"access_gate/internal/store"
)

// Action is the authorizable operation derived from the HTTP verb.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

// ActionFromMethod maps an HTTP method to an Action. Unrecognized verbs
// return ok=false and must be denied by the caller.
func ActionFromMethod(method string) (Action, bool) {
	switch method {
	case "GET":
		return ActionRead, true
	case "POST":
		return ActionCreate, true
	case "PUT", "PATCH":
		return ActionUpdate, true
	case "DELETE":
		return ActionDelete, true
	default:
		return 0, false
	}
}

// flags resolves an action to its (plain, all) flag pair on a rule. For
// create both values are the create flag: creation has no pre-existing
// owner, so the distinction does not apply.
func flags(rule *models.AccessRule, action Action) (plain, all bool) {
	switch action {
	case ActionRead:
		return rule.Read, rule.ReadAll
	case ActionCreate:
		return rule.Create, rule.Create
	case ActionUpdate:
		return rule.Update, rule.UpdateAll
	case ActionDelete:
		return rule.Delete, rule.DeleteAll
	default:
		return false, false
	}
}

// Engine evaluates the role/element permission matrix. It is pure: one
// rule lookup per call, no side effects, no caching across requests.
type Engine struct {
	rules store.RuleStore
}

func NewEngine(rules store.RuleStore) *Engine {
	return &Engine{rules: rules}
}

// Authorize returns the access decision for a role performing an action on
// an element. isOwner is computed by the caller against the record's owner
// id; the engine itself is ownership-agnostic. Missing role or rule denies
// unconditionally (closed policy), as do store faults.
func (e *Engine) Authorize(ctx context.Context, roleName, elementName string, action Action, isOwner bool) (bool, error) {
	if roleName == "" {
		return false, nil
	}

	rule, err := e.rules.FindRule(ctx, roleName, elementName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	plain, all := flags(rule, action)
	if isOwner {
		return plain || all, nil
	}
	// Non-owners are only ever granted through the "_all" flag.
	return all, nil
}

// Scope is the visibility a role has on an element for one action:
// nothing, own records only, or all records. List endpoints use it to
// filter rows with a single rule lookup.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeOwn
	ScopeAll
)

func (e *Engine) Scope(ctx context.Context, roleName, elementName string, action Action) (Scope, error) {
	if roleName == "" {
		return ScopeNone, nil
	}

	rule, err := e.rules.FindRule(ctx, roleName, elementName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ScopeNone, nil
		}
		return ScopeNone, err
	}

	plain, all := flags(rule, action)
	switch {
	case all:
		return ScopeAll, nil
	case plain:
		return ScopeOwn, nil
	default:
		return ScopeNone, nil
	}
}
