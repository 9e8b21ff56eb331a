package clients

import "strings"

// Scope is one OAuth scope token understood by the remote service.
type Scope string

const (
	ScopeUser         Scope = "user"
	ScopeUserEmail    Scope = "user:email"
	ScopeUserFollow   Scope = "user:follow"
	ScopePublicRepo   Scope = "public_repo"
	ScopeRepo         Scope = "repo"
	ScopeRepoDeploy   Scope = "repo_deployment"
	ScopeRepoStatus   Scope = "repo:status"
	ScopeDeleteRepo   Scope = "delete_repo"
	ScopeNotification Scope = "notifications"
	ScopeGist         Scope = "gist"
	ScopeAdminOrg     Scope = "admin:org"
	ScopeAdminOrgHook Scope = "admin:org_hook"
	ScopeAdminHook    Scope = "admin:repo_hook"
	ScopeAdminKey     Scope = "admin:public_key"
)

// Scopes is the set of scopes requested for an authorization.
type Scopes []Scope

// String serializes the set the way the authorizations API expects it: a
// comma-joined list with no surrounding whitespace.
func (s Scopes) String() string {
	tokens := make([]string, 0, len(s))
	for _, scope := range s {
		tokens = append(tokens, string(scope))
	}
	return strings.Join(tokens, ",")
}

// Contains reports whether the set includes scope.
func (s Scopes) Contains(scope Scope) bool {
	for _, candidate := range s {
		if candidate == scope {
			return true
		}
	}
	return false
}
