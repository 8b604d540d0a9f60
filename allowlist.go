package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GitHubClaims are the GitHub Actions custom claims the dispenser matches
// allowlist rules against.
type GitHubClaims struct {
	Sub             string `json:"sub"`
	Repository      string `json:"repository"`
	RepositoryOwner string `json:"repository_owner"`
	JobWorkflowRef  string `json:"job_workflow_ref"`
	Environment     string `json:"environment"`
	Ref             string `json:"ref"`
}

// CallerRule authorizes a caller when every listed claim field matches at
// least one of its wildcards.
type CallerRule struct {
	Fields map[string][]Wildcard
}

func (claims GitHubClaims) MatchesRule(rule CallerRule) (bool, error) {
	for field, wildcards := range rule.Fields {
		value, err := getStringValueByJSONTag(claims, field)
		if err != nil {
			return false, fmt.Errorf("unknown claim field '%s' in allowlist rule", field)
		}

		if !Any(wildcards, func(w Wildcard) bool { return w.MatchString(value) }) {
			return false, nil
		}
	}

	return true, nil
}

func (claims GitHubClaims) MatchesAnyRule(rules []CallerRule) (bool, error) {
	for _, rule := range rules {
		ok, err := claims.MatchesRule(rule)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

// Allowlist maps target repository full names to the caller rules allowed
// to draw tokens for them. An empty allowlist authorizes nobody.
type Allowlist struct {
	RepoRules map[string][]CallerRule
}

type allowlistFile struct {
	RepoRules map[string][]struct {
		Fields map[string]SingleOrMulti `yaml:"fields"`
	} `yaml:"repo_rules,inline"`
}

func LoadAllowlist(file string) (Allowlist, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return Allowlist{}, fmt.Errorf("couldn't read allowlist file '%s': %w", file, err)
	}

	var raw allowlistFile
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Allowlist{}, fmt.Errorf("couldn't parse allowlist file '%s': %w", file, err)
	}

	al := Allowlist{
		RepoRules: map[string][]CallerRule{},
	}
	for repo, rules := range raw.RepoRules {
		var callerRules []CallerRule
		for _, rule := range rules {
			fields := map[string][]Wildcard{}
			for field, values := range rule.Fields {
				fields[field] = NewWildcards(values...)
			}

			callerRules = append(callerRules, CallerRule{Fields: fields})
		}
		al.RepoRules[repo] = callerRules
	}

	return al, nil
}

// Authorize decides whether the caller behind the claims may draw a token
// for the target repository.
func (al Allowlist) Authorize(target Repository, claims GitHubClaims) (bool, error) {
	rules, ok := al.RepoRules[target.FullName]
	if !ok {
		return false, nil
	}

	return claims.MatchesAnyRule(rules)
}
