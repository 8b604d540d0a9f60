package main

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type SingleOrMulti []string

func (a *SingleOrMulti) UnmarshalYAML(value *yaml.Node) error {
	var multi []string
	err := value.Decode(&multi)
	if err != nil {
		var single string
		err := value.Decode(&single)
		if err != nil {
			return err
		}
		*a = []string{single}
	} else {
		*a = multi
	}
	return nil
}

type Repository struct {
	Name     string
	Owner    string
	FullName string
}

func ParseRepository(orgAndRepo string) (Repository, error) {
	parts := strings.Split(orgAndRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, ErrInvalidInput.New(
			WithDetail(fmt.Sprintf("invalid format for repository '%s'; must use 'owner/name' format", orgAndRepo)))
	}

	return Repository{
		Owner:    parts[0],
		Name:     parts[1],
		FullName: orgAndRepo,
	}, nil
}

// AppCredential identifies a GitHub App: the app ID (or client ID) and its
// RSA private key in PEM form. Supplied per invocation, never persisted.
type AppCredential struct {
	AppID  string
	KeyPEM []byte
}

// InstallationToken is a short-lived installation access token. The server
// decides the expiry (about one hour); the token cannot be refreshed, only
// re-minted through a fresh JWT.
type InstallationToken struct {
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at,omitempty"`
	InstallationID int64     `json:"-"`
}

// Redacted returns a loggable form of the token. The full value must never
// reach logs or error text.
func (t InstallationToken) Redacted() string {
	if len(t.Token) <= 8 {
		return "REDACTED"
	}
	return t.Token[:8] + "..."
}

func (t InstallationToken) String() string {
	return t.Redacted()
}

type Wildcard struct {
	*regexp.Regexp
}

func NewWildcard(s string) Wildcard {
	escaped := regexp.QuoteMeta(s)
	expanded := strings.Replace(escaped, "\\*", ".*", -1)
	anchored := fmt.Sprintf("^%s$", expanded)
	re, _ := regexp.Compile(anchored)

	return Wildcard{
		Regexp: re,
	}
}

func NewWildcards(ss ...string) []Wildcard {
	var wildcards []Wildcard
	for _, s := range ss {
		wildcards = append(wildcards, NewWildcard(s))
	}

	return wildcards
}
