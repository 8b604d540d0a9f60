package main

import (
	"context"
)

// AppAuth composes the signer and the token exchanger over one API client.
type AppAuth struct {
	client *GitHubClient
	cred   AppCredential
}

func NewAppAuth(client *GitHubClient, cred AppCredential) *AppAuth {
	return &AppAuth{
		client: client,
		cred:   cred,
	}
}

// Authenticate mints a fresh JWT and exchanges it for an installation
// access token. Whatever step fails first is what the caller sees.
func (a *AppAuth) Authenticate(ctx context.Context, installationID int64) (InstallationToken, error) {
	if installationID == 0 {
		return InstallationToken{}, ErrInvalidInput.New(WithDetail("installation id must not be zero"))
	}

	appJWT, err := SignAppJWT(a.cred.AppID, a.cred.KeyPEM)
	if err != nil {
		return InstallationToken{}, err
	}

	return a.client.CreateInstallationToken(ctx, appJWT, installationID)
}

// Verify smoke-tests a bearer token against the repository-info endpoint.
// It is never used as a gate inside Authenticate.
func (a *AppAuth) Verify(ctx context.Context, token string, repoFullName string) error {
	repo, err := ParseRepository(repoFullName)
	if err != nil {
		return err
	}

	_, err = a.client.GetRepository(ctx, token, repo)
	return err
}
