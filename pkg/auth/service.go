// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/password"
	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/pkg/authentication"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so a
// caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotMember indicates the user has no membership row for the organization.
var ErrNotMember = errors.New("user is not a member of the organization")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	issuer  authentication.TokenIssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	issuer authentication.TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		issuer:  issuer,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Login exchanges email + password for a bare token carrying identity only.
func (s *Service) Login(ctx context.Context, email, plaintext string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Login")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(email, "unknown email")
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := password.Verify(user.Password, plaintext); err != nil {
		s.logger.Security().AuthnFailure(user.ID, "password mismatch")
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(ctx, &authentication.Principal{
		ID:   user.ID,
		Name: user.Name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// ActivateOrganization checks membership and mints a scoped token. This is
// the only place membership is consulted; the scoped token is trusted as-is
// afterwards.
func (s *Service) ActivateOrganization(ctx context.Context, userID, userName, organizationID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ActivateOrganization")
	defer span.End()

	if _, err := s.storage.GetMembership(ctx, userID, organizationID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthzFailure(userID, "activate_organization")
			return "", ErrNotMember
		}
		return "", fmt.Errorf("failed to look up membership: %w", err)
	}

	token, err := s.issuer.Issue(ctx, &authentication.Principal{
		ID:             userID,
		Name:           userName,
		OrganizationID: organizationID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
