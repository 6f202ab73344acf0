// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/tracing"
)

// DefaultExpiry applies when no token expiry is configured.
const DefaultExpiry = 60 * time.Second

// ErrInvalidToken indicates the token failed signature, shape or expiry validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: identity plus an optional active organization.
type Claims struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OrganizationID string `json:"organizationId,omitempty"`
	jwt.RegisteredClaims
}

var _ TokenServiceInterface = (*JWTService)(nil)

// JWTService mints and verifies HS256 tokens with a process-wide secret.
// It is the sole authority translating "who is the caller, acting as which
// tenant" into a transportable value.
type JWTService struct {
	secret []byte
	expiry time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *JWTService) Issue(ctx context.Context, p *Principal) (string, error) {
	_, span := s.tracer.Start(ctx, "authentication.JWTService.Issue")
	defer span.End()

	if p == nil || p.ID == "" {
		return "", errors.New("principal ID is required")
	}

	now := time.Now().UTC()
	claims := Claims{
		ID:             p.ID,
		Name:           p.Name,
		OrganizationID: p.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

func (s *JWTService) Verify(ctx context.Context, rawToken string) (*Principal, error) {
	_, span := s.tracer.Start(ctx, "authentication.JWTService.Verify")
	defer span.End()

	if rawToken == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(rawToken, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		s.logger.Debugf("token verification failed: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, ErrInvalidToken
	}

	return &Principal{
		ID:             claims.ID,
		Name:           claims.Name,
		OrganizationID: claims.OrganizationID,
	}, nil
}

// NewJWTService creates the token service. A non-positive expiry falls back
// to DefaultExpiry.
func NewJWTService(
	secret []byte,
	expiry time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTService {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	return &JWTService{
		secret:  secret,
		expiry:  expiry,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
