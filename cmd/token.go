// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/pkg/authentication"
)

var (
	tokenSecret string
	tokenUserID string
	tokenName   string
	tokenOrgID  string
	tokenExpiry time.Duration
)

// tokenCmd mints a token locally with the shared signing secret. Meant for
// development and operational debugging, not for end users.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a token for a user, optionally scoped to an organization",
	Run: func(cmd *cobra.Command, args []string) {
		tokens := authentication.NewJWTService(
			[]byte(tokenSecret),
			tokenExpiry,
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor(),
			logging.NewNoopLogger(),
		)

		token, err := tokens.Issue(context.Background(), &authentication.Principal{
			ID:             tokenUserID,
			Name:           tokenName,
			OrganizationID: tokenOrgID,
		})
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "JWT signing secret")
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "User ID")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "User display name")
	tokenCmd.Flags().StringVar(&tokenOrgID, "organization-id", "", "Organization ID for a scoped token")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", 0, "Token lifetime (default 60s)")

	_ = tokenCmd.MarkFlagRequired("secret")
	_ = tokenCmd.MarkFlagRequired("user-id")
}
