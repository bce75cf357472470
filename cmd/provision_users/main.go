// Command provision_users creates the admin and operator accounts from the environment.
// Accounts that already exist are left unchanged.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	"github.com/SscSPs/receivables_app/internal/core/domain"
	"github.com/SscSPs/receivables_app/internal/core/services"
	"github.com/SscSPs/receivables_app/internal/dto"
	"github.com/SscSPs/receivables_app/internal/platform/config"
	"github.com/SscSPs/receivables_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/receivables_app/pkg/database"
	"github.com/spf13/viper"
)

type account struct {
	emailKey    string
	passwordKey string
	role        domain.Role
}

var accounts = []account{
	{emailKey: "ADMIN_EMAIL", passwordKey: "ADMIN_PASSWORD", role: domain.RoleAdmin},
	{emailKey: "OPERATOR_EMAIL", passwordKey: "OPERATOR_PASSWORD", role: domain.RoleUser},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	userService := services.NewUserService(pgsql.NewRepositoryProvider(dbPool).UserRepo)

	failed := false
	for _, acc := range accounts {
		email := viper.GetString(acc.emailKey)
		password := viper.GetString(acc.passwordKey)
		if email == "" || password == "" {
			logger.Info("Skipping account, credentials not configured", slog.String("role", string(acc.role)))
			continue
		}

		user, err := userService.CreateUser(ctx, dto.CreateUserRequest{Email: email, Password: password, Role: acc.role})
		switch {
		case err == nil:
			logger.Info("Provisioned user", slog.String("user_id", user.UserID), slog.String("role", string(acc.role)))
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Info("User already exists", slog.String("email", email))
		default:
			logger.Error("Failed to provision user", slog.String("email", email), slog.String("error", err.Error()))
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
