package bootstrap

import (
	"context"
	"time"

	"CampusPortal/internal/auth"
	"CampusPortal/internal/config"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SeedUsers makes sure the portal always has an admin account and a demo
// student. Safe to run on every startup.
func SeedUsers(cfg *config.AppConfig, users auth.UserRepository, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if admin == nil {
		hashed, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := users.Create(ctx, &auth.User{
			ID:        primitive.NewObjectID(),
			Name:      "System Admin",
			Email:     cfg.AdminEmail,
			Password:  hashed,
			StudentID: "ADMIN001",
			Role:      auth.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}
		logger.Info("admin user seeded", zap.String("email", cfg.AdminEmail))
	} else if admin.Role != auth.RoleAdmin {
		// Repair the role if the account was ever created another way.
		if err := users.UpdateRole(ctx, admin.ID, auth.RoleAdmin); err != nil {
			return err
		}
		logger.Info("existing user promoted to admin", zap.String("email", cfg.AdminEmail))
	}

	studentEmail := "student@gmail.com"
	student, err := users.FindByEmail(ctx, studentEmail)
	if err != nil {
		return err
	}
	if student == nil {
		hashed, err := auth.HashPassword("student123")
		if err != nil {
			return err
		}
		now := time.Now()
		if err := users.Create(ctx, &auth.User{
			ID:         primitive.NewObjectID(),
			Name:       "Alex Johnson",
			Email:      studentEmail,
			Password:   hashed,
			StudentID:  "2024-0891",
			Role:       auth.RoleStudent,
			Department: "Computer Science",
			Year:       "Senior",
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return err
		}
		logger.Info("demo student seeded", zap.String("email", studentEmail))
	}

	return nil
}
