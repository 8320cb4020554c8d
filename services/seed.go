package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/utils"
)

// SeedOptions configures the bootstrap admin account.
type SeedOptions struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// sampleResourceTitle identifies the introductory resource created by Seed.
const sampleResourceTitle = "湖湘文化简介"

// Seed creates the admin account and a sample resource when they are missing. It is idempotent.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions) error {
	if opts.AdminPassword == "" {
		return errors.New("seed: admin password must be configured")
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var admin models.User
		err := tx.Where("username = ?", opts.AdminUsername).First(&admin).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			hash, err := utils.HashPassword(opts.AdminPassword)
			if err != nil {
				return fmt.Errorf("seed: hash admin password: %w", err)
			}
			admin = models.User{
				Username:     opts.AdminUsername,
				Email:        opts.AdminEmail,
				PasswordHash: hash,
				Role:         models.RoleAdmin,
				Active:       true,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return fmt.Errorf("seed: create admin: %w", err)
			}
			utils.Sugar.Infof("seed: created admin account %q", admin.Username)
		case err != nil:
			return fmt.Errorf("seed: load admin: %w", err)
		}

		var count int64
		if err := tx.Model(&models.CulturalResource{}).Where("title = ?", sampleResourceTitle).Count(&count).Error; err != nil {
			return fmt.Errorf("seed: count sample resource: %w", err)
		}
		if count > 0 {
			return nil
		}
		sample := models.CulturalResource{
			Title:       sampleResourceTitle,
			Description: "湖湘文化是湖南地区特有的地域文化，具有深厚的历史底蕴。",
			Content:     "湖湘文化是指湖南地区特有的地域文化，源远流长，博大精深...",
			Type:        "history",
			Category:    "introduction",
			Author:      "系统管理员",
			Status:      models.StatusPublished,
			Priority:    1,
		}
		sample.SetTags([]string{"湖湘", "湖南", "文化", "历史"})
		if err := tx.Create(&sample).Error; err != nil {
			return fmt.Errorf("seed: create sample resource: %w", err)
		}
		utils.Sugar.Info("seed: created sample resource")
		return nil
	})
}
