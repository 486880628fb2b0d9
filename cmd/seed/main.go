// Command seed creates the baseline accounts used by a fresh
// deployment: one admin, one member and the shared guest account.
package main

import (
	"log"

	"nexo/internal/config"
	"nexo/internal/models"
	"nexo/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type seedAccount struct {
	Name     string
	Email    string
	Password string
	Role     string
	Tier     string
	Verified bool
	Public   bool
}

var accounts = []seedAccount{
	{
		Name:     "Admin",
		Email:    "admin@test.com",
		Password: "password",
		Role:     models.RoleAdmin,
		Tier:     models.TierSocios,
		Verified: true,
	},
	{
		Name:     "Test Member",
		Email:    "member@test.com",
		Password: "password",
		Role:     models.RoleMember,
		Tier:     models.TierInfinity,
		Verified: true,
		Public:   true,
	},
	{
		Name:     "Guest",
		Email:    "guest@test.com",
		Password: "password",
		Role:     models.RoleGuest,
		Tier:     models.TierDisruption,
	},
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	for _, account := range accounts {
		var existing models.Member
		if err := repositories.DB.Where("email = ?", account.Email).First(&existing).Error; err == nil {
			log.Printf("Account %s already exists, skipping", account.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", account.Email, err)
		}

		member := models.Member{
			Name:         account.Name,
			Email:        account.Email,
			Password:     string(hashed),
			Role:         account.Role,
			Tier:         account.Tier,
			Verified:     account.Verified,
			Public:       account.Public,
			IsActive:     true,
			TokenVersion: 1,
		}

		if err := repositories.DB.Create(&member).Error; err != nil {
			log.Fatalf("Failed to create account %s: %v", account.Email, err)
		}
		log.Printf("Created %s account: %s", account.Role, account.Email)
	}

	log.Println("Seed complete")
}
