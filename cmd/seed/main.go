// Seeds a development database with a handful of demo users and skills.
// Safe to run twice: existing rows are left alone.
package main

import (
	"log/slog"
	"os"

	"github.com/Kecyverse/skill-swap-platform/database"
	"github.com/Kecyverse/skill-swap-platform/internal/config"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/models"
	"github.com/Kecyverse/skill-swap-platform/internal/httpapi/repository"
	"github.com/Kecyverse/skill-swap-platform/internal/middleware/auth"

	"github.com/google/uuid"
)

var skillNames = []string{
	"Python", "JavaScript", "Graphic Design", "Photoshop", "Excel",
	"Public Speaking", "Guitar", "Cooking", "Photography", "Video Editing",
	"Spanish", "French", "Yoga", "Digital Marketing",
}

type demoUser struct {
	name         string
	email        string
	location     string
	availability string
	offered      []string
	wanted       []string
}

var demoUsers = []demoUser{
	{
		name: "Marc Demo", email: "marc@example.com",
		location: "Berlin", availability: "weekends",
		offered: []string{"Python", "Excel"},
		wanted:  []string{"Guitar", "Spanish"},
	},
	{
		name: "Joe Vills", email: "joe@example.com",
		location: "Lisbon", availability: "evenings",
		offered: []string{"Graphic Design", "Photoshop"},
		wanted:  []string{"Python"},
	},
	{
		name: "Ana Reyes", email: "ana@example.com",
		location: "Madrid", availability: "weekends",
		offered: []string{"Spanish", "Cooking"},
		wanted:  []string{"Photography", "Digital Marketing"},
	},
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)

	for _, name := range skillNames {
		if _, err := skillRepo.FindOrCreate(name); err != nil {
			log.Error("failed to seed skill", "skill", name, "error", err)
			os.Exit(1)
		}
	}
	log.Info("skills seeded", "count", len(skillNames))

	hashed, err := auth.HashPassword("password123")
	if err != nil {
		log.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	for _, d := range demoUsers {
		user, err := userRepo.FindByEmail(d.email)
		if err != nil {
			user = &models.User{
				ID:           uuid.New().String(),
				Name:         d.name,
				Email:        d.email,
				Password:     hashed,
				Location:     d.location,
				Availability: d.availability,
				IsPublic:     true,
				Role:         "user",
			}
			if err := userRepo.Create(user); err != nil {
				log.Error("failed to seed user", "email", d.email, "error", err)
				os.Exit(1)
			}
		}

		for _, skillName := range d.offered {
			skill, err := skillRepo.FindOrCreate(skillName)
			if err != nil {
				log.Error("failed to look up skill", "skill", skillName, "error", err)
				os.Exit(1)
			}
			// duplicate links come back as a key conflict on re-runs
			skillRepo.AddOffered(user.ID, skill.ID)
		}
		for _, skillName := range d.wanted {
			skill, err := skillRepo.FindOrCreate(skillName)
			if err != nil {
				log.Error("failed to look up skill", "skill", skillName, "error", err)
				os.Exit(1)
			}
			skillRepo.AddWanted(user.ID, skill.ID)
		}
		log.Info("user seeded", "email", d.email)
	}

	log.Info("seed complete")
}
