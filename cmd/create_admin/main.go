package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"sculpture_shop/internal/config"
	"sculpture_shop/internal/domain/models"
	"sculpture_shop/internal/repository"
	"sculpture_shop/internal/storage"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap tool for the first admin account. Run once after deploying:
//
//	create_admin -config=config/local.yaml -username=owner -password=... -full-name="Shop Owner"
func main() {
	var (
		configPath  string
		username    string
		password    string
		fullName    string
		applySchema bool
	)

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&username, "username", "", "admin username")
	flag.StringVar(&password, "password", "", "admin password")
	flag.StringVar(&fullName, "full-name", "", "admin display name")
	flag.BoolVar(&applySchema, "apply-schema", false, "create tables before inserting the admin")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	if configPath == "" || username == "" || password == "" {
		color.Red("usage: create_admin -config=<path> -username=<name> -password=<secret> [-full-name=<name>] [-apply-schema]")
		os.Exit(1)
	}

	if len(password) < 8 {
		color.Red("password must be at least 8 characters")
		os.Exit(1)
	}

	cfg := config.MustLoadPath(configPath)

	ctx := context.Background()

	repo, err := repository.NewRepository(ctx, cfg.DSN, nil)
	if err != nil {
		color.Red("cannot connect to database: %v", err)
		os.Exit(1)
	}
	defer repo.Close()

	if applySchema {
		if err := repo.InitSchema(ctx); err != nil {
			color.Red("cannot apply schema: %v", err)
			os.Exit(1)
		}
		color.Green("schema applied")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("cannot hash password: %v", err)
		os.Exit(1)
	}

	id, err := repo.Admin.SaveAdmin(ctx, models.AdminUser{
		Username:     username,
		PasswordHash: hash,
		FullName:     fullName,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			color.Yellow("admin %q already exists", username)
			os.Exit(1)
		}
		color.Red("cannot create admin: %v", err)
		os.Exit(1)
	}

	color.Green("admin %q created with id %d", username, id)
}
