// This program provides administrative support for the service: bootstrap
// users and schools, enroll members, and mint tokens for testing.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"net/mail"
	"os"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus/stores/schooldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus/stores/userdb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/password"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/phone"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/keystore"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
)

//go:embed schema.sql
var schemaDoc string

type Config struct {
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"school"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Auth struct {
		KeysFolder string `envconfig:"AUTH_KEYS_FOLDER" default:"zarf/keys"`
		ActiveKID  string `envconfig:"AUTH_ACTIVE_KID" default:"54bb2165-71e1-41a6-af3e-7da4a0e1e2c1"`
		Issuer     string `envconfig:"AUTH_ISSUER" default:"school system"`
	}
}

func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN-TOOL", nil)
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer db.Close()

	userBus := userbus.NewCore(userdb.NewStore(log, db))
	schoolBus := schoolbus.NewCore(log, schooldb.NewStore(log, db))

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: migrate, create-user, create-school, enroll, gentoken")
		return nil
	}

	switch os.Args[1] {
	case "migrate":
		return runMigrate(ctx, db)
	case "create-user":
		return runCreateUser(ctx, userBus, os.Args[2:])
	case "create-school":
		return runCreateSchool(ctx, schoolBus, os.Args[2:])
	case "enroll":
		return runEnroll(ctx, schoolBus, os.Args[2:])
	case "gentoken":
		return runGenToken(ctx, log, userBus, cfg, os.Args[2:])
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

func runMigrate(ctx context.Context, db *sqlx.DB) error {
	if err := sqldb.StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaDoc); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	fmt.Println("migration complete")
	return nil
}

func runCreateUser(ctx context.Context, ub *userbus.Core, args []string) error {
	cmd := flag.NewFlagSet("create-user", flag.ExitOnError)
	emailStr := cmd.String("email", "", "User email (Required)")
	passStr := cmd.String("password", "", "User password (Required)")
	nameStr := cmd.String("name", "", "User full name (Required)")
	roleStr := cmd.String("role", "USER", "User role (SUPER_ADMIN, SYSTEM_ADMIN, USER)")
	cmd.Parse(args)

	if *emailStr == "" || *passStr == "" || *nameStr == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required fields")
	}

	n, err := name.Parse(*nameStr)
	if err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	r, err := role.Parse(*roleStr)
	if err != nil {
		return fmt.Errorf("invalid role: %w", err)
	}

	p, err := password.Parse(*passStr)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	addr, err := mail.ParseAddress(*emailStr)
	if err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	newUser := userbus.NewUser{
		Name:     n,
		Email:    *addr,
		Password: p,
		Role:     r,
		Phone:    phone.Null{},
	}

	usr, err := ub.Create(ctx, newUser)
	if err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}

	fmt.Printf("\nSUCCESS: User created!\nID: %s\nEmail: %s\nRole: %s\n", usr.ID, usr.Email.Address, usr.Role)
	return nil
}

func runCreateSchool(ctx context.Context, sb *schoolbus.Core, args []string) error {
	cmd := flag.NewFlagSet("create-school", flag.ExitOnError)
	nameStr := cmd.String("name", "", "School name (Required)")
	slugStr := cmd.String("slug", "", "School slug (Required)")
	cmd.Parse(args)

	if *nameStr == "" || *slugStr == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required fields")
	}

	n, err := name.Parse(*nameStr)
	if err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	sch, err := sb.Create(ctx, schoolbus.NewSchool{
		Name: n,
		Slug: *slugStr,
	})
	if err != nil {
		return fmt.Errorf("create school failed: %w", err)
	}

	fmt.Printf("\nSUCCESS: School created!\nID: %s\nSlug: %s\n", sch.ID, sch.Slug)
	return nil
}

func runEnroll(ctx context.Context, sb *schoolbus.Core, args []string) error {
	cmd := flag.NewFlagSet("enroll", flag.ExitOnError)
	userIDStr := cmd.String("user-id", "", "User UUID (Required)")
	schoolIDStr := cmd.String("school-id", "", "School UUID (Required)")
	roleStr := cmd.String("role", "STUDENT", "School role (SCHOOL_ADMIN, TEACHER, STUDENT)")
	cmd.Parse(args)

	if *userIDStr == "" || *schoolIDStr == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required IDs")
	}

	userID, err := uuid.Parse(*userIDStr)
	if err != nil {
		return fmt.Errorf("invalid user uuid: %w", err)
	}

	schoolID, err := uuid.Parse(*schoolIDStr)
	if err != nil {
		return fmt.Errorf("invalid school uuid: %w", err)
	}

	r, err := schoolrole.Parse(*roleStr)
	if err != nil {
		return fmt.Errorf("invalid role: %w", err)
	}

	mem, err := sb.AddMember(ctx, schoolbus.NewMembership{
		UserID:   userID,
		SchoolID: schoolID,
		Role:     r,
	})
	if err != nil {
		return fmt.Errorf("enroll failed: %w", err)
	}

	fmt.Printf("\nSUCCESS: User %s enrolled in school %s as %s (%s)\n", mem.UserID, mem.SchoolID, mem.Role, mem.Status)
	return nil
}

func runGenToken(ctx context.Context, log *logger.Logger, ub *userbus.Core, cfg Config, args []string) error {
	cmd := flag.NewFlagSet("gentoken", flag.ExitOnError)
	userIDStr := cmd.String("user-id", "", "User UUID (Required)")
	cmd.Parse(args)

	if *userIDStr == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required user id")
	}

	userID, err := uuid.Parse(*userIDStr)
	if err != nil {
		return fmt.Errorf("invalid user uuid: %w", err)
	}

	usr, err := ub.QueryByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("query user: %w", err)
	}

	ks := keystore.New()
	if _, err := ks.LoadByFileSystem(os.DirFS(cfg.Auth.KeysFolder)); err != nil {
		return fmt.Errorf("loading keys: %w", err)
	}

	a := auth.New(auth.Config{
		Log:       log,
		UserBus:   ub,
		KeyLookup: ks,
		Issuer:    cfg.Auth.Issuer,
	})

	token, err := a.GenerateToken(cfg.Auth.ActiveKID, usr.ID, usr.Role)
	if err != nil {
		return fmt.Errorf("generating token: %w", err)
	}

	fmt.Printf("\nTOKEN:\n%s\n", token)
	return nil
}
