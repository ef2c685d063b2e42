package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fitgym/fgms/factory"
	"github.com/fitgym/fgms/internal/config"
	"github.com/fitgym/fgms/internal/repository"
	"github.com/fitgym/fgms/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type Seed struct {
	Config         *config.Config
	DB             *database.PostgresDB
	UserRepo       *repository.UserRepository
	MemberRepo     *repository.MemberRepository
	AttendanceRepo *repository.AttendanceRepository
}

type AdminUser struct {
	Name     string
	Email    string
	Password string
}

var rootAdmin = AdminUser{
	Name:     "Test Admin",
	Email:    "admin@test.com",
	Password: "admin123",
}

func NewSeeder(cfg *config.Config) (*Seed, func(), error) {
	if !cfg.IsDev {
		return nil, nil, fmt.Errorf("seeding is only allowed in development environment")
	}

	f, cleanup, err := factory.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize factory: %w", err)
	}

	return &Seed{
		Config:         cfg,
		DB:             f.DB,
		UserRepo:       f.Repositories.User,
		MemberRepo:     f.Repositories.Member,
		AttendanceRepo: f.Repositories.Attendance,
	}, cleanup, nil
}

func (s *Seed) ResetDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fmt.Println("Resetting database...")
	_, err := s.DB.DB.ExecContext(ctx, `
		TRUNCATE TABLE
			attendance,
			members,
			users
		RESTART IDENTITY CASCADE
	`)
	if err != nil {
		log.Fatalf("Failed to reset database: %v", err)
	}
}

func (s *Seed) CreateAdminUser() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte(rootAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	_, err = s.UserRepo.Create(ctx, &repository.User{
		Name:         rootAdmin.Name,
		Email:        rootAdmin.Email,
		PasswordHash: string(hash),
		Role:         "admin",
	})
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	fmt.Printf("Admin user %s created\n", rootAdmin.Email)
}
