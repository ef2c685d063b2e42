package factory

import (
	"github.com/fitgym/fgms/internal/config"
	"github.com/fitgym/fgms/internal/middleware"
	"github.com/fitgym/fgms/internal/repository"
	"github.com/fitgym/fgms/internal/services/members"
	"github.com/fitgym/fgms/internal/services/reports"
	"github.com/fitgym/fgms/internal/services/users"
	"github.com/fitgym/fgms/pkg/database"
	"github.com/fitgym/fgms/pkg/logger"
	"github.com/fitgym/fgms/pkg/token"
	"github.com/go-chi/chi/v5"
)

type Repositories struct {
	Member     *repository.MemberRepository
	Attendance *repository.AttendanceRepository
	User       *repository.UserRepository
}

type Services struct {
	Member *members.Member
	User   *users.User
	Report *reports.Report
}

type Factory struct {
	DB           *database.PostgresDB
	JWTToken     *token.Jwt
	Logger       *logger.Logger
	Router       *chi.Mux
	Services     *Services
	Repositories *Repositories
	Middleware   *middleware.Middleware
}

func New(cfg *config.Config) (*Factory, func(), error) {
	db, cleanup, err := database.New(cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(cfg)
	jwtToken := token.NewJwt(cfg.Auth.JWTSecret)

	memberRepo := repository.NewMemberRepository(db.DB)
	attendanceRepo := repository.NewAttendanceRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)

	membersService := members.New(cfg, memberRepo, attendanceRepo)
	usersService := users.New(cfg, jwtToken, userRepo)
	reportsService := reports.New(memberRepo, attendanceRepo)

	mw := middleware.New(jwtToken, log)

	return &Factory{
			DB:       db,
			JWTToken: jwtToken,
			Logger:   log,
			Router:   chi.NewRouter(),
			Services: &Services{
				Member: membersService,
				User:   usersService,
				Report: reportsService,
			},
			Repositories: &Repositories{
				Member:     memberRepo,
				Attendance: attendanceRepo,
				User:       userRepo,
			},
			Middleware: mw,
		}, func() {
			cleanup()
		}, nil
}
