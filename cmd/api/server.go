package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fitgym/fgms/factory"
	"github.com/fitgym/fgms/internal/api/handlers"
	"github.com/fitgym/fgms/internal/config"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

type Server struct {
	Config   *config.Config
	Factory  *factory.Factory
	Handlers *handlers.Handlers
}

func NewServer() (*Server, func(), error) {
	cfg := config.New()

	f, cleanup, err := factory.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	validate, trans, err := newValidator()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	server := &Server{
		Config:   cfg,
		Factory:  f,
		Handlers: handlers.NewHandlers(f, cfg, validate, trans),
	}

	server.router()
	return server, cleanup, nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, nil, fmt.Errorf("failed to get en translator")
	}

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}

	return validate, trans, nil
}

func (s *Server) Start() {
	s.Factory.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Server.Env).
		Msg("server starting")

	srv := &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      s.Factory.Router,
		WriteTimeout: time.Second * 50,
		ReadTimeout:  time.Second * 30,
		IdleTimeout:  time.Minute,
	}

	if err := srv.ListenAndServe(); err != nil {
		s.Factory.Logger.Fatal().Err(err).Msg("failed to start server")
	}
}
