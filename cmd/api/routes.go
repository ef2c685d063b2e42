package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) router() {
	s.Factory.Router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(s.Factory.Middleware.RequestLogger)

		r.Get("/healthz", s.Handlers.HealthCheckHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Handlers.Register)
			r.Post("/login", s.Handlers.Login)
			r.Post("/refresh", s.Handlers.RefreshToken)
		})

		r.Route("/members", func(r chi.Router) {
			r.Use(s.Factory.Middleware.RequireAuth)

			r.Post("/", s.Handlers.CreateMember)
			r.Get("/", s.Handlers.ListMembers)
			r.Get("/{id}", s.Handlers.GetMember)
			r.Put("/{id}", s.Handlers.UpdateMember)
			r.Delete("/{id}", s.Handlers.DeleteMember)
			r.Post("/{id}/attendance", s.Handlers.MarkAttendance)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Use(s.Factory.Middleware.RequireAuth)

			r.Post("/", s.Handlers.MarkAttendanceLegacy)
			r.Get("/", s.Handlers.AllAttendance)
			r.Get("/{id}", s.Handlers.MemberAttendance)
			r.Post("/{id}/attendance", s.Handlers.MarkAttendance)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(s.Factory.Middleware.RequireAuth)

			r.Get("/status", s.Handlers.StatusReport)
			r.Get("/attendance", s.Handlers.AttendanceReport)
		})
	})
}
