// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/users", h.signup)
		r.Post("/users/login", h.login)
		r.Get("/users/{userID}/avatar", h.getAvatar)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/users/logout", h.logout)
		r.Post("/users/logoutAll", h.logoutAll)
		r.Get("/users/me", h.getProfile)
		r.Patch("/users/me", h.updateProfile)
		r.Delete("/users/me", h.deleteAccount)
		r.Post("/users/me/avatar", h.uploadAvatar)
		r.Delete("/users/me/avatar", h.deleteAvatar)

		r.Post("/tasks", h.createTask)
		r.Get("/tasks", h.listTasks)
		r.Get("/tasks/{taskID}", h.getTask)
		r.Patch("/tasks/{taskID}", h.updateTask)
		r.Delete("/tasks/{taskID}", h.deleteTask)
		r.Post("/tasks/{taskID}/image", h.uploadTaskImage)
		r.Get("/tasks/{taskID}/image", h.getTaskImage)
		r.Delete("/tasks/{taskID}/image", h.deleteTaskImage)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
