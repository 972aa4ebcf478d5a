package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&request); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	user, err := h.auth.Register(c.Context(), request.Name, request.Email, request.Password, request.Role)
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	token, user, err := h.auth.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
