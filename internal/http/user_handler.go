package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jcpachecoh/cbtw-recruitment/internal/service"
)

// UserHandler mantiene dependencias para los endpoints de administracion de
// usuarios.
type UserHandler struct {
	logger  *zap.Logger
	userSvc *service.UserService
}

func NewUserHandler(logger *zap.Logger, userSvc *service.UserService) *UserHandler {
	return &UserHandler{
		logger:  logger,
		userSvc: userSvc,
	}
}

// ListUsers maneja GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"data":    users,
	})
}

// CreateUser maneja POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		UserName    string `json:"userName" binding:"required"`
		UserType    string `json:"userType" binding:"required"`
		UserStatus  string `json:"userStatus"`
		Department  string `json:"department"`
		UserRole    string `json:"userRole"`
		AvatarURL   string `json:"avatarUrl"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.userSvc.CreateUser(c.Request.Context(), service.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		UserName:    req.UserName,
		UserType:    req.UserType,
		UserStatus:  req.UserStatus,
		Department:  req.Department,
		UserRole:    req.UserRole,
		AvatarURL:   req.AvatarURL,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
		case errors.Is(err, service.ErrInvalidUserType), errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		default:
			h.logger.Error("create user failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"data":    user,
	})
}

// UpdateUser maneja PATCH /api/users.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req struct {
		ID          string  `json:"id" binding:"required"`
		UserName    *string `json:"userName"`
		UserType    *string `json:"userType"`
		UserStatus  *string `json:"userStatus"`
		Department  *string `json:"department"`
		UserRole    *string `json:"userRole"`
		AvatarURL   *string `json:"avatarUrl"`
		PhoneNumber *string `json:"phoneNumber"`
		Password    *string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing user ID"})
		return
	}

	user, err := h.userSvc.UpdateUser(c.Request.Context(), service.UpdateUserInput{
		ID:          req.ID,
		UserName:    req.UserName,
		UserType:    req.UserType,
		UserStatus:  req.UserStatus,
		Department:  req.Department,
		UserRole:    req.UserRole,
		AvatarURL:   req.AvatarURL,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidUserType):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user type"})
		default:
			h.logger.Error("update user failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteUser maneja DELETE /api/users?id=...
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing user ID"})
		return
	}

	user, err := h.userSvc.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.logger.Error("delete user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"data": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.UserName,
		},
	})
}
