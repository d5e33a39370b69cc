package controller

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ptaweb_backend/internals/features/users/dto"
	userModel "ptaweb_backend/internals/features/users/model"
	helper "ptaweb_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct{ DB *gorm.DB }

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetAll lists full user records for the board.
func (ctl *UserController) GetAll(c *fiber.Ctx) error {
	var users []userModel.UserModel
	err := ctl.DB.Order("user_last_name ASC, user_first_name ASC").Find(&users).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}
	return helper.JsonOK(c, users)
}

// GetPublic lists active users in the public-safe projection.
func (ctl *UserController) GetPublic(c *fiber.Ctx) error {
	var users []userModel.UserModel
	err := ctl.DB.Where("user_is_active = ?", true).
		Order("user_last_name ASC, user_first_name ASC").Find(&users).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	public := make([]userModel.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].ToPublic())
	}
	return helper.JsonOK(c, public)
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return helper.JsonOK(c, user)
}

// Create generates a random password, stores only its bcrypt hash, and
// returns the plaintext once in the response.
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	password, err := generatePassword(16)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := req.ToModel()
	user.UserPasswordHash = string(hash)

	if err := ctl.DB.Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "A user with this email already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, dto.CreatedUserResponse{
		User:              user,
		GeneratedPassword: password,
	})
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	req.ApplyToModel(&user)
	if err := ctl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonOK(c, &user)
}

const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789!@#$%"

func generatePassword(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
