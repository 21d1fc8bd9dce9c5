package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"rentify-api/config/logger"
	"rentify-api/dto/res"
	"rentify-api/entity"
	"rentify-api/repository"
	"rentify-api/security"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
	*security.JWT
}

func NewUserUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger, JWT *security.JWT) UserUsecase {
	return &UserUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Log: logger, JWT: JWT}
}

func (uc *UserUsecaseImpl) GetUserByID(ctx context.Context, token string) (res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().Msg("Extracting user ID from token")

	userIdFromToken, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Msg("Failed to extract user ID from token")
		return res.UserResponse{}, errors.New("invalid token")
	}

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userIdFromToken); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Log.Http.Warning.Warn().
				Str("userId", userIdFromToken).
				Msg("User not found")
			return res.UserResponse{}, ErrNotFound
		}
		uc.Log.Http.Error.Error().
			Err(err).
			Str("userId", userIdFromToken).
			Msg("Failed to find user")
		return res.UserResponse{}, err
	}

	return res.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *UserUsecaseImpl) GetAllUser(ctx context.Context) ([]res.UserResponse, error) {
	var users []entity.User
	if err := uc.UserRepository.FindAll(ctx, uc.DB, &users); err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Msg("Failed to get all users")
		return nil, err
	}

	var userResponses []res.UserResponse
	for _, user := range users {
		userResponses = append(userResponses, res.UserResponse{
			ID:          user.ID,
			Username:    user.Username,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			CreatedAt:   user.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return userResponses, nil
}
