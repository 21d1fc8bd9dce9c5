package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rentify-api/dto/req"
	"rentify-api/dto/res"
	"rentify-api/entity"
	"rentify-api/repository"
	"rentify-api/security"
	"rentify-api/util"
)

type AuthUsecaseImpl struct {
	*repository.AuthRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(authRepository *repository.AuthRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{AuthRepository: authRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return res.LoginResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	currentAccount, err := uc.AuthRepository.FindByUsername(trx, request.Username)
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to find username = %v", err)
		return res.LoginResponse{}, ErrUnauthorized
	}

	if matchPassword := util.ComparePassword(currentAccount.Password, request.Password); !matchPassword {
		uc.Logger.Errorf("Password mismatch for user %s", request.Username)
		return res.LoginResponse{}, ErrUnauthorized
	}

	token, err := uc.JWT.GenerateToken(&currentAccount.User)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token = %v", err)
		return res.LoginResponse{}, err
	}

	return res.LoginResponse{
		Token: token,
	}, nil
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return res.RegisterResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.RegisterResponse{}, err
	}

	newUser := &entity.User{
		Username:    request.Username,
		Name:        request.Name,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
	}

	newAccount := &entity.Account{
		UserName: request.Username,
		Password: hashPassword,
		User:     *newUser,
	}

	if err := uc.AuthRepository.Save(ctx, trx, newAccount); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save user : %v", err)
		return res.RegisterResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit user : %v", err)
		return res.RegisterResponse{}, err
	}

	return res.RegisterResponse{
		ID:       newAccount.ID,
		Username: newAccount.UserName,
		Email:    newUser.Email,
	}, nil
}
