package usecase

import (
	"context"

	"rentify-api/dto/req"
	"rentify-api/dto/res"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error)
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
}
