package repository

import "rentify-api/entity"

type PropertyRepository struct {
	Repository[entity.Property]
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}
