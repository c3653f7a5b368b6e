package services

import (
	"context"
	"fmt"

	"github.com/lukeklipping/NourishBox/models"
	"github.com/lukeklipping/NourishBox/repositories"
)

type AuthorService struct {
	authors repositories.AuthorRepository
}

func NewAuthorService(authors repositories.AuthorRepository) *AuthorService {
	return &AuthorService{authors: authors}
}

func (s *AuthorService) List(ctx context.Context) ([]models.Author, error) {
	authors, err := s.authors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	if authors == nil {
		authors = []models.Author{}
	}
	return authors, nil
}
