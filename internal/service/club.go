package service

import (
	"errors"
	"fmt"

	"bookclub-backend/internal/database/models"
	"bookclub-backend/internal/repository"

	"gorm.io/gorm"
)

// ClubService resolves the single-tenant club. The club is ensured once at
// startup; every other service then carries the immutable club ID instead of
// re-deriving it per request.
type ClubService struct {
	repo repository.ClubRepositoryInterface
}

// NewClubService creates a new club service
func NewClubService(repo repository.ClubRepositoryInterface) *ClubService {
	return &ClubService{repo: repo}
}

// EnsureDefault returns the first club, creating it with the configured
// name and description when the table is empty. First caller wins.
func (s *ClubService) EnsureDefault(name, description string) (*models.Club, error) {
	club, err := s.repo.GetFirst()
	if err == nil {
		return club, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve club: %w", err)
	}

	club = &models.Club{
		Name:        name,
		Description: description,
	}
	if err := s.repo.Create(club); err != nil {
		return nil, fmt.Errorf("failed to create default club: %w", err)
	}
	return club, nil
}
