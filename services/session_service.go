package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
)

// SessionService owns the one-active-session-per-table invariant.
type SessionService struct {
	Repo *repository.SessionRepository
}

func NewSessionService(repo *repository.SessionRepository) *SessionService {
	return &SessionService{Repo: repo}
}

// CheckTable reports whether a table is occupied and, if so, by whom.
func (s *SessionService) CheckTable(ctx context.Context, tableNumber string) (bool, *entity.SessionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	existing, err := s.Repo.FindActive(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	sum := existing.Summary()
	return true, &sum, nil
}

// Create seats a party. The insert itself is conditional on the table being
// vacant, so concurrent requests for the same table cannot both succeed.
func (s *SessionService) Create(ctx context.Context, tableNumber, customerName string, numberOfPeople int) (*entity.CustomerSession, error) {
	tableNumber = strings.TrimSpace(tableNumber)
	customerName = strings.TrimSpace(customerName)
	if tableNumber == "" || customerName == "" || numberOfPeople == 0 {
		return nil, validationf("all fields are required")
	}
	if numberOfPeople < 1 {
		return nil, validationf("number of people must be at least 1")
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	session := &entity.CustomerSession{
		TableNumber:    tableNumber,
		CustomerName:   customerName,
		NumberOfPeople: numberOfPeople,
		Active:         true,
	}
	created, err := s.Repo.CreateIfVacant(ctx, session)
	if err != nil {
		return nil, err
	}
	if created {
		return session, nil
	}

	// Lost to an existing or concurrent session; fetch it for the conflict
	// payload. If it closed in the meantime, retrying is the client's call.
	existing, err := s.Repo.FindActive(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &TableOccupiedError{}
		}
		return nil, err
	}
	return nil, &TableOccupiedError{Session: existing.Summary()}
}

// Close ends a dining engagement. Closing is an explicit staff action from
// the dashboard; there is no automatic trigger.
func (s *SessionService) Close(ctx context.Context, tableNumber string) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	affected, err := s.Repo.CloseActive(ctx, strings.TrimSpace(tableNumber))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
