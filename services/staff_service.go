package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
)

// StaffService owns staff records, the email-uniqueness invariant, and the
// once-per-day check-in/check-out invariant.
type StaffService struct {
	Repo           *repository.StaffRepository
	AttendanceRepo *repository.AttendanceRepository
}

func NewStaffService(repo *repository.StaffRepository, att *repository.AttendanceRepository) *StaffService {
	return &StaffService{Repo: repo, AttendanceRepo: att}
}

type StaffIn struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Status string `json:"status"`

	Shift          string   `json:"shift"`
	Availability   string   `json:"availability"`
	AssignedTables []string `json:"assignedTables"`
}

func (s *StaffService) List(ctx context.Context) ([]entity.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.Repo.List(ctx)
}

func (s *StaffService) Create(ctx context.Context, in *StaffIn) (*entity.Staff, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !entity.ValidStaffRole(in.Role) {
		return nil, validationf("unknown role: %s", in.Role)
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	count, err := s.Repo.CountByEmail(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	status := in.Status
	if status == "" {
		status = entity.StaffStatusActive
	}
	availability := in.Availability
	if availability == "" {
		availability = entity.AvailabilityActive
	}

	staff := &entity.Staff{
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		Phone:          strings.TrimSpace(in.Phone),
		Role:           in.Role,
		Status:         status,
		JoinDate:       time.Now(),
		Shift:          in.Shift,
		Availability:   availability,
		AssignedTables: in.AssignedTables,
	}
	if err := s.Repo.Create(ctx, staff); err != nil {
		// the unique index backstops the check above under races
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) Update(ctx context.Context, id uint, in *StaffIn) (*entity.Staff, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !entity.ValidStaffRole(in.Role) {
		return nil, validationf("unknown role: %s", in.Role)
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	// a record may keep its own email; only another record's counts
	count, err := s.Repo.CountByEmail(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	fields := map[string]any{
		"name":  strings.TrimSpace(in.Name),
		"email": email,
		"phone": strings.TrimSpace(in.Phone),
		"role":  in.Role,
	}
	if in.Status != "" {
		fields["status"] = in.Status
	}
	if in.Shift != "" {
		fields["shift"] = in.Shift
	}
	if in.Availability != "" {
		fields["availability"] = in.Availability
	}
	if in.AssignedTables != nil {
		fields["assigned_tables"] = in.AssignedTables
	}

	affected, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Repo.Get(ctx, id)
}

func (s *StaffService) Delete(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------------- Attendance ----------------

// today truncates to the calendar day; attendance is day-granular.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CheckIn records presence for today. At most one record per (staff, day):
// the application check catches the common case, the composite unique index
// catches the race.
func (s *StaffService) CheckIn(ctx context.Context, staffID uint) (*repository.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	staff, err := s.Repo.Get(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	day := today()
	if _, err := s.AttendanceRepo.FindByStaffAndDate(ctx, staffID, day); err == nil {
		return nil, ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	att := &entity.Attendance{
		StaffID: staffID,
		Date:    day,
		CheckIn: time.Now(),
		Status:  entity.AttendancePresent,
	}
	if err := s.AttendanceRepo.Create(ctx, att); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	return attendanceRecord(att, staff), nil
}

// CheckOut closes today's open record.
func (s *StaffService) CheckOut(ctx context.Context, staffID uint) (*repository.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	att, err := s.AttendanceRepo.FindByStaffAndDate(ctx, staffID, today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCheckInToday
		}
		return nil, err
	}
	if att.CheckOut != nil {
		return nil, ErrAlreadyCheckedOut
	}

	now := time.Now()
	affected, err := s.AttendanceRepo.SetCheckOut(ctx, att.ID, now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAlreadyCheckedOut
	}
	att.CheckOut = &now

	staff, err := s.Repo.Get(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return attendanceRecord(att, staff), nil
}

func (s *StaffService) ListAttendance(ctx context.Context, startDate, endDate *time.Time) ([]repository.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var from, to *time.Time
	if startDate != nil && endDate != nil {
		start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
		end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location()).Add(24 * time.Hour)
		from, to = &start, &end
	}
	return s.AttendanceRepo.ListRange(ctx, from, to)
}

func attendanceRecord(att *entity.Attendance, staff *entity.Staff) *repository.AttendanceRecord {
	return &repository.AttendanceRecord{
		ID:        att.ID,
		StaffID:   att.StaffID,
		StaffName: staff.Name,
		StaffRole: staff.Role,
		Date:      att.Date,
		CheckIn:   att.CheckIn,
		CheckOut:  att.CheckOut,
		Status:    att.Status,
		Notes:     att.Notes,
	}
}

// ---------------- Waiter views ----------------

func (s *StaffService) ListWaiters(ctx context.Context) ([]entity.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.Repo.ListByRole(ctx, entity.StaffRoleWaiter)
}

func (s *StaffService) ListAvailableWaiters(ctx context.Context) ([]entity.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return s.Repo.ListByRoleAndAvailability(ctx, entity.StaffRoleWaiter, entity.AvailabilityActive)
}

func (s *StaffService) CreateWaiter(ctx context.Context, in *StaffIn) (*entity.Staff, error) {
	in.Role = entity.StaffRoleWaiter
	return s.Create(ctx, in)
}

// UpdateWaiter edits a waiter record. A staff member holding a different
// role is out of scope here and must be edited through the staff endpoints,
// not silently converted.
func (s *StaffService) UpdateWaiter(ctx context.Context, id uint, in *StaffIn) (*entity.Staff, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	current, err := s.Repo.Get(lookupCtx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if current.Role != entity.StaffRoleWaiter {
		return nil, validationf("staff member %d is not a waiter", id)
	}

	in.Role = entity.StaffRoleWaiter
	return s.Update(ctx, id, in)
}

func (s *StaffService) UpdateAvailability(ctx context.Context, id uint, availability string) (*entity.Staff, error) {
	if !entity.ValidAvailability(availability) {
		return nil, validationf("unknown availability: %s", availability)
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	affected, err := s.Repo.Update(ctx, id, map[string]any{"availability": availability})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Repo.Get(ctx, id)
}
