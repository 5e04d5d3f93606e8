package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/accounts/account/model"
)

// Role is the explicit discriminant for the three account tables. Lookup
// precedence is fixed: student, then coordinator, then instructor.
type Role string

const (
	RoleStudent     Role = "student"
	RoleCoordinator Role = "coordinator"
	RoleInstructor  Role = "instructor"
)

var lookupOrder = []Role{RoleStudent, RoleCoordinator, RoleInstructor}

var ErrAccountNotFound = errors.New("account not found")

// Account is the tagged-union view over the three account kinds; only the
// fields every kind shares.
type Account struct {
	ID             uuid.UUID
	Role           Role
	CCAEmail       string
	LastName       string
	FirstName      string
	SecondName     *string
	MiddleInitial  *string
	Password       string
	ActiveStatus   bool
	IsPasswordTemp bool
	ProfilePath    *string
}

// TableForRole maps a role onto its backing table.
func TableForRole(role Role) string {
	switch role {
	case RoleStudent:
		return model.StudentModel{}.TableName()
	case RoleCoordinator:
		return model.CoordinatorModel{}.TableName()
	case RoleInstructor:
		return model.InstructorModel{}.TableName()
	}
	return ""
}

func ValidRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleCoordinator, RoleInstructor:
		return Role(s), true
	}
	return "", false
}

// StaffRole accepts only coordinator/instructor.
func StaffRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCoordinator, RoleInstructor:
		return Role(s), true
	}
	return "", false
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail resolves an account across the three tables in precedence
// order, returning the first match with its role.
func FindByEmail(db *gorm.DB, email string) (*Account, error) {
	email = NormalizeEmail(email)
	for _, role := range lookupOrder {
		acct, err := findOne(db, role, "cca_email = ?", email)
		if err == nil {
			return acct, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, ErrAccountNotFound
}

// FindByID resolves an account of a known role.
func FindByID(db *gorm.DB, role Role, id string) (*Account, error) {
	acct, err := findOne(db, role, "id = ?", id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	return acct, err
}

func findOne(db *gorm.DB, role Role, query string, args ...any) (*Account, error) {
	switch role {
	case RoleStudent:
		var m model.StudentModel
		if err := db.Where(query, args...).First(&m).Error; err != nil {
			return nil, err
		}
		return &Account{
			ID: m.ID, Role: RoleStudent, CCAEmail: m.CCAEmail,
			LastName: m.LastName, FirstName: m.FirstName,
			SecondName: m.SecondName, MiddleInitial: m.MiddleInitial,
			Password: m.Password, ActiveStatus: m.ActiveStatus,
			IsPasswordTemp: m.IsPasswordTemp, ProfilePath: m.ProfilePath,
		}, nil
	case RoleCoordinator:
		var m model.CoordinatorModel
		if err := db.Where(query, args...).First(&m).Error; err != nil {
			return nil, err
		}
		return &Account{
			ID: m.ID, Role: RoleCoordinator, CCAEmail: m.CCAEmail,
			LastName: m.LastName, FirstName: m.FirstName,
			SecondName: m.SecondName, MiddleInitial: m.MiddleInitial,
			Password: m.Password, ActiveStatus: m.ActiveStatus,
			IsPasswordTemp: m.IsPasswordTemp, ProfilePath: m.ProfilePath,
		}, nil
	case RoleInstructor:
		var m model.InstructorModel
		if err := db.Where(query, args...).First(&m).Error; err != nil {
			return nil, err
		}
		return &Account{
			ID: m.ID, Role: RoleInstructor, CCAEmail: m.CCAEmail,
			LastName: m.LastName, FirstName: m.FirstName,
			SecondName: m.SecondName, MiddleInitial: m.MiddleInitial,
			Password: m.Password, ActiveStatus: m.ActiveStatus,
			IsPasswordTemp: m.IsPasswordTemp, ProfilePath: m.ProfilePath,
		}, nil
	}
	return nil, ErrAccountNotFound
}

// UpdateColumns updates the account row of the given role by id.
func UpdateColumns(db *gorm.DB, role Role, id string, values map[string]any) (int64, error) {
	table := TableForRole(role)
	if table == "" {
		return 0, ErrAccountNotFound
	}
	res := db.Table(table).Where("id = ?", id).Updates(values)
	return res.RowsAffected, res.Error
}

// UpdateColumnsByEmail tries each account kind in precedence order until a
// row is touched. Returns the matched role.
func UpdateColumnsByEmail(db *gorm.DB, email string, values map[string]any) (Role, error) {
	email = NormalizeEmail(email)
	for _, role := range lookupOrder {
		res := db.Table(TableForRole(role)).Where("cca_email = ?", email).Updates(values)
		if res.Error != nil {
			return "", res.Error
		}
		if res.RowsAffected > 0 {
			return role, nil
		}
	}
	return "", ErrAccountNotFound
}

// FullName composes "First Second M. Last", skipping blank or literal
// none/null name parts the way legacy rows stored them.
func FullName(first string, second, middleInitial *string, last string) string {
	parts := []string{}
	if first != "" {
		parts = append(parts, first)
	}
	if s := cleanNamePart(second); s != "" {
		parts = append(parts, s)
	}
	if s := cleanNamePart(middleInitial); s != "" {
		parts = append(parts, s+".")
	}
	if last != "" {
		parts = append(parts, last)
	}
	return strings.Join(parts, " ")
}

func cleanNamePart(p *string) string {
	if p == nil {
		return ""
	}
	s := strings.TrimSpace(*p)
	switch strings.ToLower(s) {
	case "", "none", "null":
		return ""
	}
	return s
}
