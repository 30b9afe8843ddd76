package repository

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/profileapi/database"
	"github.com/profileapi/database/repository/pagination"
	"github.com/profileapi/database/repository/queries"
	"github.com/profileapi/pkg/gorm"
	"github.com/profileapi/pkg/portal"
	stdgorm "gorm.io/gorm"
)

type Profiles struct {
	DB *database.Connection
}

func (p Profiles) Create(attrs database.ProfileAttrs) (*database.User, error) {
	if !attrs.UserType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUserType, attrs.UserType)
	}

	if !scoreInRange(attrs.Score) {
		return nil, ErrScoreOutOfRange
	}

	name := portal.NewStringable(attrs.Name).Squash()
	if !nameInRange(name) {
		return nil, ErrInvalidName
	}

	user := database.User{
		UUID:      uuid.NewString(),
		Name:      name,
		Email:     portal.NewStringable(attrs.Email).ToEmail(),
		Bio:       attrs.Bio,
		Location:  attrs.Location,
		Score:     attrs.Score,
		TestCount: attrs.TestCount,
		PhoneNo:   attrs.PhoneNo,
		UserType:  attrs.UserType,
	}

	if attrs.Education != nil {
		user.Education = []database.Education{newEducation(*attrs.Education)}
	}

	err := p.DB.Transaction(func(tx *stdgorm.DB) error {
		if err := guardEmail(tx, user.Email, 0); err != nil {
			return err
		}

		if result := tx.Create(&user); result.Error != nil {
			return translate(result.Error)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return p.FindByID(user.ID)
}

func (p Profiles) List(filters queries.ProfileFilters, window pagination.Window) (*pagination.Page[database.User], error) {
	var numItems int64
	var users []database.User

	if kind := filters.GetUserType(); kind != "" {
		if _, err := database.ParseUserType(kind); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidUserType, kind)
		}
	}

	query := queries.ApplyProfileFilters(&filters, p.DB.Sql().Model(&database.User{}))

	if err := pagination.Count[*int64](&numItems, query, p.DB.GetSession(), "users.user_id"); err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}

	err := query.
		Preload("Education", func(db *stdgorm.DB) *stdgorm.DB {
			return db.Order("education.education_id ASC")
		}).
		Order("users.user_id ASC").
		Offset(window.GetSkip()).
		Limit(window.GetLimit()).
		Find(&users).Error

	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	window.SetNumItems(numItems)

	return pagination.MakePage(users, window), nil
}

func (p Profiles) FindByID(id uint64) (*database.User, error) {
	return findUser(p.DB.Sql(), id)
}

// Update applies only the present fields. A provided education entry replaces
// every education row the profile had.
func (p Profiles) Update(id uint64, changes database.ProfileChanges) (*database.User, error) {
	if changes.UserType != nil && !changes.UserType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUserType, *changes.UserType)
	}

	if changes.Score != nil && !scoreInRange(*changes.Score) {
		return nil, ErrScoreOutOfRange
	}

	if changes.Name != nil {
		name := portal.NewStringable(*changes.Name).Squash()
		if !nameInRange(name) {
			return nil, ErrInvalidName
		}

		changes.Name = &name
	}

	if changes.Email != nil {
		email := portal.NewStringable(*changes.Email).ToEmail()
		changes.Email = &email
	}

	err := p.DB.Transaction(func(tx *stdgorm.DB) error {
		user, err := findUser(tx, id)
		if err != nil {
			return err
		}

		if changes.Email != nil && *changes.Email != user.Email {
			if err := guardEmail(tx, *changes.Email, user.ID); err != nil {
				return err
			}
		}

		if columns := changes.Columns(); len(columns) > 0 {
			if result := tx.Model(&database.User{}).Where("user_id = ?", user.ID).Updates(columns); result.Error != nil {
				return translate(result.Error)
			}
		}

		if changes.Education == nil {
			return nil
		}

		if result := tx.Where("user_id = ?", user.ID).Delete(&database.Education{}); result.Error != nil {
			return fmt.Errorf("clear education: %w", result.Error)
		}

		education := newEducation(*changes.Education)
		education.UserID = user.ID

		if result := tx.Create(&education); result.Error != nil {
			return fmt.Errorf("create education: %w", result.Error)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return p.FindByID(id)
}

func (p Profiles) Delete(id uint64) error {
	return p.DB.Transaction(func(tx *stdgorm.DB) error {
		if _, err := findUser(tx, id); err != nil {
			return err
		}

		if result := tx.Where("user_id = ?", id).Delete(&database.Education{}); result.Error != nil {
			return fmt.Errorf("delete education: %w", result.Error)
		}

		if result := tx.Delete(&database.User{}, id); result.Error != nil {
			return fmt.Errorf("delete profile: %w", result.Error)
		}

		return nil
	})
}

func (p Profiles) IncrementTests(id uint64) (*database.User, error) {
	result := p.DB.Sql().
		Model(&database.User{}).
		Where("user_id = ?", id).
		Update("test_count", stdgorm.Expr("test_count + ?", 1))

	if result.Error != nil {
		return nil, fmt.Errorf("increment tests: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return p.FindByID(id)
}

func (p Profiles) UpdateScore(id uint64, score float64) (*database.User, error) {
	if !scoreInRange(score) {
		return nil, ErrScoreOutOfRange
	}

	result := p.DB.Sql().
		Model(&database.User{}).
		Where("user_id = ?", id).
		Update("score", score)

	if result.Error != nil {
		return nil, translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return p.FindByID(id)
}

func findUser(db *stdgorm.DB, id uint64) (*database.User, error) {
	user := &database.User{}

	result := db.
		Preload("Education", func(db *stdgorm.DB) *stdgorm.DB {
			return db.Order("education.education_id ASC")
		}).
		Where("user_id = ?", id).
		First(user)

	if gorm.IsNotFound(result.Error) {
		return nil, ErrNotFound
	}

	if result.Error != nil {
		return nil, fmt.Errorf("find profile %d: %w", id, result.Error)
	}

	return user, nil
}

func guardEmail(tx *stdgorm.DB, email string, ignoreID uint64) error {
	var count int64

	query := tx.Model(&database.User{}).Where("LOWER(email) = ?", email)

	if ignoreID != 0 {
		query = query.Where("user_id <> ?", ignoreID)
	}

	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}

	if count > 0 {
		return ErrEmailTaken
	}

	return nil
}

// nameInRange counts characters, not bytes.
func nameInRange(name string) bool {
	length := utf8.RuneCountInString(name)

	return length >= MinNameLength && length <= MaxNameLength
}

// scoreInRange also rejects NaN.
func scoreInRange(score float64) bool {
	return score >= MinScore && score <= MaxScore
}

func newEducation(attrs database.EducationAttrs) database.Education {
	return database.Education{
		Degree:      portal.NewStringable(attrs.Degree).Squash(),
		Institution: portal.NewStringable(attrs.Institution).Squash(),
		Year:        attrs.Year,
	}
}

func translate(err error) error {
	switch {
	case gorm.IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", ErrEmailTaken, err)
	case gorm.IsCheckViolation(err):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	default:
		return err
	}
}
