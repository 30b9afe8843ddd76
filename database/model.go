package database

import (
	"fmt"
	"time"
)

const DriverName = "postgres"

const (
	UsersTable     = "users"
	EducationTable = "education"
)

type UserType string

const (
	UserTypeStudent   UserType = "student"
	UserTypeProfessor UserType = "professor"
	UserTypeTeacher   UserType = "teacher"
)

func UserTypes() []UserType {
	return []UserType{UserTypeStudent, UserTypeProfessor, UserTypeTeacher}
}

func ParseUserType(value string) (UserType, error) {
	for _, item := range UserTypes() {
		if string(item) == value {
			return item, nil
		}
	}

	return "", fmt.Errorf("invalid user type [%s]", value)
}

func (t UserType) IsValid() bool {
	_, err := ParseUserType(string(t))

	return err == nil
}

type User struct {
	ID        uint64      `gorm:"column:user_id;primaryKey;autoIncrement"`
	UUID      string      `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name      string      `gorm:"type:varchar(100);not null"`
	Email     string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Bio       *string     `gorm:"type:text"`
	Location  *string     `gorm:"type:varchar(255)"`
	Score     float64     `gorm:"not null;default:0;check:check_score_range,score >= 0 AND score <= 100"`
	TestCount int         `gorm:"column:test_count;not null;default:0;check:check_test_count,test_count >= 0"`
	PhoneNo   *string     `gorm:"column:phone_no;type:varchar(20)"`
	UserType  UserType    `gorm:"column:user_type;type:varchar(20);not null;index;check:check_user_type,user_type IN ('student','professor','teacher')"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Education []Education `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return UsersTable
}

type Education struct {
	ID          uint64    `gorm:"column:education_id;primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"column:user_id;not null;index"`
	Degree      string    `gorm:"type:varchar(255);not null"`
	Institution string    `gorm:"type:varchar(255);not null"`
	Year        int       `gorm:"not null"`
	CreatedAt   time.Time
}

func (Education) TableName() string {
	return EducationTable
}
