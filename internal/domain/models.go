package domain

import (
	"time"
)

// Employee представляет сотрудника
type Employee struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Code       string    `gorm:"column:code;type:varchar(255);not null;uniqueIndex"`
	Name       string    `gorm:"column:name;type:varchar(255);not null"`
	Password   string    `gorm:"column:password;type:varchar(64);not null"`
	AdminFlag  int       `gorm:"column:admin_flag;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
	DeleteFlag int       `gorm:"column:delete_flag;not null;default:0"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return TableEmployees
}

// IsAdmin сообщает, есть ли у сотрудника права администратора
func (e *Employee) IsAdmin() bool {
	return e.AdminFlag == RoleAdmin
}

// Report представляет дневной отчёт сотрудника
type Report struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"column:employee_id;not null;index"`
	ReportDate time.Time `gorm:"column:report_date;type:date;not null"`
	Title      string    `gorm:"column:title;type:varchar(255);not null"`
	Content    string    `gorm:"column:content;type:text;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
	ReportGood int       `gorm:"column:reports_good;not null;default:0"`

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (Report) TableName() string {
	return TableReports
}

// Good - отметка «нравится» одного сотрудника на одном отчёте.
// Повторные отметки не ограничиваются.
type Good struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"column:good_emp_id;not null;index"`
	ReportID   int64     `gorm:"column:good_rep_id;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
	Report   *Report   `gorm:"foreignKey:ReportID"`
}

// TableName задаёт имя таблицы для GORM
func (Good) TableName() string {
	return TableGoods
}

// Follow - подписка FollowerID на отчёты FollowedID
type Follow struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	FollowerID int64     `gorm:"column:flw_emp_id;not null;index"`
	FollowedID int64     `gorm:"column:flwed_emp_id;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`

	Follower *Employee `gorm:"foreignKey:FollowerID"`
	Followed *Employee `gorm:"foreignKey:FollowedID"`
}

// TableName задаёт имя таблицы для GORM
func (Follow) TableName() string {
	return TableFollows
}
