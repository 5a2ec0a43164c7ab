package dto

import (
	"time"

	"github.com/daily-report-api/internal/domain"
)

// EmployeeView - представление сотрудника без привязки к хранилищу
type EmployeeView struct {
	ID         int64     `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Password   string    `json:"-"`
	AdminFlag  int       `json:"admin_flag"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	DeleteFlag int       `json:"delete_flag"`
}

// IsAdmin сообщает, есть ли у сотрудника права администратора
func (v *EmployeeView) IsAdmin() bool {
	return v != nil && v.AdminFlag == domain.RoleAdmin
}

// ReportView - представление отчёта
type ReportView struct {
	ID         int64         `json:"id"`
	Employee   *EmployeeView `json:"employee,omitempty"`
	ReportDate time.Time     `json:"report_date"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	ReportGood int           `json:"reports_good"`
}

// GoodView - представление отметки «нравится»
type GoodView struct {
	ID        int64         `json:"id"`
	Employee  *EmployeeView `json:"employee,omitempty"`
	Report    *ReportView   `json:"report,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// FollowView - представление подписки
type FollowView struct {
	ID        int64         `json:"id"`
	Follower  *EmployeeView `json:"follower,omitempty"`
	Followed  *EmployeeView `json:"followed,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TimelineGroup - отчёты одного сотрудника, на которого подписан пользователь
type TimelineGroup struct {
	Employee *EmployeeView `json:"employee"`
	Reports  []ReportView  `json:"reports"`
	Count    int64         `json:"count"`
}

// TimelineView - лента: общий список отчётов подписок и группировка по авторам
type TimelineView struct {
	Reports []ReportView    `json:"reports"`
	Count   int64           `json:"count"`
	Groups  []TimelineGroup `json:"groups"`
}
