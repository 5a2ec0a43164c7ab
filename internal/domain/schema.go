package domain

// Количество записей на одной странице списка
const RowPerPage = 15

// Таблицы
const (
	TableEmployees = "employees"
	TableReports   = "reports"
	TableGoods     = "goodemployees"
	TableFollows   = "followemployees"
)

// Колонки employees
const (
	EmpColID         = "id"
	EmpColCode       = "code"
	EmpColName       = "name"
	EmpColPassword   = "password"
	EmpColAdminFlag  = "admin_flag"
	EmpColCreatedAt  = "created_at"
	EmpColUpdatedAt  = "updated_at"
	EmpColDeleteFlag = "delete_flag"
)

// Колонки reports
const (
	RepColID         = "id"
	RepColEmployee   = "employee_id"
	RepColReportDate = "report_date"
	RepColTitle      = "title"
	RepColContent    = "content"
	RepColCreatedAt  = "created_at"
	RepColUpdatedAt  = "updated_at"
	RepColGood       = "reports_good"
)

// Колонки goodemployees
const (
	GoodColID        = "id"
	GoodColEmployee  = "good_emp_id"
	GoodColReport    = "good_rep_id"
	GoodColCreatedAt = "created_at"
	GoodColUpdatedAt = "updated_at"
)

// Колонки followemployees
const (
	FollowColID        = "id"
	FollowColFollower  = "flw_emp_id"
	FollowColFollowed  = "flwed_emp_id"
	FollowColCreatedAt = "created_at"
	FollowColUpdatedAt = "updated_at"
)

// Роли и флаг удаления сотрудника
const (
	RoleGeneral = 0
	RoleAdmin   = 1

	EmpDelFalse = 0
	EmpDelTrue  = 1
)

// Offset возвращает смещение для 1-индексированной страницы.
// Границы не проверяются: page <= 0 даёт неположительное смещение.
func Offset(page int) int {
	return RowPerPage * (page - 1)
}
