package dto

// LoginRequest - запрос на вход по коду сотрудника
type LoginRequest struct {
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ReportForm - данные формы отчёта.
// Пустая дата при создании заменяется сегодняшней.
type ReportForm struct {
	Token      string `json:"token"`
	ReportDate string `json:"report_date"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// EmployeeForm - данные формы сотрудника
type EmployeeForm struct {
	Token     string `json:"token"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	AdminFlag int    `json:"admin_flag"`
}

// TokenForm - запросы без полей, но с одноразовым токеном
type TokenForm struct {
	Token string `json:"token"`
}
