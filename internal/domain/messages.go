package domain

// Флеш-сообщения об успешных операциях
const (
	MsgLoggedIn   = "logged in"
	MsgRegistered = "registration completed"
	MsgUpdated    = "update completed"
	MsgDeleted    = "deletion completed"
	MsgGood       = "liked the report"
	MsgFollow     = "followed the report author"
)

// Сообщения проверки форм
const (
	ErrMsgNoTitle      = "please enter a title"
	ErrMsgNoContent    = "please enter the content"
	ErrMsgNoReportDate = "please enter a valid report date"
	ErrMsgNoCode       = "please enter an employee code"
	ErrMsgCodeExists   = "the employee code is already registered"
	ErrMsgNoName       = "please enter a name"
	ErrMsgNoPassword   = "please enter a password"
	ErrMsgNoEmployee   = "report author is required"
	ErrMsgTooLong      = "the value is too long"
	ErrMsgBadRole      = "unknown role"
)
