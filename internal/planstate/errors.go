package planstate

import "fmt"

// Code classifies an operation failure.
type Code string

const (
	CodeValidation  Code = "validation_error"
	CodeNotFound    Code = "not_found"
	CodeDuplicate   Code = "duplicate"
	CodeProtected   Code = "protected"
	CodeFormat      Code = "format_error"
	CodeDataInvalid Code = "data_invalid"
)

// OpError is the failure result of a mutating operation. The message is
// user-facing; the code is stable for programmatic handling.
type OpError struct {
	Code    Code
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

// User-facing messages. These match the wording the dialogs have always
// shown, so they must not be reworded casually.
const (
	msgInvalidItem         = "項目を指定してください"
	msgEmptyPlanName       = "プラン名を入力してください"
	msgPlanNameTooLong     = "プラン名は50文字以内で入力してください"
	msgItemNotFound        = "指定された項目が見つかりません"
	msgPlanNotFound        = "指定されたプランが見つかりません"
	msgDuplicatePlanName   = "同じ名前のプランが既に存在します"
	msgCannotDeleteDefault = "デフォルトプランは削除できません"
	msgCannotRenameDefault = "デフォルトプランの名前は変更できません"
	msgPlanNotAvailable    = "指定されたプランが利用できません"
)

func errValidation(msg string) *OpError {
	return &OpError{Code: CodeValidation, Message: msg}
}

func errNotFound(msg string) *OpError {
	return &OpError{Code: CodeNotFound, Message: msg}
}

func errDuplicate(msg string) *OpError {
	return &OpError{Code: CodeDuplicate, Message: msg}
}

func errProtected(msg string) *OpError {
	return &OpError{Code: CodeProtected, Message: msg}
}

func errFormat(format string, args ...interface{}) *OpError {
	return &OpError{Code: CodeFormat, Message: fmt.Sprintf(format, args...)}
}
