package v1

// CreateAccountRequest carries no age field; the stored age is derived from
// the date of birth at creation.
type CreateAccountRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=64"`
	DOB   string `json:"dob" validate:"required,date"`
	Email string `json:"email" validate:"required,email"`
	PIN   string `json:"pin" validate:"required,pin"`
}

type LoginRequest struct {
	AccountNo string `json:"account_no" validate:"required,account_no"`
	PIN       string `json:"pin" validate:"required,pin"`
}

type RecoverRequest struct {
	Email string `json:"email" validate:"required,email"`
	DOB   string `json:"dob" validate:"required,date"`
}

type UpdateDetailsRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=64"`
	Email string `json:"email" validate:"required,email"`
	PIN   string `json:"pin" validate:"required,pin"`
}

type ChangePINRequest struct {
	OldPIN     string `json:"old_pin" validate:"required,pin"`
	NewPIN     string `json:"new_pin" validate:"required,pin"`
	ConfirmPIN string `json:"confirm_pin" validate:"required,eqfield=NewPIN"`
}

type AmountRequest struct {
	Amount int64 `json:"amount" validate:"required"`
}
