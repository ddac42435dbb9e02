package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	pinRegex       = `^\d{4}$`
	accountNoRegex = `^[A-Za-z0-9!@#$%^&*]{5,7}$`
	dateRegex      = `^\d{4}-\d{2}-\d{2}$`
)

const (
	PINTag       = "pin"
	AccountNoTag = "account_no"
	DateTag      = "date"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	PINTag:       ValidatePIN,
	AccountNoTag: ValidateAccountNo,
	DateTag:      ValidateDate,
}

func ValidatePIN(fl validator.FieldLevel) bool {
	return regexp.MustCompile(pinRegex).MatchString(fl.Field().String())
}

// ValidateAccountNo accepts generated 7-character numbers and the
// shorter configured admin sentinel.
func ValidateAccountNo(fl validator.FieldLevel) bool {
	return regexp.MustCompile(accountNoRegex).MatchString(fl.Field().String())
}

func ValidateDate(fl validator.FieldLevel) bool {
	return regexp.MustCompile(dateRegex).MatchString(fl.Field().String())
}
