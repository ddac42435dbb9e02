package model

import "time"

type Account struct {
	AccountNo string    `gorm:"column:account_no;primaryKey;type:char(7)" json:"account_no"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Age       int       `gorm:"column:age;not null" json:"age"`
	DOB       string    `gorm:"column:dob;type:char(10)" json:"dob"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	PIN       string    `gorm:"column:pin;type:char(4);not null" json:"pin"`
	Balance   int64     `gorm:"column:balance;not null;default:0" json:"balance"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
