package model

type TxType string

const (
	TxTypeDeposit  TxType = "Deposit"
	TxTypeWithdraw TxType = "Withdraw"
)

type Transaction struct {
	// omitempty keeps a zero ID out of PostgREST inserts so the identity
	// column assigns it.
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	AccountNo string `gorm:"column:account_no;index;not null" json:"account_no"`
	Type      TxType `gorm:"column:type;type:varchar(10);not null" json:"type"`
	Amount    int64  `gorm:"column:amount;not null" json:"amount"`
	// Wall-clock time in the ledger's configured zone, "YYYY-MM-DD HH:MM:SS".
	Timestamp string `gorm:"column:timestamp;type:char(19);not null" json:"timestamp"`
}

func (Transaction) TableName() string {
	return "transactions"
}
