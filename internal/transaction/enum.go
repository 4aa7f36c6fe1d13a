package transaction

type TransactionKind string

const (
	KindExpense    TransactionKind = "despesa"
	KindIncome     TransactionKind = "receita"
	KindTransfer   TransactionKind = "transferencia"
	KindInvestment TransactionKind = "investimento"
)

func (k TransactionKind) IsValid() bool {
	switch k {
	case KindExpense, KindIncome, KindTransfer, KindInvestment:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pendente"
	StatusConfirmed  TransactionStatus = "confirmado"
	StatusReconciled TransactionStatus = "conciliado"
	StatusRejected   TransactionStatus = "recusado"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusReconciled, StatusRejected:
		return true
	}
	return false
}
