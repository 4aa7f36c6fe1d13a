package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/transaction"
	util "github.com/monevo-app/monevo-api/internal/utils"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotCard         = errors.New("account is not a card")
	ErrMissingClosing  = errors.New("card has no closing day and no period was given")
)

type Service interface {
	Generate(ctx context.Context, userID, cardID uuid.UUID, start, end *time.Time) (*InvoiceResponse, error)
}

type service struct {
	accounts     account.Repository
	transactions transaction.Repository
}

func NewService(accounts account.Repository, transactions transaction.Repository) Service {
	return &service{accounts: accounts, transactions: transactions}
}

func (s *service) Generate(ctx context.Context, userID, cardID uuid.UUID, start, end *time.Time) (*InvoiceResponse, error) {
	log := config.WithContext(ctx)

	card, err := s.accounts.FindByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrAccountNotFound
	}
	if card.UserID != userID {
		return nil, ErrUnauthorized
	}
	if card.Type != account.TypeCard {
		return nil, ErrNotCard
	}

	var from, to time.Time
	switch {
	case start != nil && end != nil:
		from, to = *start, *end
	case card.CardClosingDay != nil:
		from, to = PeriodFor(*card.CardClosingDay, time.Now())
	default:
		return nil, ErrMissingClosing
	}

	txs, err := s.transactions.FindByCardAndPeriod(cardID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to load card transactions")
		return nil, err
	}

	total := decimal.Zero
	for _, t := range txs {
		switch t.Kind {
		case transaction.KindExpense:
			total = total.Add(t.Amount)
		case transaction.KindIncome:
			// payments and refunds on the card reduce the statement
			total = total.Sub(t.Amount)
		}
	}

	resp := &InvoiceResponse{
		CardAccountID: card.ID,
		CardName:      card.Name,
		Start:         util.LocalDate{Time: from},
		End:           util.LocalDate{Time: to},
		Total:         total,
		Count:         len(txs),
		Transactions:  txs,
	}
	if card.CardDueDay != nil {
		due := closingDate(to.Year(), to.Month(), *card.CardDueDay, to.Location())
		if !due.After(to) {
			next := due.AddDate(0, 1, 0)
			due = closingDate(next.Year(), next.Month(), *card.CardDueDay, to.Location())
		}
		resp.DueDate = &util.LocalDate{Time: due}
	}
	return resp, nil
}
