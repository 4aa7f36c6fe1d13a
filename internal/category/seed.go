package category

import (
	"context"

	"github.com/monevo-app/monevo-api/internal/config"
)

type seedEntry struct {
	Key  string
	Name string
}

// DefaultHierarchy mirrors the subcategories the frontend offers.
var DefaultHierarchy = map[CategoryType][]seedEntry{
	TypeIncome: {
		{"salario", "Salário"},
		{"freelance", "Freelance"},
		{"investimentos", "Investimentos"},
		{"vendas", "Vendas"},
		{"outros_receita", "Outros"},
	},
	TypeExpense: {
		{"alimentacao", "Alimentação"},
		{"transporte", "Transporte"},
		{"saude", "Saúde"},
		{"educacao", "Educação"},
		{"lazer", "Lazer"},
		{"casa", "Casa"},
		{"compras", "Compras"},
		{"outros_despesa", "Outros"},
	},
	TypeInvestment: {
		{"renda_fixa", "Renda Fixa"},
		{"renda_variavel", "Renda Variável"},
		{"fundos", "Fundos"},
		{"criptomoedas", "Criptomoedas"},
		{"outros_invest", "Outros"},
	},
}

// Seed inserts the default hierarchy when the table is empty.
func Seed(ctx context.Context, repo Repository) error {
	log := config.WithContext(ctx)

	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, t := range AllTypes {
		for i, entry := range DefaultHierarchy[t] {
			c := Category{
				Type:   t,
				Key:    entry.Key,
				Name:   entry.Name,
				Order:  i,
				Active: true,
			}
			if err := repo.Create(&c); err != nil {
				log.WithError(err).Errorf("Failed to seed category %s", entry.Key)
				return err
			}
		}
	}

	log.Info("Default categories seeded")
	return nil
}
