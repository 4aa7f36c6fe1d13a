package container

import (
	"context"
	"log"
	"os"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/assistant"
	"github.com/monevo-app/monevo-api/internal/auth"
	"github.com/monevo-app/monevo-api/internal/category"
	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/goal"
	"github.com/monevo-app/monevo-api/internal/invoice"
	"github.com/monevo-app/monevo-api/internal/notification"
	"github.com/monevo-app/monevo-api/internal/onboarding"
	"github.com/monevo-app/monevo-api/internal/recurrence"
	"github.com/monevo-app/monevo-api/internal/transaction"
	"github.com/monevo-app/monevo-api/internal/user"
)

type Container struct {
	UserContainer         *user.UserContainer
	GoalContainer         *goal.Container
	CategoryContainer     *category.Container
	AccountContainer      *account.Container
	RecurrenceContainer   *recurrence.Container
	TransactionContainer  *transaction.Container
	InvoiceContainer      *invoice.Container
	OnboardingContainer   *onboarding.Container
	AssistantContainer    *assistant.Container
	NotificationContainer *notification.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&goal.Goal{},
		&category.Category{},
		&account.Account{},
		&recurrence.Recurrence{},
		&transaction.Transaction{},
		&onboarding.Profile{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	goalContainer := goal.NewContainer(config.DB)
	categoryContainer := category.NewContainer(config.DB)
	accountContainer := account.NewContainer(config.DB)
	recurrenceContainer := recurrence.NewContainer(config.DB)

	if err := category.Seed(context.Background(), categoryContainer.Repo); err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}

	transactionContainer := transaction.NewContainer(
		config.DB,
		goalContainer.Ledger,
		goalContainer.Repo,
		categoryContainer.Service,
		accountContainer.Repo,
	)
	invoiceContainer := invoice.NewContainer(accountContainer.Repo, transactionContainer.Repo)
	onboardingContainer := onboarding.NewContainer(config.DB, userContainer.Service)
	assistantContainer := assistant.NewContainer(
		context.Background(),
		goalContainer.Repo,
		accountContainer.Repo,
		transactionContainer.Repo,
	)
	notificationContainer := notification.NewContainer(
		config.DB,
		userContainer.Repo,
		onboardingContainer.Repo,
		transactionContainer.Repo,
	)

	return &Container{
		UserContainer:         userContainer,
		GoalContainer:         goalContainer,
		CategoryContainer:     categoryContainer,
		AccountContainer:      accountContainer,
		RecurrenceContainer:   recurrenceContainer,
		TransactionContainer:  transactionContainer,
		InvoiceContainer:      invoiceContainer,
		OnboardingContainer:   onboardingContainer,
		AssistantContainer:    assistantContainer,
		NotificationContainer: notificationContainer,
	}
}
