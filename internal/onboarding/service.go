package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/goal"
	"github.com/monevo-app/monevo-api/internal/money"
	"github.com/monevo-app/monevo-api/internal/user"
	util "github.com/monevo-app/monevo-api/internal/utils"
)

var (
	ErrProfileNotFound = errors.New("onboarding profile not found")
	ErrAlreadyDone     = errors.New("onboarding already completed")
	ErrInvalidBudget   = errors.New("invalid budget value")
)

type Service interface {
	Complete(ctx context.Context, dto CompleteOnboardingDTO) (*CompleteOnboardingResponse, error)
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, userID uuid.UUID, dto UpdateOnboardingDTO) (*Profile, error)
}

type service struct {
	db    *gorm.DB
	repo  Repository
	users user.UserService
}

func NewService(db *gorm.DB, repo Repository, users user.UserService) Service {
	return &service{db: db, repo: repo, users: users}
}

// Complete runs the whole wizard in one shot: registers the user, then seeds
// the initial account, the goals and the budget inside a single database
// transaction. The session returned lets the frontend skip the login screen.
func (s *service) Complete(ctx context.Context, dto CompleteOnboardingDTO) (*CompleteOnboardingResponse, error) {
	log := config.WithContext(ctx)

	budget, err := parseBudget(dto.Budget)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.Register(ctx, user.RegisterDTO{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: dto.Password,
	}); err != nil {
		return nil, err
	}

	session, err := s.users.Login(ctx, user.LoginDTO{Email: dto.Email, Password: dto.Password})
	if err != nil {
		return nil, err
	}
	userID := session.User.ID

	if dto.Age != nil || dto.Profession != nil || dto.MaritalStatus != nil {
		if _, err := s.users.UpdateProfile(ctx, userID.String(), user.UpdateProfileDTO{
			Age:           dto.Age,
			Profession:    dto.Profession,
			MaritalStatus: dto.MaritalStatus,
		}); err != nil {
			return nil, err
		}
	}

	profile := &Profile{UserID: userID}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if dto.InitialAccount != nil {
			a, err := buildInitialAccount(userID, *dto.InitialAccount)
			if err != nil {
				return err
			}
			if err := s.repo.SeedAccountTx(tx, a); err != nil {
				return err
			}
		}

		for _, wizardGoal := range dto.Goals {
			g, err := buildWizardGoal(userID, wizardGoal)
			if err != nil {
				return err
			}
			if err := s.repo.SeedGoalTx(tx, g); err != nil {
				return err
			}
		}

		steps, err := json.Marshal(dto)
		if err != nil {
			return err
		}
		budgetJSON, err := json.Marshal(budget)
		if err != nil {
			return err
		}
		now := time.Now()
		profile.Steps = steps
		profile.Budget = budgetJSON
		profile.CompletedAt = &now
		return s.repo.CreateProfileTx(tx, profile)
	})
	if err != nil {
		log.WithError(err).Error("Failed to complete onboarding")
		return nil, err
	}

	log.WithField("user_id", userID).Info("Onboarding completed")
	return &CompleteOnboardingResponse{Session: session, Profile: profile}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, dto UpdateOnboardingDTO) (*Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if dto.Steps != nil {
		steps, err := json.Marshal(dto.Steps)
		if err != nil {
			return nil, err
		}
		p.Steps = steps
	}
	if dto.Budget != nil {
		budget, err := parseBudget(dto.Budget)
		if err != nil {
			return nil, err
		}
		budgetJSON, err := json.Marshal(budget)
		if err != nil {
			return nil, err
		}
		p.Budget = budgetJSON
	}

	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func parseBudget(raw map[string]string) (map[string]decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	budget := make(map[string]decimal.Decimal, len(raw))
	for key, value := range raw {
		amount, err := money.ParseBRL(value)
		if err != nil {
			return nil, ErrInvalidBudget
		}
		budget[key] = amount
	}
	return budget, nil
}

func buildInitialAccount(userID uuid.UUID, dto InitialAccountDTO) (*account.Account, error) {
	balance := decimal.Zero
	if dto.CurrentBalance != "" {
		parsed, err := money.ParseBRL(dto.CurrentBalance)
		if err != nil {
			return nil, err
		}
		balance = parsed
	}

	accountType := account.AccountType(dto.Type)
	if !accountType.IsValid() {
		accountType = account.TypeBank
	}
	name := dto.Name
	if name == "" {
		name = "Conta principal"
	}

	return &account.Account{
		UserID:       userID,
		Type:         accountType,
		Name:         name,
		BalanceCache: balance,
	}, nil
}

func buildWizardGoal(userID uuid.UUID, dto GoalWizardDTO) (*goal.Goal, error) {
	target, err := money.ParseBRL(dto.TargetAmount)
	if err != nil {
		return nil, err
	}

	g := &goal.Goal{
		UserID:        userID,
		Title:         dto.Title,
		Category:      dto.Category,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Status:        goal.GoalStatusActive,
	}
	if dto.Months > 0 {
		deadline := util.LocalDate{Time: time.Now().AddDate(0, dto.Months, 0)}
		g.Deadline = &deadline
	}
	return g, nil
}
