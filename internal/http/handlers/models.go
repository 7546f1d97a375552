// Входные/выходные модели под REST, зеркалят доменные типы.
// Деньги сериализуются строками ("123.45"), даты операций — как
// календарные даты YYYY-MM-DD, технические метки времени — RFC3339.
package handlers

import (
	"strconv"
	"time"

	"github.com/avoronova/go-fintrack/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// apiDate — календарная дата на проводе (YYYY-MM-DD).
type apiDate time.Time

func (d apiDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(d).Format(dateLayout))), nil
}

func (d *apiDate) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}

	*d = apiDate(t)
	return nil
}

func dateFromModel(t time.Time) apiDate { return apiDate(t) }

func datePtrFromModel(t *time.Time) *apiDate {
	if t == nil {
		return nil
	}
	d := apiDate(*t)
	return &d
}

func timePtrFromAPI(d *apiDate) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type updateThemeRequest struct {
	ThemePreference string `json:"theme_preference"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type userResponse struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ThemePreference string    `json:"theme_preference"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type authResponse struct {
	User            userResponse `json:"user"`
	AccessToken     string       `json:"access_token"`
	RefreshToken    string       `json:"refresh_token"`
	AccessExpiresAt int64        `json:"access_expires_at"` // Unix UTC
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createTransactionRequest struct {
	CategoryID         uuid.UUID       `json:"category_id"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type"`
	Description        string          `json:"description"`
	Date               apiDate         `json:"date"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurringFrequency *string         `json:"recurring_frequency"`
	RecurringEndDate   *apiDate        `json:"recurring_end_date"`
}

type updateTransactionRequest struct {
	CategoryID         *uuid.UUID       `json:"category_id"`
	Amount             *decimal.Decimal `json:"amount"`
	Type               *string          `json:"type"`
	Description        *string          `json:"description"`
	Date               *apiDate         `json:"date"`
	IsRecurring        *bool            `json:"is_recurring"`
	RecurringFrequency *string          `json:"recurring_frequency"`
	RecurringEndDate   *apiDate         `json:"recurring_end_date"`
}

type transactionResponse struct {
	ID                 uuid.UUID         `json:"id"`
	UserID             uuid.UUID         `json:"user_id"`
	CategoryID         uuid.UUID         `json:"category_id"`
	Amount             decimal.Decimal   `json:"amount"`
	Type               string            `json:"type"`
	Description        string            `json:"description"`
	Date               apiDate           `json:"date"`
	IsRecurring        bool              `json:"is_recurring"`
	RecurringFrequency *string           `json:"recurring_frequency,omitempty"`
	RecurringEndDate   *apiDate          `json:"recurring_end_date,omitempty"`
	Category           *categoryResponse `json:"category,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type transactionPageResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PerPage      int                   `json:"per_page"`
	Pages        int                   `json:"pages"`
}

type createBudgetRequest struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
}

type updateBudgetRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Period *string          `json:"period"`
}

type budgetResponse struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	CategoryID uuid.UUID         `json:"category_id"`
	Amount     decimal.Decimal   `json:"amount"`
	Period     string            `json:"period"`
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	Spent      decimal.Decimal   `json:"spent"`
	Remaining  decimal.Decimal   `json:"remaining"`
	Percentage float64           `json:"percentage"`
	Category   *categoryResponse `json:"category,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type createGoalRequest struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    *apiDate        `json:"target_date"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	Status        string          `json:"status"`
}

type updateGoalRequest struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	TargetDate    *apiDate         `json:"target_date"`
	Icon          *string          `json:"icon"`
	Color         *string          `json:"color"`
	Status        *string          `json:"status"`
}

type contributeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type goalResponse struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	Name               string          `json:"name"`
	TargetAmount       decimal.Decimal `json:"target_amount"`
	CurrentAmount      decimal.Decimal `json:"current_amount"`
	TargetDate         *apiDate        `json:"target_date,omitempty"`
	Icon               string          `json:"icon"`
	Color              string          `json:"color"`
	Status             string          `json:"status"`
	ProgressPercentage float64         `json:"progress_percentage"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type summaryResponse struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetBalance       decimal.Decimal `json:"net_balance"`
	SavingsRate      float64         `json:"savings_rate"`
	TransactionCount int64           `json:"transaction_count"`
	IncomeCount      int64           `json:"income_count"`
	ExpenseCount     int64           `json:"expense_count"`
	Period           string          `json:"period"` // YYYY-MM
}

type categorySpendingResponse struct {
	CategoryID       uuid.UUID       `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	CategoryIcon     string          `json:"category_icon"`
	CategoryColor    string          `json:"category_color"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int64           `json:"transaction_count"`
	Percentage       float64         `json:"percentage"`
}

type trendPointResponse struct {
	Date    string          `json:"date"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

func userFromModel(u *models.User) userResponse {
	return userResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		ThemePreference: string(u.ThemePreference),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func authFromModel(u *models.User, tp *models.TokenPair) authResponse {
	return authResponse{
		User:            userFromModel(u),
		AccessToken:     tp.AccessToken,
		RefreshToken:    tp.RefreshToken,
		AccessExpiresAt: tp.ExpiresAt.UTC().Unix(),
	}
}

func categoryFromModel(c *models.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      string(c.Type),
		Icon:      c.Icon,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func categoriesFromModel(cats []models.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, categoryFromModel(&cats[i]))
	}
	return out
}

func transactionFromModel(t *models.Transaction) transactionResponse {
	out := transactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		Date:        dateFromModel(t.Date),
		IsRecurring: t.IsRecurring,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.RecurringFrequency != nil {
		freq := string(*t.RecurringFrequency)
		out.RecurringFrequency = &freq
	}
	out.RecurringEndDate = datePtrFromModel(t.RecurringEndDate)

	if t.Category != nil {
		cat := categoryFromModel(t.Category)
		out.Category = &cat
	}

	return out
}

func pageFromModel(p *models.TransactionPage) transactionPageResponse {
	out := transactionPageResponse{
		Transactions: make([]transactionResponse, 0, len(p.Transactions)),
		Total:        p.Total,
		Page:         p.Page,
		PerPage:      p.PerPage,
		Pages:        p.Pages,
	}
	for i := range p.Transactions {
		out.Transactions = append(out.Transactions, transactionFromModel(&p.Transactions[i]))
	}
	return out
}

func budgetFromModel(bp *models.BudgetProgress) budgetResponse {
	out := budgetResponse{
		ID:         bp.Budget.ID,
		UserID:     bp.Budget.UserID,
		CategoryID: bp.Budget.CategoryID,
		Amount:     bp.Budget.Amount,
		Period:     string(bp.Budget.Period),
		Month:      bp.Budget.Month,
		Year:       bp.Budget.Year,
		Spent:      bp.Spent,
		Remaining:  bp.Remaining,
		Percentage: bp.Percentage,
		CreatedAt:  bp.Budget.CreatedAt,
		UpdatedAt:  bp.Budget.UpdatedAt,
	}

	if bp.Budget.Category != nil {
		cat := categoryFromModel(bp.Budget.Category)
		out.Category = &cat
	}

	return out
}

func budgetsFromModel(bps []models.BudgetProgress) []budgetResponse {
	out := make([]budgetResponse, 0, len(bps))
	for i := range bps {
		out = append(out, budgetFromModel(&bps[i]))
	}
	return out
}

func goalFromModel(g *models.SavingsGoal) goalResponse {
	return goalResponse{
		ID:                 g.ID,
		UserID:             g.UserID,
		Name:               g.Name,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		TargetDate:         datePtrFromModel(g.TargetDate),
		Icon:               g.Icon,
		Color:              g.Color,
		Status:             string(g.Status),
		ProgressPercentage: g.ProgressPercentage(),
		RemainingAmount:    g.RemainingAmount(),
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

func goalsFromModel(goals []models.SavingsGoal) []goalResponse {
	out := make([]goalResponse, 0, len(goals))
	for i := range goals {
		out = append(out, goalFromModel(&goals[i]))
	}
	return out
}

func summaryFromModel(s *models.Summary) summaryResponse {
	return summaryResponse{
		TotalIncome:      s.TotalIncome,
		TotalExpenses:    s.TotalExpenses,
		NetBalance:       s.NetBalance,
		SavingsRate:      s.SavingsRate,
		TransactionCount: s.TransactionCount,
		IncomeCount:      s.IncomeCount,
		ExpenseCount:     s.ExpenseCount,
		Period:           s.PeriodStart.Format("2006-01"),
	}
}

func spendingFromModel(items []models.CategorySpending) []categorySpendingResponse {
	out := make([]categorySpendingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, categorySpendingResponse{
			CategoryID:       it.CategoryID,
			CategoryName:     it.Name,
			CategoryIcon:     it.Icon,
			CategoryColor:    it.Color,
			TotalAmount:      it.Amount,
			TransactionCount: it.Count,
			Percentage:       it.Percentage,
		})
	}
	return out
}

func trendsFromModel(points []models.TrendPoint) []trendPointResponse {
	out := make([]trendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, trendPointResponse{
			Date:    p.Date.Format("2006-01"),
			Income:  p.Income,
			Expense: p.Expense,
			Net:     p.Net,
		})
	}
	return out
}
