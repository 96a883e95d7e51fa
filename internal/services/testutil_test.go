package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/auth"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/config"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/paystack"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/storage"
)

func init() {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "application/pdf"}
	cfg.FrontendURL = "http://localhost:3000"
	config.AppConfig = cfg
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Talent{},
		&models.Client{},
		&models.Request{},
		&models.Payment{},
		&models.Ad{},
		&models.Contact{},
	)
	require.NoError(t, err)

	return db
}

// fakeGateway scripts provider responses per reference.
type fakeGateway struct {
	mu sync.Mutex

	initResult *paystack.Transaction
	initErr    error
	initCalls  int

	verifications map[string]*paystack.Verification
	verifyErr     error

	refundResult *paystack.Refund
	refundErr    error
	refundCalls  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		initResult: &paystack.Transaction{
			Reference:        "ref-test-001",
			AccessCode:       "access-001",
			AuthorizationURL: "https://checkout.paystack.test/access-001",
		},
		verifications: map[string]*paystack.Verification{},
		refundResult:  &paystack.Refund{Status: "processed", Currency: "NGN"},
	}
}

func (g *fakeGateway) InitializeTransaction(_ context.Context, _ string, _ float64, _ map[string]any) (*paystack.Transaction, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initCalls++
	if g.initErr != nil {
		return nil, g.initErr
	}
	// Vary the reference so repeated initializations do not collide.
	tx := *g.initResult
	tx.Reference = fmt.Sprintf("%s-%d", g.initResult.Reference, g.initCalls)
	return &tx, nil
}

func (g *fakeGateway) VerifyTransaction(_ context.Context, reference string) (*paystack.Verification, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	if v, ok := g.verifications[reference]; ok {
		return v, nil
	}
	return &paystack.Verification{Reference: reference, Status: "pending"}, nil
}

func (g *fakeGateway) CreateRefund(_ context.Context, _ string) (*paystack.Refund, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refundCalls++
	if g.refundErr != nil {
		return nil, g.refundErr
	}
	return g.refundResult, nil
}

func (g *fakeGateway) scriptVerification(reference, status string, amount float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.verifications[reference] = &paystack.Verification{
		Reference: reference,
		Status:    status,
		Amount:    amount,
		Channel:   "card",
	}
}

// nullProvider swallows outbound mail.
type nullProvider struct{}

func (nullProvider) Send(*email.Message) error { return nil }
func (nullProvider) Validate() error           { return nil }

type testEnv struct {
	db       *gorm.DB
	services *ServiceContainer
	gateway  *fakeGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	gateway := newFakeGateway()
	mailer := email.NewMailer(nullProvider{}, "http://localhost:3000", "admin@test.local", "arcon@test.local")

	store, err := storage.NewStorage(storage.Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)

	return &testEnv{
		db:       db,
		services: NewServiceContainer(db, gateway, mailer, store),
		gateway:  gateway,
	}
}

// setKnownToken swaps the stored set-password hash for one derived from a
// token the test controls.
func setKnownToken(t *testing.T, env *testEnv, user *models.User, raw string) {
	t.Helper()
	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("password_set_token", auth.HashToken(raw)).Error)
}

func createClientUser(t *testing.T, db *gorm.DB, emailAddr string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:           emailAddr,
		PasswordHash:    hash,
		Role:            models.UserRoleClient,
		IsEmailVerified: true,
		IsActive:        true,
	}
	require.NoError(t, db.Create(user).Error)

	client := &models.Client{
		UserID:      user.ID,
		CompanyName: "Acme Media",
		Industry:    "FMCG",
		Location:    "Lagos",
	}
	client.SetContactPerson(models.ContactPerson{Name: "Ada Obi", Email: emailAddr, Phone: "+2348000000000"})
	require.NoError(t, db.Create(client).Error)

	return user
}

func createTalentUser(t *testing.T, db *gorm.DB, emailAddr string, approved bool) (*models.User, *models.Talent) {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:           emailAddr,
		PasswordHash:    hash,
		Role:            models.UserRoleTalent,
		IsEmailVerified: true,
		IsActive:        true,
	}
	require.NoError(t, db.Create(user).Error)

	talent := &models.Talent{
		UserID:         user.ID,
		FirstName:      "Tola",
		LastName:       "Ade",
		Phone:          "+2348111111111",
		Location:       "Abuja",
		TalentCategory: "actor",
	}
	if approved {
		talent.ArconApprovalStatus = models.ApprovalStatusApproved
		talent.IsPubliclyVisible = true
	}
	require.NoError(t, db.Create(talent).Error)

	user.TalentCategory = talent.TalentCategory
	user.ApprovalStatus = talent.ArconApprovalStatus
	user.IsPubliclyVisible = talent.IsPubliclyVisible
	require.NoError(t, db.Save(user).Error)

	return user, talent
}

func createAcceptedRequest(t *testing.T, db *gorm.DB, clientUserID, talentUserID string) *models.Request {
	t.Helper()

	req := &models.Request{
		ClientUserID:       clientUserID,
		TalentUserID:       talentUserID,
		ProjectTitle:       "Soap commercial",
		ProjectDescription: "30 second TV spot",
		BudgetAmount:       250000,
		BudgetCurrency:     "NGN",
		Status:             models.RequestStatusAccepted,
	}
	require.NoError(t, db.Create(req).Error)
	return req
}

func createSuccessfulPayment(t *testing.T, db *gorm.DB, clientUserID, requestID, reference string) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		ClientUserID: clientUserID,
		RequestID:    &requestID,
		Amount:       250000,
		Currency:     "NGN",
		Gateway:      "paystack",
		Reference:    reference,
		Status:       models.PaymentStatusSuccess,
	}
	require.NoError(t, db.Create(payment).Error)
	return payment
}
