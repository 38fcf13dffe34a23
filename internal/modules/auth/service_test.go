package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fixitnow/internal/domain"
	"fixitnow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock Customer Repository implementing the interface
type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil && c.ID == "" {
		c.ID = "cust-1"
	}
	return args.Error(0)
}

func (m *mockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepo) UpdateProfile(ctx context.Context, id string, name, phone, address *string) (*domain.Customer, error) {
	args := m.Called(ctx, id, name, phone, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// Mock Provider Repository
type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) Create(ctx context.Context, p *domain.Provider) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil && p.ID == "" {
		p.ID = "prov-1"
	}
	return args.Error(0)
}

func (m *mockProviderRepo) GetByEmail(ctx context.Context, email string) (*domain.Provider, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *mockProviderRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID string, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func hashed(t *testing.T, raw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_RegisterCustomer_Success(t *testing.T) {
	customers := new(mockCustomerRepo)
	jwtSvc := new(mockJWTService)

	customers.On("ExistsByEmail", mock.Anything, "test@example.com").Return(false, nil)
	customers.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.PasswordHash != "" && c.PasswordHash != "secret1" && c.Role == domain.RoleUser
	})).Return(nil)
	jwtSvc.On("GenerateToken", "cust-1", "user").Return("fake-jwt-token", nil)

	svc := NewService(customers, new(mockProviderRepo), jwtSvc)
	res, err := svc.RegisterCustomer(context.Background(), RegisterCustomerRequest{
		Name: "Test", Email: "test@example.com", Password: "secret1", Phone: "555", Address: "1 Main St",
	})

	require.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", res.Token)
	user := res.User.(*domain.Customer)
	assert.Equal(t, "cust-1", user.ID)
	assert.Empty(t, user.PasswordHash)
	customers.AssertExpectations(t)
	jwtSvc.AssertExpectations(t)
}

func TestService_RegisterCustomer_DuplicateEmail(t *testing.T) {
	customers := new(mockCustomerRepo)
	customers.On("ExistsByEmail", mock.Anything, "dup@example.com").Return(true, nil)

	svc := NewService(customers, new(mockProviderRepo), new(mockJWTService))
	_, err := svc.RegisterCustomer(context.Background(), RegisterCustomerRequest{Name: "A", Email: "dup@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_RegisterCustomer_RaceOnUniqueIndex(t *testing.T) {
	customers := new(mockCustomerRepo)
	customers.On("ExistsByEmail", mock.Anything, "race@example.com").Return(false, nil)
	customers.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	svc := NewService(customers, new(mockProviderRepo), new(mockJWTService))
	_, err := svc.RegisterCustomer(context.Background(), RegisterCustomerRequest{Name: "A", Email: "race@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_RegisterProvider_Success(t *testing.T) {
	providers := new(mockProviderRepo)
	providers.On("ExistsByEmail", mock.Anything, "pro@example.com").Return(false, nil)
	providers.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(new(mockCustomerRepo), providers, new(mockJWTService))
	p, err := svc.RegisterProvider(context.Background(), RegisterProviderRequest{
		Name: "Bob", Email: "pro@example.com", Password: "secret1",
		Services: []domain.Offering{{Category: "Plumber"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "prov-1", p.ID)
	assert.Equal(t, domain.RoleProvider, p.Role)
	assert.Empty(t, p.PasswordHash)
}

func TestService_Login_CustomerFirst(t *testing.T) {
	customers := new(mockCustomerRepo)
	providers := new(mockProviderRepo)
	jwtSvc := new(mockJWTService)

	customers.On("GetByEmail", mock.Anything, "a@example.com").Return(&domain.Customer{
		ID: "cust-1", Email: "a@example.com", PasswordHash: hashed(t, "secret1"), Role: domain.RoleUser,
	}, nil)
	jwtSvc.On("GenerateToken", "cust-1", "user").Return("tok", nil)

	svc := NewService(customers, providers, jwtSvc)
	res, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "secret1"}, KindCustomer, KindProvider)

	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	providers.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "$2a$")
	assert.NotContains(t, string(body), "password")
}

func TestService_Login_FallsBackToProvider(t *testing.T) {
	customers := new(mockCustomerRepo)
	providers := new(mockProviderRepo)
	jwtSvc := new(mockJWTService)

	customers.On("GetByEmail", mock.Anything, "p@example.com").Return(nil, gorm.ErrRecordNotFound)
	providers.On("GetByEmail", mock.Anything, "p@example.com").Return(&domain.Provider{
		ID: "prov-1", Email: "p@example.com", PasswordHash: hashed(t, "secret1"),
	}, nil)
	jwtSvc.On("GenerateToken", "prov-1", "provider").Return("tok", nil)

	svc := NewService(customers, providers, jwtSvc)
	res, err := svc.Login(context.Background(), LoginRequest{Email: "p@example.com", Password: "secret1"}, KindCustomer, KindProvider)

	require.NoError(t, err)
	p := res.User.(*domain.Provider)
	assert.Equal(t, domain.RoleProvider, p.Role)
	assert.Empty(t, p.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	customers := new(mockCustomerRepo)
	providers := new(mockProviderRepo)

	customers.On("GetByEmail", mock.Anything, "a@example.com").Return(&domain.Customer{
		ID: "cust-1", PasswordHash: hashed(t, "secret1"), Role: domain.RoleUser,
	}, nil)
	providers.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(customers, providers, new(mockJWTService))
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "wrong"}, KindCustomer, KindProvider)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ProviderLogin_IgnoresCustomers(t *testing.T) {
	customers := new(mockCustomerRepo)
	providers := new(mockProviderRepo)
	providers.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(customers, providers, new(mockJWTService))
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "secret1"}, KindProvider)

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	customers.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestService_Login_StorageError(t *testing.T) {
	customers := new(mockCustomerRepo)
	customers.On("GetByEmail", mock.Anything, "a@example.com").Return(nil, errors.New("db down"))

	svc := NewService(customers, new(mockProviderRepo), new(mockJWTService))
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "x"}, KindCustomer)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_UpdateCustomer(t *testing.T) {
	customers := new(mockCustomerRepo)
	phone := "999"
	customers.On("UpdateProfile", mock.Anything, "cust-1", (*string)(nil), &phone, (*string)(nil)).
		Return(&domain.Customer{ID: "cust-1", Phone: "999", PasswordHash: "digest"}, nil)
	customers.On("UpdateProfile", mock.Anything, "missing", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(customers, new(mockProviderRepo), new(mockJWTService))

	got, err := svc.UpdateCustomer(context.Background(), "cust-1", UpdateCustomerRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "999", got.Phone)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.UpdateCustomer(context.Background(), "missing", UpdateCustomerRequest{Phone: &phone})
	assert.ErrorIs(t, err, ErrNotFound)
}
