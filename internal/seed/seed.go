package seed

import (
	"context"
	"fmt"

	"fixitnow/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type CatalogStore interface {
	Upsert(ctx context.Context, c *domain.Category) error
}

type CustomerStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, c *domain.Customer) error
}

type ProviderStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, p *domain.Provider) error
}

// Catalog upserts every built-in category and returns how many were written.
func Catalog(ctx context.Context, store CatalogStore, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	for _, c := range Categories {
		row := c
		row.Subservices = append([]domain.CatalogSubservice(nil), c.Subservices...)
		if err := store.Upsert(ctx, &row); err != nil {
			return 0, fmt.Errorf("upsert category %q: %w", c.Name, err)
		}
		log.Debug("category seeded", zap.String("name", row.Name), zap.Int("subservices", len(row.Subservices)))
	}
	return len(Categories), nil
}

// DemoCustomers and DemoProviders are sample accounts; all share the password given to Demo.
var DemoCustomers = []domain.Customer{
	{Name: "Asha Rao", Email: "asha@demo.fixitnow.local", Phone: "+91 98450 00001", Address: "12 MG Road, Bengaluru"},
	{Name: "Vikram Shah", Email: "vikram@demo.fixitnow.local", Phone: "+91 98450 00002", Address: "4 Park Street, Kolkata"},
}

var DemoProviders = []domain.Provider{
	{
		Name: "Bob Pipes", Email: "bob@demo.fixitnow.local", Phone: "+91 98450 10001",
		Experience: "8 years of residential plumbing",
		Services: []domain.Offering{{Category: "Plumber", Subservices: []domain.OfferedSubservice{
			{Name: "Leakage Repair", Price: 150}, {Name: "Tap Installation", Price: 180}, {Name: "Drain Unclogging", Price: 200},
		}}},
	},
	{
		Name: "Meera Volt", Email: "meera@demo.fixitnow.local", Phone: "+91 98450 10002",
		Experience: "Licensed electrician",
		Services: []domain.Offering{
			{Category: "Electrician", Subservices: []domain.OfferedSubservice{{Name: "Fan Repair", Price: 250}, {Name: "Wiring", Price: 650}}},
			{Category: "Appliance Repair", Subservices: []domain.OfferedSubservice{{Name: "Geyser Repair", Price: 420}}},
		},
	},
	{
		Name: "Ravi Brush", Email: "ravi@demo.fixitnow.local",
		Services: []domain.Offering{{Category: "Painter", Subservices: []domain.OfferedSubservice{
			{Name: "Wall Painting", Price: 550}, {Name: "Wood Polish", Price: 700},
		}}},
	},
}

// Demo creates the sample accounts that do not exist yet. It returns the number created.
func Demo(ctx context.Context, customers CustomerStore, providers ProviderStore, password string, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(password) < 6 {
		return 0, fmt.Errorf("demo password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	created := 0
	for _, c := range DemoCustomers {
		exists, err := customers.ExistsByEmail(ctx, c.Email)
		if err != nil {
			return created, err
		}
		if exists {
			log.Info("customer exists, skipping", zap.String("email", c.Email))
			continue
		}
		row := c
		row.PasswordHash = string(hash)
		if err := customers.Create(ctx, &row); err != nil {
			return created, fmt.Errorf("create customer %s: %w", c.Email, err)
		}
		created++
		log.Info("customer created", zap.String("email", row.Email), zap.String("id", row.ID))
	}

	for _, p := range DemoProviders {
		exists, err := providers.ExistsByEmail(ctx, p.Email)
		if err != nil {
			return created, err
		}
		if exists {
			log.Info("provider exists, skipping", zap.String("email", p.Email))
			continue
		}
		row := p
		row.PasswordHash = string(hash)
		row.Services = append([]domain.Offering(nil), p.Services...)
		if err := providers.Create(ctx, &row); err != nil {
			return created, fmt.Errorf("create provider %s: %w", p.Email, err)
		}
		created++
		log.Info("provider created", zap.String("email", row.Email), zap.String("id", row.ID))
	}
	return created, nil
}
