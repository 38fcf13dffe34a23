package repository

import (
	"context"
	"strings"
	"time"

	"fixitnow/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

type requestModel struct {
	ID           string     `gorm:"column:id;primaryKey;size:36"`
	CustomerID   string     `gorm:"column:customer_id;size:36;not null;index:idx_requests_customer"`
	ProviderID   string     `gorm:"column:provider_id;size:36;not null;index:idx_requests_provider"`
	Service      string     `gorm:"column:service;not null"`
	Subservice   string     `gorm:"column:subservice"`
	Address      string     `gorm:"column:address"`
	Description  string     `gorm:"column:description;type:text"`
	Status       string     `gorm:"column:status;not null;index:idx_requests_status"`
	ScheduledFor *time.Time `gorm:"column:scheduled_for"`
	AcceptedAt   *time.Time `gorm:"column:accepted_at"`
	DeclinedAt   *time.Time `gorm:"column:declined_at"`
	CancelReason *string    `gorm:"column:cancel_reason"`
	CreatedAt    time.Time  `gorm:"column:created_at;index:idx_requests_created"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (requestModel) TableName() string { return "requests" }

// requestRow is a joined read. The model is a named embedded field: gorm ignores
// anonymous fields of unexported types.
type requestRow struct {
	Request      requestModel `gorm:"embedded"`
	ProviderName *string      `gorm:"column:provider_name"`
	CustomerName *string      `gorm:"column:customer_name"`
}

// RequestFilter narrows List. Empty fields do not filter.
type RequestFilter struct {
	CustomerID string
	ProviderID string
	Statuses   []domain.RequestStatus
	Query      string
}

func toDomainRequest(m requestModel) *domain.Request {
	return &domain.Request{
		ID:           m.ID,
		CustomerID:   m.CustomerID,
		ProviderID:   m.ProviderID,
		Service:      m.Service,
		Subservice:   m.Subservice,
		Address:      m.Address,
		Description:  m.Description,
		Status:       domain.RequestStatus(m.Status),
		ScheduledFor: m.ScheduledFor,
		AcceptedAt:   m.AcceptedAt,
		DeclinedAt:   m.DeclinedAt,
		CancelReason: derefString(m.CancelReason),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRequestModel(r *domain.Request) requestModel {
	status := r.Status
	if status == "" {
		status = domain.RequestPending
	}
	return requestModel{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		ProviderID:   r.ProviderID,
		Service:      strings.TrimSpace(r.Service),
		Subservice:   strings.TrimSpace(r.Subservice),
		Address:      strings.TrimSpace(r.Address),
		Description:  r.Description,
		Status:       string(status),
		ScheduledFor: r.ScheduledFor,
		AcceptedAt:   r.AcceptedAt,
		DeclinedAt:   r.DeclinedAt,
		CancelReason: nullableString(r.CancelReason),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toRequestDetails(row requestRow) domain.RequestDetails {
	return domain.RequestDetails{
		Request:      *toDomainRequest(row.Request),
		ProviderName: derefString(row.ProviderName),
		UserName:     derefString(row.CustomerName),
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	m := toRequestModel(req)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*req = *toDomainRequest(m)
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	var m requestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainRequest(m), nil
}

func (r *RequestRepository) GetDetails(ctx context.Context, id string) (*domain.RequestDetails, error) {
	var rows []requestRow
	if err := r.joined(ctx).Where("requests.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	d := toRequestDetails(rows[0])
	return &d, nil
}

// List returns matching requests newest first. Query is a literal, case-insensitive
// substring matched against service, subservice, address, both party names and the id.
func (r *RequestRepository) List(ctx context.Context, f RequestFilter) ([]domain.RequestDetails, error) {
	q := r.joined(ctx)
	if f.CustomerID != "" {
		q = q.Where("requests.customer_id = ?", f.CustomerID)
	}
	if f.ProviderID != "" {
		q = q.Where("requests.provider_id = ?", f.ProviderID)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where("requests.status IN ?", statuses)
	}
	if strings.TrimSpace(f.Query) != "" {
		p := likePattern(f.Query)
		q = q.Where(
			`(LOWER(requests.service) LIKE ? ESCAPE '\' OR LOWER(requests.subservice) LIKE ? ESCAPE '\' OR `+
				`LOWER(requests.address) LIKE ? ESCAPE '\' OR LOWER(providers.name) LIKE ? ESCAPE '\' OR `+
				`LOWER(customers.name) LIKE ? ESCAPE '\' OR LOWER(requests.id) LIKE ? ESCAPE '\')`,
			p, p, p, p, p, p,
		)
	}

	var rows []requestRow
	if err := q.Order("requests.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.RequestDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRequestDetails(row))
	}
	return out, nil
}

// RecentDecisions returns the customer's Accepted or Declined requests, most recently updated first.
func (r *RequestRepository) RecentDecisions(ctx context.Context, customerID string, limit int) ([]domain.RequestDetails, error) {
	var rows []requestRow
	err := r.joined(ctx).
		Where("requests.customer_id = ?", customerID).
		Where("requests.status IN ?", []string{string(domain.RequestAccepted), string(domain.RequestDeclined)}).
		Order("requests.updated_at DESC").
		Order("requests.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.RequestDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRequestDetails(row))
	}
	return out, nil
}

// UpdateStatusIf applies updates only while the row is in one of the from statuses.
// It reports false when no row matched, either because the id is unknown or the status moved.
func (r *RequestRepository) UpdateStatusIf(ctx context.Context, id string, from []domain.RequestStatus, updates map[string]any) (bool, error) {
	statuses := make([]string, 0, len(from))
	for _, s := range from {
		statuses = append(statuses, string(s))
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now().UTC()
	}
	tx := r.db.WithContext(ctx).
		Model(&requestModel{}).
		Where("id = ? AND status IN ?", id, statuses).
		UpdateColumns(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *RequestRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("requests").
		Select("requests.*, providers.name AS provider_name, customers.name AS customer_name").
		Joins("LEFT JOIN providers ON providers.id = requests.provider_id").
		Joins("LEFT JOIN customers ON customers.id = requests.customer_id")
}
