package policyconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/pkg/dbmetrics"
	"github.com/junhyeong9812/hexapass-sub002/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var selectColumns = []string{
	"id",
	"provider_id",
	"resource_id",
	"plan_name",
	"cancellation_policy",
	"plan_discount_rate",
	"min_price_for_discount",
	"max_discount_amount",
	"currency",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией ценовых политик
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую конфигурацию политики
func (r *Repository) Create(ctx context.Context, config *domain.ResourcePolicyConfig) (*domain.ResourcePolicyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resource_policy_config").
		Columns(
			"provider_id",
			"resource_id",
			"plan_name",
			"cancellation_policy",
			"plan_discount_rate",
			"min_price_for_discount",
			"max_discount_amount",
			"currency",
		).
		Values(
			config.ProviderID,
			config.ResourceID,
			config.PlanName,
			config.CancellationPolicy,
			config.PlanDiscountRate,
			config.MinPriceForDiscount,
			config.MaxDiscountAmount,
			config.Currency,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetByProviderResourceAndPlan получает конфигурацию для провайдера, ресурса и плана
// resourceID/planName равные nil означают запись уровня "для всех"
func (r *Repository) GetByProviderResourceAndPlan(ctx context.Context, providerID int64, resourceID *int64, planName *string) (*domain.ResourcePolicyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("resource_policy_config").
		Where(squirrel.Eq{"provider_id": providerID})

	if resourceID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *resourceID})
	}

	if planName == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"plan_name": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"plan_name": *planName})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderResourceAndPlan - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ResourcePolicyConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.ProviderID,
		&config.ResourceID,
		&config.PlanName,
		&config.CancellationPolicy,
		&config.PlanDiscountRate,
		&config.MinPriceForDiscount,
		&config.MaxDiscountAmount,
		&config.Currency,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderResourceAndPlan - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
// Приоритет применения конфигурации:
// 1. Конфигурация для конкретного плана на конкретном ресурсе (resourceID, planName)
// 2. Конфигурация для всех планов на конкретном ресурсе (resourceID, NULL)
// 3. Конфигурация для конкретного плана на всех ресурсах (NULL, planName)
// 4. Глобальная конфигурация провайдера (NULL, NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, providerID int64, resourceID *int64, planName *string) (*domain.ResourcePolicyConfig, error) {
	// 1. Конкретный план на конкретном ресурсе
	if resourceID != nil && planName != nil {
		config, err := r.GetByProviderResourceAndPlan(ctx, providerID, resourceID, planName)
		if err == nil {
			return config, nil
		}
		if err != ErrConfigNotFound {
			return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (resource+plan): %v", ErrExecQuery, err)
		}
	}

	// 2. Все планы на конкретном ресурсе
	if resourceID != nil {
		config, err := r.GetByProviderResourceAndPlan(ctx, providerID, resourceID, nil)
		if err == nil {
			return config, nil
		}
		if err != ErrConfigNotFound {
			return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (resource only): %v", ErrExecQuery, err)
		}
	}

	// 3. Конкретный план на всех ресурсах
	if planName != nil {
		config, err := r.GetByProviderResourceAndPlan(ctx, providerID, nil, planName)
		if err == nil {
			return config, nil
		}
		if err != ErrConfigNotFound {
			return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 3 (plan only): %v", ErrExecQuery, err)
		}
	}

	// 4. Глобальная конфигурация провайдера
	config, err := r.GetByProviderResourceAndPlan(ctx, providerID, nil, nil)
	if err == nil {
		return config, nil
	}
	if err != ErrConfigNotFound {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 4 (provider): %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}
