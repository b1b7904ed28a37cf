package staffing

import (
	"gorm.io/gorm"

	types "github.com/yungbote/workload-backend/internal/domain/staffing"
	"github.com/yungbote/workload-backend/internal/platform/dbctx"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

type EmployeeRepo interface {
	Create(dbc dbctx.Context, employees []*types.Employee) ([]*types.Employee, error)
	GetByName(dbc dbctx.Context, name string) (*types.Employee, error)
	List(dbc dbctx.Context) ([]*types.Employee, error)
}

type employeeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return &employeeRepo{db: db, log: baseLog.With("repo", "EmployeeRepo")}
}

func (r *employeeRepo) Create(dbc dbctx.Context, employees []*types.Employee) ([]*types.Employee, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(employees) == 0 {
		return []*types.Employee{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Omit("Workloads").Create(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) GetByName(dbc dbctx.Context, name string) (*types.Employee, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Employee
	if err := transaction.WithContext(dbc.Ctx).
		Where("name = ?", name).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *employeeRepo) List(dbc dbctx.Context) ([]*types.Employee, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Employee
	if err := transaction.WithContext(dbc.Ctx).
		Preload("Workloads").
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
