package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/huxiang/dto"
)

// listSpec describes how a ListFilter applies to one entity table.
type listSpec struct {
	// searchColumns are OR-ed together for the text search
	searchColumns []string
	// typeColumn is empty when the entity has no type filter
	typeColumn string
	order      []string
	preloads   []string
}

// findPage runs the filtered count and the bounded select for one listing.
// The count and the page share the same WHERE clause so totals stay consistent across pages.
func findPage[T any](ctx context.Context, db *gorm.DB, f dto.ListFilter, spec listSpec) ([]T, int64, error) {
	var model T
	base := filterScope(f, spec)(db.WithContext(ctx).Model(&model)).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	items := make([]T, 0, f.PerPage)
	if off := f.Offset(); off < 0 || int64(off) >= total {
		return items, total, nil
	}

	q := base
	for _, o := range spec.order {
		q = q.Order(o)
	}
	for _, p := range spec.preloads {
		q = q.Preload(p)
	}
	if err := q.Offset(f.Offset()).Limit(f.PerPage).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("select page: %w", err)
	}
	return items, total, nil
}

func filterScope(f dto.ListFilter, spec listSpec) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.Type != "" && spec.typeColumn != "" {
			db = db.Where(spec.typeColumn+" = ?", f.Type)
		}
		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Search != "" && len(spec.searchColumns) > 0 {
			expr := containsExpr(db.Dialector.Name())
			cond := db.Session(&gorm.Session{NewDB: true})
			for i, col := range spec.searchColumns {
				if i == 0 {
					cond = cond.Where(fmt.Sprintf(expr, col), f.Search)
				} else {
					cond = cond.Or(fmt.Sprintf(expr, col), f.Search)
				}
			}
			db = db.Where(cond)
		}
		return db
	}
}

// containsExpr returns a case-sensitive substring predicate for the dialect.
// LIKE is avoided because its case sensitivity depends on the column collation.
func containsExpr(dialect string) string {
	switch dialect {
	case "mysql":
		return "INSTR(BINARY %s, ?) > 0"
	case "postgres":
		return "STRPOS(%s, ?) > 0"
	default:
		return "INSTR(%s, ?) > 0"
	}
}

// resourceOrder returns the ORDER BY terms for a resource sort; every order ends with the
// newest-first key and id as tie-break so pages never overlap.
func resourceOrder(sort string) []string {
	switch sort {
	case dto.SortPopular:
		return []string{"view_count DESC", "created_at DESC", "id DESC"}
	case dto.SortPriority:
		return []string{"priority DESC", "created_at DESC", "id DESC"}
	default:
		return []string{"created_at DESC", "id DESC"}
	}
}
