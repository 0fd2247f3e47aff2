package service

import (
	"errors" // Error kind checks
	"fmt"    // Error wrapping

	"finance_tracker/internal/domain" // Domain models and error kinds

	"gorm.io/gorm" // GORM ORM library
)

// CreateCategoryInput carries the fields of a new category
type CreateCategoryInput struct {
	Name        string // Unique category name
	Description string // Optional description
}

// UpdateCategoryInput is a partial update: only non-nil fields are applied
type UpdateCategoryInput struct {
	Name        *string // Unique category name
	Description *string // Optional description
}

// ListCategories returns one page of categories ordered by ascending id,
// optionally filtered by a substring match on the name.
func ListCategories(db *gorm.DB, page, limit int, search string) ([]domain.Category, error) {
	offset, size := paginate(page, limit)
	var categories []domain.Category
	q := db.Order("id asc").Offset(offset).Limit(size)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches a category by id
func GetCategory(db *gorm.DB, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a new category. A name collision yields
// ErrDuplicateKey and leaves the existing row untouched.
func CreateCategory(db *gorm.DB, in CreateCategoryInput) (*domain.Category, error) {
	category := domain.Category{
		Name:        in.Name,        // Unique category name
		Description: in.Description, // Optional description
	}
	if err := db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category with this name already exists", domain.ErrDuplicateKey)
		}
		return nil, err
	}
	return &category, nil
}

// UpdateCategory applies the set fields of a partial update
func UpdateCategory(db *gorm.DB, id uint, in UpdateCategoryInput) (*domain.Category, error) {
	category, err := GetCategory(db, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if len(updates) == 0 {
		return category, nil // Nothing to apply
	}
	if err := db.Model(category).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category with this name already exists", domain.ErrDuplicateKey)
		}
		return nil, translateWriteError(err)
	}
	return GetCategory(db, id)
}

// DeleteCategory removes a category. Dependent transactions and budgets
// are removed by the foreign key cascade.
func DeleteCategory(db *gorm.DB, id uint) (*domain.Category, error) {
	category, err := GetCategory(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(category).Error; err != nil {
		return nil, translateWriteError(err)
	}
	return category, nil
}
