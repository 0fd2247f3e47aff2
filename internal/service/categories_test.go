package service

import (
	"errors"
	"fmt"
	"testing"

	"finance_tracker/internal/domain"
)

func TestCategoryCRUD(t *testing.T) {
	db := testDB(t)

	category, err := CreateCategory(db, CreateCategoryInput{Name: "Groceries", Description: "Food and household"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	t.Run("get by id", func(t *testing.T) {
		got, err := GetCategory(db, category.ID)
		if err != nil {
			t.Fatalf("GetCategory: %v", err)
		}
		if got.Name != "Groceries" {
			t.Errorf("name = %q, want Groceries", got.Name)
		}
	})

	t.Run("get missing id", func(t *testing.T) {
		if _, err := GetCategory(db, 9999); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetCategory(9999) = %v, want ErrNotFound", err)
		}
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		name := "Food"
		got, err := UpdateCategory(db, category.ID, UpdateCategoryInput{Name: &name})
		if err != nil {
			t.Fatalf("UpdateCategory: %v", err)
		}
		if got.Name != "Food" {
			t.Errorf("name = %q, want Food", got.Name)
		}
		if got.Description != "Food and household" {
			t.Errorf("description was overwritten: %q", got.Description)
		}
	})

	t.Run("update missing id", func(t *testing.T) {
		name := "Ghost"
		if _, err := UpdateCategory(db, 9999, UpdateCategoryInput{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateCategory(9999) = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if _, err := DeleteCategory(db, category.ID); err != nil {
			t.Fatalf("DeleteCategory: %v", err)
		}
		if _, err := GetCategory(db, category.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("deleted category still found: %v", err)
		}
		if _, err := DeleteCategory(db, category.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("second delete = %v, want ErrNotFound", err)
		}
	})
}

func TestCreateCategoryDuplicateNameRollsBack(t *testing.T) {
	db := testDB(t)
	seedCategory(t, db, "Groceries")

	_, err := CreateCategory(db, CreateCategoryInput{Name: "Groceries"})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("duplicate name = %v, want ErrDuplicateKey", err)
	}

	// The failed insert must leave the table untouched
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("category count = %d, want 1", count)
	}
}

func TestListCategoriesPagination(t *testing.T) {
	db := testDB(t)
	for i := 1; i <= 15; i++ {
		seedCategory(t, db, fmt.Sprintf("Category %02d", i))
	}

	page1, err := ListCategories(db, 1, 10, "")
	if err != nil {
		t.Fatalf("ListCategories page 1: %v", err)
	}
	page2, err := ListCategories(db, 2, 10, "")
	if err != nil {
		t.Fatalf("ListCategories page 2: %v", err)
	}

	if len(page1) != 10 {
		t.Errorf("page 1 has %d rows, want 10", len(page1))
	}
	if len(page2) != 5 {
		t.Errorf("page 2 has %d rows, want 5", len(page2))
	}

	// Ascending id order within each page
	seen := map[uint]bool{}
	var last uint
	for _, c := range append(page1, page2...) {
		if c.ID <= last {
			t.Errorf("ids out of order: %d after %d", c.ID, last)
		}
		if seen[c.ID] {
			t.Errorf("id %d appears on both pages", c.ID)
		}
		seen[c.ID] = true
		last = c.ID
	}
}

func TestListCategoriesSearch(t *testing.T) {
	db := testDB(t)
	seedCategory(t, db, "Groceries")
	seedCategory(t, db, "Rent")
	seedCategory(t, db, "Gross income")

	got, err := ListCategories(db, 1, 10, "Gro")
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("search returned %d rows, want 2", len(got))
	}
	for _, c := range got {
		if c.Name != "Groceries" && c.Name != "Gross income" {
			t.Errorf("unexpected match %q", c.Name)
		}
	}
}
