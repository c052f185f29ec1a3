package models

import (
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// PathSeparator joins category names in FullPath, root first.
const PathSeparator = " → "

var (
	ErrCategoryCycle       = errors.New("category parent chain contains a cycle")
	ErrCategoryHasProducts = errors.New("category still has products and cannot be deleted")
)

type Category struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Slug         string     `gorm:"size:100;uniqueIndex" json:"slug"`
	Description  string     `gorm:"type:text" json:"description"`
	ParentID     *uint      `gorm:"index" json:"parent_id"`
	Parent       *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children     []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Image        string     `json:"image"` // reference path, files live elsewhere
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	DisplayOrder int        `gorm:"default:0" json:"display_order"`
	Products     []Product  `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BeforeSave derives the slug from the name on first save only. Renaming a
// category later keeps its original slug.
func (cat *Category) BeforeSave(tx *gorm.DB) error {
	if cat.Slug == "" {
		cat.Slug = slug.Make(cat.Name)
	}
	return cat.validateParentChain(tx)
}

// validateParentChain walks up from the assigned parent and fails if the
// chain ever reaches this category again. Without this check FullPath and
// GetAllChildren would never terminate on a cyclic chain.
func (cat *Category) validateParentChain(tx *gorm.DB) error {
	if cat.ParentID == nil {
		return nil
	}
	seen := map[uint]bool{cat.ID: true}
	parentID := cat.ParentID
	for parentID != nil {
		if seen[*parentID] {
			return ErrCategoryCycle
		}
		seen[*parentID] = true

		var parent Category
		if err := tx.Select("id", "parent_id").First(&parent, *parentID).Error; err != nil {
			return err
		}
		parentID = parent.ParentID
	}
	return nil
}

// BeforeDelete blocks deletion while any product still references this
// category or one of its descendants. When nothing blocks, the descendant
// subtree is removed together with the category.
func (cat *Category) BeforeDelete(tx *gorm.DB) error {
	ids, err := cat.subtreeIDs(tx)
	if err != nil {
		return err
	}

	var count int64
	if err := tx.Model(&Product{}).Where("category_id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasProducts
	}

	if len(ids) > 1 {
		if err := tx.Where("id IN ? AND id <> ?", ids, cat.ID).Delete(&Category{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// subtreeIDs collects this category's ID plus all descendants, level by level.
func (cat *Category) subtreeIDs(tx *gorm.DB) ([]uint, error) {
	ids := []uint{cat.ID}
	frontier := []uint{cat.ID}
	for len(frontier) > 0 {
		var next []uint
		if err := tx.Model(&Category{}).Where("parent_id IN ?", frontier).Pluck("id", &next).Error; err != nil {
			return nil, err
		}
		ids = append(ids, next...)
		frontier = next
	}
	return ids, nil
}

// FullPath returns the category names from the root down to this category,
// e.g. "Men → Shoes → Sneakers". A cyclic chain fails fast with
// ErrCategoryCycle instead of looping.
func (cat *Category) FullPath(db *gorm.DB) (string, error) {
	names := []string{cat.Name}
	seen := map[uint]bool{cat.ID: true}
	parentID := cat.ParentID
	for parentID != nil {
		var parent Category
		if err := db.First(&parent, *parentID).Error; err != nil {
			return "", err
		}
		if seen[parent.ID] {
			return "", ErrCategoryCycle
		}
		seen[parent.ID] = true
		names = append([]string{parent.Name}, names...)
		parentID = parent.ParentID
	}
	return strings.Join(names, PathSeparator), nil
}

// GetAllChildren collects every active descendant: the direct children in
// their (display_order, name) ordering first, then each child's own subtree.
func (cat *Category) GetAllChildren(db *gorm.DB) ([]Category, error) {
	var children []Category
	if err := db.Where("parent_id = ? AND is_active = ?", cat.ID, true).
		Order("display_order, name").
		Find(&children).Error; err != nil {
		return nil, err
	}

	all := make([]Category, 0, len(children))
	all = append(all, children...)
	for i := range children {
		sub, err := children[i].GetAllChildren(db)
		if err != nil {
			return nil, err
		}
		all = append(all, sub...)
	}
	return all, nil
}
