package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategorySlugDerivedOnFirstSave(t *testing.T) {
	db := newTestDB(t)

	category := &Category{Name: "Summer Collection"}
	require.NoError(t, db.Create(category).Error)
	assert.Equal(t, "summer-collection", category.Slug)
}

func TestCategorySlugNotRegeneratedOnRename(t *testing.T) {
	db := newTestDB(t)

	category := &Category{Name: "Summer Collection"}
	require.NoError(t, db.Create(category).Error)

	category.Name = "Winter Collection"
	require.NoError(t, db.Save(category).Error)

	var reloaded Category
	require.NoError(t, db.First(&reloaded, category.ID).Error)
	assert.Equal(t, "Winter Collection", reloaded.Name)
	assert.Equal(t, "summer-collection", reloaded.Slug, "slug must stay stable across renames")
}

func TestCategoryExplicitSlugKept(t *testing.T) {
	db := newTestDB(t)

	category := &Category{Name: "Shoes", Slug: "footwear"}
	require.NoError(t, db.Create(category).Error)
	assert.Equal(t, "footwear", category.Slug)
}

func TestDuplicateCategorySlugRejected(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&Category{Name: "Shoes"}).Error)
	err := db.Create(&Category{Name: "Other", Slug: "shoes"}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCategoryFullPath(t *testing.T) {
	db := newTestDB(t)

	root := createTestCategory(t, db, "Root", nil)
	mid := createTestCategory(t, db, "Mid", &root.ID)
	leaf := createTestCategory(t, db, "Leaf", &mid.ID)

	path, err := leaf.FullPath(db)
	require.NoError(t, err)
	assert.Equal(t, "Root → Mid → Leaf", path)

	rootPath, err := root.FullPath(db)
	require.NoError(t, err)
	assert.Equal(t, "Root", rootPath)
}

func TestCategoryGetAllChildren(t *testing.T) {
	db := newTestDB(t)

	root := createTestCategory(t, db, "Root", nil)

	// Direct children out of insertion order: display_order decides
	b := &Category{Name: "B", ParentID: &root.ID, DisplayOrder: 2}
	require.NoError(t, db.Create(b).Error)
	a := &Category{Name: "A", ParentID: &root.ID, DisplayOrder: 1}
	require.NoError(t, db.Create(a).Error)

	aChild := createTestCategory(t, db, "A-child", &a.ID)

	// Inactive descendants are excluded
	hidden := createTestCategory(t, db, "Hidden", &b.ID)
	require.NoError(t, db.Model(hidden).UpdateColumn("is_active", false).Error)

	children, err := root.GetAllChildren(db)
	require.NoError(t, err)

	names := make([]string, 0, len(children))
	for i := range children {
		names = append(names, children[i].Name)
	}
	assert.Equal(t, []string{"A", "B", "A-child"}, names)
	_ = aChild
}

func TestCategoryParentCycleRejected(t *testing.T) {
	db := newTestDB(t)

	a := createTestCategory(t, db, "A", nil)
	b := createTestCategory(t, db, "B", &a.ID)
	c := createTestCategory(t, db, "C", &b.ID)

	// Closing the loop A → C must fail
	a.ParentID = &c.ID
	err := db.Save(a).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryCycle)
}

func TestCategorySelfParentRejected(t *testing.T) {
	db := newTestDB(t)

	a := createTestCategory(t, db, "A", nil)
	a.ParentID = &a.ID
	err := db.Save(a).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryCycle)
}

func TestCategoryDeleteProtectedWhileProductsExist(t *testing.T) {
	db := newTestDB(t)

	parent := createTestCategory(t, db, "Parent", nil)
	child := createTestCategory(t, db, "Child", &parent.ID)
	createTestProduct(t, db, "Sneaker", "49.99", 0, child.ID)

	// A product anywhere in the subtree blocks the delete
	err := db.Delete(parent).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryHasProducts)

	var count int64
	require.NoError(t, db.Model(&Category{}).Count(&count).Error)
	assert.EqualValues(t, 2, count, "nothing may be deleted when the check fails")
}

func TestCategoryDeleteRemovesSubtree(t *testing.T) {
	db := newTestDB(t)

	parent := createTestCategory(t, db, "Parent", nil)
	child := createTestCategory(t, db, "Child", &parent.ID)
	createTestCategory(t, db, "Grandchild", &child.ID)
	other := createTestCategory(t, db, "Other", nil)

	require.NoError(t, db.Delete(parent).Error)

	var remaining []Category
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)
}
